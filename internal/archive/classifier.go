package archive

import "regexp"

var (
	// replySubjectPattern matches subjects phrased as a reply or forward,
	// including stacked prefixes such as "Re: AW: [PATCH] ...".
	replySubjectPattern = regexp.MustCompile(`(?i)^(\s*(re|r|aw|fwd|fw)\s*:)+`)

	// patchTagPattern matches a bracketed subject tag carrying the PATCH
	// marker, with or without extra tokens: "[PATCH]", "[RFC PATCH v2 3/6]".
	patchTagPattern = regexp.MustCompile(`(?i)\[[^\[\]]*patch[^\[\]]*\]`)
)

// IsPatch reports whether a message with the given subject and In-Reply-To
// header is a patch belonging to the series introduced by the cover letter
// with id coverID.
//
// Only direct replies to the cover letter qualify; replies-to-replies, such
// as review comments, never do. A reply-prefixed subject disqualifies the
// message even when it carries a PATCH tag, since "Re: [PATCH 2/3] ..." is
// commentary about a patch, not the patch itself. Missing headers count as
// not matching; classification is advisory and a false negative must not
// abort thread retrieval.
func IsPatch(subject, inReplyTo, coverID string) bool {
	parent := NormalizeID(inReplyTo)
	if parent == "" || parent != NormalizeID(coverID) {
		return false
	}
	if replySubjectPattern.MatchString(subject) {
		return false
	}
	return patchTagPattern.MatchString(subject)
}
