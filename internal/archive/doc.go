// Package archive reconstructs and renders patch-review conversations from
// a notmuch mail index.
//
// The package answers two questions about an indexed mailing-list archive:
// which threads match a filter and look like patch series (FindSeries), and
// what a given thread contains, laid out as a reviewable conversation
// (Walker.RetrieveThread plus Render).
//
// Messages inside a thread are classified relative to the thread's cover
// letter: a patch is a direct reply to the cover letter whose subject
// carries a bracketed PATCH tag and is not itself phrased as a reply.
// Classification is advisory and recomputed per traversal; it is never
// cached because it depends on which message is treated as the cover.
//
// All index access goes through the Store interface so traversal and
// classification can be tested without a live notmuch installation.
package archive
