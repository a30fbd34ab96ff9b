// Package notmuch provides a read-only gateway to a notmuch mail index.
//
// The gateway drives the notmuch command-line tool with --format=json and
// decodes its output into Go values:
//   - Thread summaries from `notmuch search --output=summary`
//   - Reply forests from `notmuch show --body=false`
//
// A DB is a scoped resource: it is opened read-only for the duration of one
// logical operation and must be closed on every exit path. The query grammar
// is owned by notmuch itself; this package passes filter strings through
// verbatim.
//
// The index is trusted to provide an acyclic reply structure. A cyclic
// structure would make thread traversal loop; that is a documented
// precondition of the external index, not something this package guards
// against.
//
// Example usage:
//
//	db, err := notmuch.Open(notmuch.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	thread, ok, err := db.FindThread(ctx, "0000000000001234")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ok {
//	    for _, m := range thread.TopLevel {
//	        fmt.Println(m.Header("Subject"))
//	    }
//	}
package notmuch
