package records

// runPasses runs the three resolution passes, each a full traversal of
// the decoded sequence in stream order:
//
//  1. pre-process: every addressable record (re-)registers its id, so
//     records declared inline inside composites are in the map before
//     any cross-reference resolution starts.
//  2. process: records resolve their own direct state. References to
//     ids not yet registered are tolerated here; class metadata for a
//     reference's target may be declared after the reference in byte
//     order, which is why one pass cannot be enough.
//  3. post-process: final fix-up. A reference still unresolved here is
//     marked permanently dangling and surfaced through
//     Graph.Unresolved rather than failing the decode.
//
// A hook error aborts the whole decode, carrying the pass name and the
// originating record's type and declared id.
func runPasses(records []Record, objects map[int32]Record) error {
	passes := []struct {
		name string
		run  func(Record, map[int32]Record) error
	}{
		{"pre-process", Record.preProcess},
		{"process", Record.process},
		{"post-process", Record.postProcess},
	}
	for _, pass := range passes {
		for _, rec := range records {
			if err := pass.run(rec, objects); err != nil {
				id, _ := rec.objectID()
				return &ResolveError{
					Pass:       pass.name,
					RecordType: rec.RecordType(),
					ObjectID:   id,
					Err:        err,
				}
			}
		}
	}
	return nil
}
