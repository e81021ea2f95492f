package ingest

import "github.com/evalhub/qbank-ingest/internal/model"

// classify tags every candidate New or Duplicate against a working set
// seeded from the existing-bank snapshot. Candidates are processed in
// file order; the first occurrence of a repeated question wins the New
// tag and later repeats are Duplicate even though nothing has been
// persisted yet. No candidate is dropped here — the full classified
// sequence comes back in input order.
//
// The snapshot is not mutated; callers may reuse it across assertions.
func classify(candidates []model.CanonicalQuestion, index map[string]struct{}) []model.ClassifiedQuestion {
	working := make(map[string]struct{}, len(index)+len(candidates))
	for key := range index {
		working[key] = struct{}{}
	}

	classified := make([]model.ClassifiedQuestion, 0, len(candidates))
	for _, q := range candidates {
		status := model.StatusNew
		key := q.DedupKey()
		if _, dup := working[key]; dup {
			status = model.StatusDuplicate
		} else {
			working[key] = struct{}{}
		}
		classified = append(classified, model.ClassifiedQuestion{
			CanonicalQuestion: q,
			Status:            status,
		})
	}
	return classified
}
