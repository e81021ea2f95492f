package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evalhub/qbank-ingest/internal/model"
)

func mcq(text string) model.CanonicalQuestion {
	q := validMCQ()
	q.QuestionText = text
	return q
}

func TestClassifyAgainstExistingIndex(t *testing.T) {
	index := map[string]struct{}{
		"what is 2+2?": {},
	}
	candidates := []model.CanonicalQuestion{
		mcq("What is 2+2?"),
		mcq("Capital of France?"),
	}

	classified := classify(candidates, index)
	require.Len(t, classified, 2)
	assert.Equal(t, model.StatusDuplicate, classified[0].Status)
	assert.Equal(t, model.StatusNew, classified[1].Status)
}

// Within one batch, only the first occurrence of a repeated question is
// New — later repeats are Duplicate even though nothing was persisted.
func TestClassifyFirstWinsWithinBatch(t *testing.T) {
	candidates := []model.CanonicalQuestion{
		mcq("What is 2+2?"),
		mcq("what is 2+2?  "),
		mcq("WHAT IS 2+2?"),
	}

	classified := classify(candidates, map[string]struct{}{})
	require.Len(t, classified, 3)
	assert.Equal(t, model.StatusNew, classified[0].Status)
	assert.Equal(t, model.StatusDuplicate, classified[1].Status)
	assert.Equal(t, model.StatusDuplicate, classified[2].Status)
}

// For any set of case-insensitively identical questions, exactly one is
// New regardless of where they sit in the batch.
func TestClassifyExactlyOneNewPerKey(t *testing.T) {
	candidates := []model.CanonicalQuestion{
		mcq("Unique one"),
		mcq("Repeated"),
		mcq("Unique two"),
		mcq("repeated"),
		mcq("Repeated  "),
	}

	classified := classify(candidates, map[string]struct{}{})
	newPerKey := make(map[string]int)
	for _, c := range classified {
		if c.Status == model.StatusNew {
			newPerKey[c.DedupKey()]++
		}
	}
	for key, count := range newPerKey {
		assert.Equal(t, 1, count, "key %q", key)
	}
	assert.Len(t, newPerKey, 3)
}

// Every candidate comes back, in input order — classification never
// drops anything.
func TestClassifyPreservesOrder(t *testing.T) {
	candidates := []model.CanonicalQuestion{
		mcq("c"), mcq("a"), mcq("b"), mcq("a"),
	}

	classified := classify(candidates, map[string]struct{}{})
	require.Len(t, classified, 4)
	for i, c := range classified {
		assert.Equal(t, candidates[i].QuestionText, c.QuestionText)
	}
}

func TestClassifyDoesNotMutateSnapshot(t *testing.T) {
	index := map[string]struct{}{"existing": {}}
	classify([]model.CanonicalQuestion{mcq("brand new")}, index)
	assert.Len(t, index, 1)
}

func TestClassifyEmptyBatch(t *testing.T) {
	classified := classify(nil, map[string]struct{}{"x": {}})
	assert.NotNil(t, classified)
	assert.Empty(t, classified)
}
