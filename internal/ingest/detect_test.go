package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evalhub/qbank-ingest/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		grid [][]string
		hint model.QuestionKind
		want Layout
	}{
		{
			name: "header row classifies tabular",
			grid: [][]string{{"Question", "A", "B", "C", "D", "Answer"}},
			hint: model.KindMCQ,
			want: LayoutTemplatedTabular,
		},
		{
			name: "aliased header classifies tabular",
			grid: [][]string{{"QuestionTitle", "ProblemStatement"}},
			hint: model.KindCompilerIntegrated,
			want: LayoutTemplatedTabular,
		},
		{
			name: "header detection is case-insensitive",
			grid: [][]string{{"QUESTION", "A"}},
			hint: model.KindMCQ,
			want: LayoutTemplatedTabular,
		},
		{
			name: "unheadered text with mcq hint is block text",
			grid: [][]string{{"Capital of France?"}, {"A) Lyon"}},
			hint: model.KindMCQ,
			want: LayoutBlockText,
		},
		{
			name: "unheadered spreadsheet with mcq hint is block text",
			grid: [][]string{{"What is 2+2?"}, {"A) 3"}},
			hint: model.KindMCQ,
			want: LayoutBlockText,
		},
		{
			name: "labeled lines with technical hint are block text",
			grid: [][]string{{"Input: 6"}, {"ExpectedOutput: 6 is perfect"}},
			hint: model.KindLegacyTechnical,
			want: LayoutBlockText,
		},
		{
			name: "unlabeled text with technical hint is unrecognized",
			grid: [][]string{{"some stray prose"}},
			hint: model.KindCompilerIntegrated,
			want: LayoutUnknown,
		},
		{
			name: "empty grid is unrecognized",
			grid: nil,
			hint: model.KindMCQ,
			want: LayoutUnknown,
		},
		{
			name: "all-blank grid is unrecognized",
			grid: [][]string{{"", ""}, {"  "}},
			hint: model.KindCompilerIntegrated,
			want: LayoutUnknown,
		},
		{
			name: "leading blank rows are skipped before sniffing",
			grid: [][]string{{""}, {"Question", "Answer"}},
			hint: model.KindMCQ,
			want: LayoutTemplatedTabular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detect(tt.grid, tt.hint))
		})
	}
}

// A corrupted upload whose first row is option text must still land in
// the tabular path when it happens to look like a header, failing
// validation downstream instead of being mis-scanned.
func TestDetectPrefersHeaderOverBlockText(t *testing.T) {
	grid := [][]string{
		{"Answer", "B"},
		{"garbage", "row"},
	}
	assert.Equal(t, LayoutTemplatedTabular, detect(grid, model.KindMCQ))
}
