package ingest

import (
	"strings"

	"github.com/evalhub/qbank-ingest/internal/model"
)

// Layout classifies the shape of an uploaded payload.
type Layout string

const (
	LayoutTemplatedTabular Layout = "TEMPLATED_TABULAR"
	LayoutBlockText        Layout = "BLOCK_TEXT"
	LayoutUnknown          Layout = "UNKNOWN"
)

// detectInput is everything a detection predicate may look at: the
// first non-empty row of the decoded grid and the caller's kind hint.
// The declared extension is consumed by decode; by the time detection
// runs, every source is a uniform cell grid.
type detectInput struct {
	firstRow []string
	hint     model.QuestionKind
}

// detectRule pairs a predicate with the layout it classifies. Rules are
// evaluated in order; the first match wins.
type detectRule struct {
	name   string
	match  func(in detectInput) bool
	layout Layout
}

// detectRules is the prioritized rule list. Header sniffing runs first
// so a sheet that carries a recognizable header is always treated as
// tabular, even if its data rows are garbage — bad rows then fail
// validation downstream instead of being mis-scanned as block text.
var detectRules = []detectRule{
	{
		name: "header row",
		match: func(in detectInput) bool {
			return len(in.firstRow) > 0 && isKnownHeader(in.firstRow[0])
		},
		layout: LayoutTemplatedTabular,
	},
	{
		name: "mcq block text",
		match: func(in detectInput) bool {
			return in.hint == model.KindMCQ
		},
		layout: LayoutBlockText,
	},
	{
		name: "technical block text",
		match: func(in detectInput) bool {
			if !in.hint.Technical() {
				return false
			}
			// Labeled lines ("Input: 6") are the only unheadered shape
			// technical content arrives in.
			_, _, ok := splitLabeledLine(joinCells(in.firstRow))
			return ok
		},
		layout: LayoutBlockText,
	},
}

// detect classifies the decoded grid. An empty payload is Unknown, as
// is any shape no rule matches.
func detect(grid [][]string, hint model.QuestionKind) Layout {
	firstRow, ok := firstNonEmptyRow(grid)
	if !ok {
		return LayoutUnknown
	}

	in := detectInput{firstRow: firstRow, hint: hint}
	for _, rule := range detectRules {
		if rule.match(in) {
			return rule.layout
		}
	}
	return LayoutUnknown
}

func firstNonEmptyRow(grid [][]string) ([]string, bool) {
	for _, row := range grid {
		if !rowBlank(row) {
			return row, true
		}
	}
	return nil, false
}

func rowBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// joinCells flattens a grid row into one logical line for the block
// scanner, so unheadered spreadsheets and plain text share one path.
func joinCells(row []string) string {
	var parts []string
	for _, cell := range row {
		if trimmed := strings.TrimSpace(cell); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}
