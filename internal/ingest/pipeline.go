package ingest

import (
	"github.com/evalhub/qbank-ingest/internal/model"
)

// Input is one uploaded file as handed over by the upload collaborator.
type Input struct {
	Filename string
	Ext      string // declared extension: csv, xlsx, xls or txt
	Hint     model.QuestionKind
	Data     []byte
}

// Result is the complete outcome of one pipeline run: every surviving
// candidate classified in file order, plus the recoverable-failure
// summary. A run with zero New candidates sets NoNew — an informational
// state for the reviewer, not an error.
type Result struct {
	Classified []model.ClassifiedQuestion `json:"classified"`
	Skipped    []SkippedRow               `json:"skipped,omitempty"`
	NewCount   int                        `json:"new_count"`
	NoNew      bool                       `json:"no_new"`
}

// Run executes one synchronous pass over an uploaded file:
// detect → extract → normalize → validate → dedupe. index is the
// existing-question snapshot for the target bank, read once at the
// start of the invocation and never refreshed mid-run; a question added
// concurrently after the snapshot will classify as New here and is
// caught by the storage layer's uniqueness check instead.
//
// Fatal errors (undecodable file, unrecognized layout) abort the run.
// Per-row failures accumulate into Result.Skipped so the reviewer sees
// one complete picture.
func Run(in Input, index map[string]struct{}) (*Result, error) {
	grid, err := decode(in.Data, in.Ext)
	if err != nil {
		return nil, err
	}

	// A file with no content at all is an empty batch, not a layout
	// failure: the reviewer gets the no-new-questions state instead of
	// an error about a file that simply has nothing in it.
	if _, ok := firstNonEmptyRow(grid); !ok {
		return &Result{Classified: []model.ClassifiedQuestion{}, NoNew: true}, nil
	}

	layout := detect(grid, in.Hint)
	if layout == LayoutUnknown {
		return nil, ErrUnrecognizedFormat
	}

	var rows []extractedRow
	switch layout {
	case LayoutTemplatedTabular:
		rows = extractTabular(grid)
	case LayoutBlockText:
		rows = extractBlocks(grid, in.Hint)
	}

	result := &Result{}
	var candidates []model.CanonicalQuestion
	for _, row := range rows {
		q, ok := normalize(row.data, in.Hint)
		if !ok {
			// No recognizable markers at all: noise, not a reportable row.
			continue
		}
		if err := validate(q); err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{
				Row:    row.num,
				Reason: err.Error(),
			})
			continue
		}
		candidates = append(candidates, q)
	}

	result.Classified = classify(candidates, index)
	for _, c := range result.Classified {
		if c.Status == model.StatusNew {
			result.NewCount++
		}
	}
	result.NoNew = result.NewCount == 0
	return result, nil
}
