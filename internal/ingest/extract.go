package ingest

import (
	"regexp"
	"strings"

	"github.com/evalhub/qbank-ingest/internal/model"
)

// extractedRow is one RawRow plus the 1-based source row (or block
// start line) it came from, kept for the skipped-row summary.
type extractedRow struct {
	num  int
	data RawRow
}

// minBlockLines is the smallest complete MCQ block: question line, four
// option lines and an answer line. Shorter blocks are treated as noise
// and dropped without a trace.
const minBlockLines = 6

var (
	optionLineRe = regexp.MustCompile(`^([A-Da-d])\)\s*(.*)$`)
	answerLineRe = regexp.MustCompile(`(?i)^answer\s*[:.\-]?\s*([A-Da-d])\b`)
)

// extractTabular turns a header-keyed grid into RawRows. The first
// non-empty row is the header; fully blank rows are skipped. Individual
// malformed rows never error here — they surface later as validation
// skips.
func extractTabular(grid [][]string) []extractedRow {
	headerIdx := -1
	var keys []string
	for i, row := range grid {
		if rowBlank(row) {
			continue
		}
		headerIdx = i
		keys = make([]string, len(row))
		for j, cell := range row {
			keys[j] = normalizeKey(cell)
		}
		break
	}
	if headerIdx < 0 {
		return nil
	}

	var rows []extractedRow
	for i := headerIdx + 1; i < len(grid); i++ {
		row := grid[i]
		if rowBlank(row) {
			continue
		}
		data := make(RawRow, len(keys))
		for j, key := range keys {
			if key == "" || j >= len(row) {
				continue
			}
			data[key] = row[j]
		}
		rows = append(rows, extractedRow{num: i + 1, data: data})
	}
	return rows
}

// extractBlocks scans unheadered content line by line, grouping lines
// into question blocks. MCQ blocks close on an "Answer:" marker;
// technical blocks close when a labeled field repeats or at EOF.
func extractBlocks(grid [][]string, hint model.QuestionKind) []extractedRow {
	if hint.Technical() {
		return extractLabeledBlocks(grid)
	}
	return extractMCQBlocks(grid)
}

func extractMCQBlocks(grid [][]string) []extractedRow {
	var (
		rows    []extractedRow
		block   []string
		blockAt int
		answer  string
	)

	flush := func() {
		defer func() { block = nil; answer = "" }()
		// A block without its answer marker, or with too few lines,
		// is noise from a mangled upload, not a reportable row.
		if answer == "" || len(block) < minBlockLines {
			return
		}
		data := RawRow{"answer": answer}
		for i, line := range block {
			if m := optionLineRe.FindStringSubmatch(line); m != nil {
				data[strings.ToLower(m[1])] = m[2]
				continue
			}
			if i == 0 {
				data["question"] = line
			}
		}
		rows = append(rows, extractedRow{num: blockAt, data: data})
	}

	for i, row := range grid {
		line := joinCells(row)
		if line == "" {
			continue
		}
		if len(block) == 0 {
			blockAt = i + 1
		}
		block = append(block, line)
		if m := answerLineRe.FindStringSubmatch(line); m != nil {
			answer = strings.ToUpper(m[1])
			flush()
		}
	}
	// Trailing lines with no closing marker are dropped by flush.
	flush()
	return rows
}

// extractLabeledBlocks handles technical content written as labeled
// lines ("Input: 6"). A repeated label starts the next block. Blocks
// that never accumulate a test case are dropped as noise.
func extractLabeledBlocks(grid [][]string) []extractedRow {
	var (
		rows    []extractedRow
		data    RawRow
		blockAt int
	)

	flush := func() {
		defer func() { data = nil }()
		if data == nil {
			return
		}
		if !has(data, FieldTestCaseInput) || !has(data, FieldExpectedOutput) {
			return
		}
		rows = append(rows, extractedRow{num: blockAt, data: data})
	}

	for i, row := range grid {
		line := joinCells(row)
		if line == "" {
			continue
		}
		key, value, ok := splitLabeledLine(line)
		if !ok {
			continue
		}
		if data == nil {
			data = RawRow{}
			blockAt = i + 1
		} else if _, seen := data[key]; seen {
			flush()
			data = RawRow{}
			blockAt = i + 1
		}
		data[key] = value
	}
	flush()
	return rows
}

// splitLabeledLine parses "Label: value" where Label is a known column
// alias. Lines whose prefix is not in the schema registry (for example
// a question sentence containing a colon) are not labeled lines.
func splitLabeledLine(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	label := line[:idx]
	if !isKnownHeader(label) {
		return "", "", false
	}
	return normalizeKey(label), strings.TrimSpace(line[idx+1:]), true
}
