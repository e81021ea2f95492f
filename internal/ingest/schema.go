package ingest

import "strings"

// Field identifies a canonical question field in the schema registry.
type Field string

const (
	FieldQuestionText     Field = "question_text"
	FieldOptionA          Field = "option_a"
	FieldOptionB          Field = "option_b"
	FieldOptionC          Field = "option_c"
	FieldOptionD          Field = "option_d"
	FieldAnswer           Field = "answer"
	FieldQuestionTitle    Field = "question_title"
	FieldProblemStatement Field = "problem_statement"
	FieldTestCaseID       Field = "test_case_id"
	FieldTestCaseInput    Field = "test_case_input"
	FieldExpectedOutput   Field = "expected_output"
	FieldLanguage         Field = "language"
)

// RawRow is an unordered mapping of normalized column label to cell
// value, as extracted from one file row or text block. It is ephemeral
// and owned by the extractor; everything downstream works on canonical
// questions.
type RawRow map[string]string

// fieldAliases maps each canonical field to its accepted column names
// in resolution order. This table is the single source of truth for
// alias lookup; detection and normalization both go through it. Names
// are stored in normalized form (see normalizeKey).
var fieldAliases = map[Field][]string{
	FieldQuestionText:     {"question", "questiontext", "questions", "questiondescription"},
	FieldOptionA:          {"a", "optiona", "option1"},
	FieldOptionB:          {"b", "optionb", "option2"},
	FieldOptionC:          {"c", "optionc", "option3"},
	FieldOptionD:          {"d", "optiond", "option4"},
	FieldAnswer:           {"answer", "correctanswer", "correctoption", "ans"},
	FieldQuestionTitle:    {"questiontitle", "title"},
	FieldProblemStatement: {"problemstatement", "statement", "problem"},
	FieldTestCaseID:       {"testcaseid", "tcid"},
	FieldTestCaseInput:    {"input", "testcaseinput", "testinput"},
	FieldExpectedOutput:   {"expectedoutput", "output", "expected"},
	FieldLanguage:         {"language", "lang"},
}

// knownHeaders is the flat set of every alias, used by layout detection
// to recognize a header row.
var knownHeaders = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, aliases := range fieldAliases {
		for _, a := range aliases {
			set[a] = struct{}{}
		}
	}
	return set
}()

// normalizeKey folds a column label into lookup form: lowercased with
// spaces, underscores and dashes removed, so "Question Title",
// "question_title" and "QuestionTitle" all collide.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, s)
}

// isKnownHeader reports whether a cell looks like a header for any
// canonical field.
func isKnownHeader(cell string) bool {
	_, ok := knownHeaders[normalizeKey(cell)]
	return ok
}

// resolve returns the trimmed value of the first alias of f present and
// non-empty in row. The alias order in fieldAliases is the resolution
// order.
func resolve(row RawRow, f Field) (string, bool) {
	for _, alias := range fieldAliases[f] {
		if v, ok := row[alias]; ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed, true
			}
		}
	}
	return "", false
}

// has reports whether any alias of f is present and non-empty in row.
func has(row RawRow, f Field) bool {
	_, ok := resolve(row, f)
	return ok
}
