package ingest

import (
	"strings"

	"github.com/evalhub/qbank-ingest/internal/model"
)

// compilerMarkers is the full field set whose joint presence signals a
// compiler-integrated row. Anything test-case-like without the full set
// is legacy technical.
var compilerMarkers = []Field{
	FieldQuestionTitle,
	FieldProblemStatement,
	FieldTestCaseID,
	FieldTestCaseInput,
	FieldExpectedOutput,
}

// testCaseMarkers are the fields that mark a row as technical at all.
var testCaseMarkers = []Field{
	FieldTestCaseID,
	FieldTestCaseInput,
	FieldExpectedOutput,
}

// normalize maps a RawRow's heterogeneous keys onto a canonical
// question under the caller's kind hint. The boolean is false when the
// row carries no recognizable markers for the hinted content — such
// rows are noise (stray comments, section separators) and are dropped
// without being reported.
func normalize(row RawRow, hint model.QuestionKind) (model.CanonicalQuestion, bool) {
	if hint.Technical() {
		return normalizeTechnical(row)
	}
	return normalizeMCQ(row)
}

func normalizeMCQ(row RawRow) (model.CanonicalQuestion, bool) {
	text, ok := resolve(row, FieldQuestionText)
	if !ok {
		return model.CanonicalQuestion{}, false
	}

	q := model.CanonicalQuestion{
		Kind:         model.KindMCQ,
		QuestionText: text,
	}
	q.OptionA, _ = resolve(row, FieldOptionA)
	q.OptionB, _ = resolve(row, FieldOptionB)
	q.OptionC, _ = resolve(row, FieldOptionC)
	q.OptionD, _ = resolve(row, FieldOptionD)
	if answer, ok := resolve(row, FieldAnswer); ok {
		q.Answer = strings.ToUpper(answer)
	}
	return q, true
}

// normalizeTechnical distinguishes compiler-integrated from legacy
// technical rows by alias presence alone: the full compiler marker set
// means compiler-integrated (question text becomes "Title: Statement");
// any test-case field short of the full set means legacy.
func normalizeTechnical(row RawRow) (model.CanonicalQuestion, bool) {
	if hasAll(row, compilerMarkers) {
		title, _ := resolve(row, FieldQuestionTitle)
		statement, _ := resolve(row, FieldProblemStatement)

		q := model.CanonicalQuestion{
			Kind:         model.KindCompilerIntegrated,
			QuestionText: title + ": " + statement,
		}
		q.TestCaseID, _ = resolve(row, FieldTestCaseID)
		q.TestCaseInput, _ = resolve(row, FieldTestCaseInput)
		q.ExpectedOutput, _ = resolve(row, FieldExpectedOutput)
		q.Language, _ = resolve(row, FieldLanguage)
		return q, true
	}

	if hasAny(row, testCaseMarkers) {
		q := model.CanonicalQuestion{Kind: model.KindLegacyTechnical}
		if text, ok := resolve(row, FieldQuestionText); ok {
			q.QuestionText = text
		} else if title, ok := resolve(row, FieldQuestionTitle); ok {
			q.QuestionText = title
		}
		q.TestCaseID, _ = resolve(row, FieldTestCaseID)
		q.TestCaseInput, _ = resolve(row, FieldTestCaseInput)
		q.ExpectedOutput, _ = resolve(row, FieldExpectedOutput)
		q.Language, _ = resolve(row, FieldLanguage)
		return q, true
	}

	return model.CanonicalQuestion{}, false
}

func hasAll(row RawRow, fields []Field) bool {
	for _, f := range fields {
		if !has(row, f) {
			return false
		}
	}
	return true
}

func hasAny(row RawRow, fields []Field) bool {
	for _, f := range fields {
		if has(row, f) {
			return true
		}
	}
	return false
}
