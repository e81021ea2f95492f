package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evalhub/qbank-ingest/internal/model"
)

func TestNormalizeMCQ(t *testing.T) {
	row := RawRow{
		"question": " What is 2+2? ",
		"a":        "3",
		"b":        "4",
		"c":        "5",
		"d":        "6",
		"answer":   "b",
	}

	q, ok := normalize(row, model.KindMCQ)
	require.True(t, ok)
	assert.Equal(t, model.KindMCQ, q.Kind)
	assert.Equal(t, "What is 2+2?", q.QuestionText)
	assert.Equal(t, "3", q.OptionA)
	assert.Equal(t, "4", q.OptionB)
	assert.Equal(t, "5", q.OptionC)
	assert.Equal(t, "6", q.OptionD)
	assert.Equal(t, "B", q.Answer)
}

func TestNormalizeMCQAliasedColumns(t *testing.T) {
	row := RawRow{
		"questiontext":  "Aliased?",
		"optiona":       "1",
		"optionb":       "2",
		"optionc":       "3",
		"optiond":       "4",
		"correctanswer": "C",
	}

	q, ok := normalize(row, model.KindMCQ)
	require.True(t, ok)
	assert.Equal(t, "Aliased?", q.QuestionText)
	assert.Equal(t, "C", q.Answer)
}

// A row with no recognizable question text is noise (stray comment
// rows, separators) and is dropped without being reported.
func TestNormalizeMCQDropsUnmarkedRow(t *testing.T) {
	_, ok := normalize(RawRow{"somecolumn": "some value"}, model.KindMCQ)
	assert.False(t, ok)
}

// The full compiler marker set present together signals a
// compiler-integrated row; question text becomes "Title: Statement".
func TestNormalizeCompilerIntegrated(t *testing.T) {
	row := RawRow{
		"questiontitle":    "Perfect Number",
		"problemstatement": "Check perfection",
		"testcaseid":       "TC1",
		"input":            "6",
		"expectedoutput":   "6 is a perfect number",
		"language":         "python",
	}

	q, ok := normalize(row, model.KindCompilerIntegrated)
	require.True(t, ok)
	assert.Equal(t, model.KindCompilerIntegrated, q.Kind)
	assert.Equal(t, "Perfect Number: Check perfection", q.QuestionText)
	assert.Equal(t, "TC1", q.TestCaseID)
	assert.Equal(t, "6", q.TestCaseInput)
	assert.Equal(t, "6 is a perfect number", q.ExpectedOutput)
	assert.Equal(t, "python", q.Language)
}

// Test-case fields without the full compiler set mean legacy technical.
func TestNormalizeLegacyTechnical(t *testing.T) {
	row := RawRow{
		"question": "Reverse a string",
		"input":    "abc",
		"output":   "cba",
	}

	q, ok := normalize(row, model.KindLegacyTechnical)
	require.True(t, ok)
	assert.Equal(t, model.KindLegacyTechnical, q.Kind)
	assert.Equal(t, "Reverse a string", q.QuestionText)
	assert.Equal(t, "abc", q.TestCaseInput)
	assert.Equal(t, "cba", q.ExpectedOutput)
}

// The kind split is alias-driven even under a compiler hint: a partial
// marker set degrades to legacy, never to a half-filled compiler row.
func TestNormalizeTechnicalPartialMarkersDegradeToLegacy(t *testing.T) {
	row := RawRow{
		"questiontitle":  "No statement",
		"input":          "1",
		"expectedoutput": "2",
	}

	q, ok := normalize(row, model.KindCompilerIntegrated)
	require.True(t, ok)
	assert.Equal(t, model.KindLegacyTechnical, q.Kind)
	assert.Equal(t, "No statement", q.QuestionText)
}

func TestNormalizeTechnicalDropsUnmarkedRow(t *testing.T) {
	_, ok := normalize(RawRow{"question": "prose with no test case"}, model.KindLegacyTechnical)
	assert.False(t, ok)
}
