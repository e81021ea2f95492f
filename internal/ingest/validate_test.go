package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evalhub/qbank-ingest/internal/model"
)

func validMCQ() model.CanonicalQuestion {
	return model.CanonicalQuestion{
		Kind:         model.KindMCQ,
		QuestionText: "What is 2+2?",
		OptionA:      "3",
		OptionB:      "4",
		OptionC:      "5",
		OptionD:      "6",
		Answer:       "B",
	}
}

func TestValidateMCQ(t *testing.T) {
	assert.NoError(t, validate(validMCQ()))

	missing := validMCQ()
	missing.OptionD = ""
	err := validate(missing)
	assert.ErrorContains(t, err, "option D")

	badAnswer := validMCQ()
	badAnswer.Answer = "E"
	assert.ErrorContains(t, validate(badAnswer), "not one of A-D")

	noText := validMCQ()
	noText.QuestionText = "   "
	assert.ErrorContains(t, validate(noText), "question text")
}

func TestValidateCompilerIntegrated(t *testing.T) {
	q := model.CanonicalQuestion{
		Kind:           model.KindCompilerIntegrated,
		QuestionText:   "Perfect Number: Check perfection",
		TestCaseInput:  "6",
		ExpectedOutput: "6 is a perfect number",
		Language:       "python",
	}
	assert.NoError(t, validate(q))

	q.Language = ""
	assert.ErrorContains(t, validate(q), "language")

	q.Language = "python"
	q.TestCaseInput = ""
	assert.ErrorContains(t, validate(q), "test case input")
}

func TestValidateLegacyTechnical(t *testing.T) {
	q := model.CanonicalQuestion{
		Kind:           model.KindLegacyTechnical,
		QuestionText:   "Reverse a string",
		TestCaseInput:  "abc",
		ExpectedOutput: "cba",
	}
	assert.NoError(t, validate(q))

	// Legacy rows need no language.
	q.Language = ""
	assert.NoError(t, validate(q))

	q.ExpectedOutput = ""
	assert.ErrorContains(t, validate(q), "expected output")
}

func TestValidateUnknownKind(t *testing.T) {
	q := model.CanonicalQuestion{Kind: "BOGUS", QuestionText: "x"}
	assert.ErrorContains(t, validate(q), "unknown question kind")
}
