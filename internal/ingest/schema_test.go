package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	for input, want := range map[string]string{
		"Question Title": "questiontitle",
		"question_title": "questiontitle",
		"QuestionTitle":  "questiontitle",
		"  Answer  ":     "answer",
		"test-case-id":   "testcaseid",
	} {
		assert.Equal(t, want, normalizeKey(input))
	}
}

func TestResolveFollowsAliasOrder(t *testing.T) {
	row := RawRow{
		"optiona": "from alias",
		"a":       "from primary",
	}
	v, ok := resolve(row, FieldOptionA)
	assert.True(t, ok)
	assert.Equal(t, "from primary", v)
}

func TestResolveSkipsEmptyValues(t *testing.T) {
	row := RawRow{
		"answer":        "   ",
		"correctanswer": "B",
	}
	v, ok := resolve(row, FieldAnswer)
	assert.True(t, ok)
	assert.Equal(t, "B", v)
}

func TestResolveTrimsValues(t *testing.T) {
	row := RawRow{"question": "  What is 2+2?  "}
	v, ok := resolve(row, FieldQuestionText)
	assert.True(t, ok)
	assert.Equal(t, "What is 2+2?", v)
}

func TestResolveMissingField(t *testing.T) {
	_, ok := resolve(RawRow{"question": "x"}, FieldLanguage)
	assert.False(t, ok)
}
