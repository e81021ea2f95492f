package ingest

import (
	"fmt"
	"strings"

	"github.com/evalhub/qbank-ingest/internal/model"
)

// validate enforces the per-kind completeness rules:
//
//	MCQ:                question text, options A–D, answer in {A,B,C,D}
//	CompilerIntegrated: question text, test case input, expected output, language
//	LegacyTechnical:    question text, test case input, expected output
//
// The returned error is the skip reason; a failing candidate is dropped
// from the batch, never a hard abort.
func validate(q model.CanonicalQuestion) error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return fmt.Errorf("missing question text")
	}

	switch q.Kind {
	case model.KindMCQ:
		options := []struct {
			letter string
			value  string
		}{
			{"A", q.OptionA}, {"B", q.OptionB}, {"C", q.OptionC}, {"D", q.OptionD},
		}
		for _, opt := range options {
			if strings.TrimSpace(opt.value) == "" {
				return fmt.Errorf("missing option %s", opt.letter)
			}
		}
		switch q.Answer {
		case "A", "B", "C", "D":
		default:
			return fmt.Errorf("answer %q is not one of A-D", q.Answer)
		}

	case model.KindCompilerIntegrated:
		if err := validateTestCase(q); err != nil {
			return err
		}
		if strings.TrimSpace(q.Language) == "" {
			return fmt.Errorf("missing language")
		}

	case model.KindLegacyTechnical:
		if err := validateTestCase(q); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown question kind %q", q.Kind)
	}
	return nil
}

func validateTestCase(q model.CanonicalQuestion) error {
	if strings.TrimSpace(q.TestCaseInput) == "" {
		return fmt.Errorf("missing test case input")
	}
	if strings.TrimSpace(q.ExpectedOutput) == "" {
		return fmt.Errorf("missing expected output")
	}
	return nil
}
