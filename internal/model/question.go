package model

import (
	"strings"

	"github.com/google/uuid"
)

// QuestionKind selects which canonical fields a question must carry.
type QuestionKind string

const (
	KindMCQ                QuestionKind = "MCQ"
	KindCompilerIntegrated QuestionKind = "COMPILER_INTEGRATED"
	KindLegacyTechnical    QuestionKind = "LEGACY_TECHNICAL"
)

// Valid reports whether k is one of the known question kinds.
func (k QuestionKind) Valid() bool {
	switch k {
	case KindMCQ, KindCompilerIntegrated, KindLegacyTechnical:
		return true
	}
	return false
}

// Technical reports whether k carries test-case fields instead of options.
func (k QuestionKind) Technical() bool {
	return k == KindCompilerIntegrated || k == KindLegacyTechnical
}

// CanonicalQuestion is the normalized unit of work every source layout
// is mapped into. QuestionText is always non-empty after trimming; the
// remaining fields are populated per kind (see the ingest package for
// the completeness rules).
type CanonicalQuestion struct {
	Kind         QuestionKind `json:"kind"`
	QuestionText string       `json:"question_text"`

	// MCQ fields.
	OptionA string `json:"option_a,omitempty"`
	OptionB string `json:"option_b,omitempty"`
	OptionC string `json:"option_c,omitempty"`
	OptionD string `json:"option_d,omitempty"`
	Answer  string `json:"answer,omitempty"` // one of A, B, C, D

	// Technical fields.
	TestCaseID     string `json:"test_case_id,omitempty"`
	TestCaseInput  string `json:"test_case_input,omitempty"`
	ExpectedOutput string `json:"expected_output,omitempty"`
	Language       string `json:"language,omitempty"`
}

// DedupKey is the identity used for duplicate detection: question text
// lowercased and trimmed. Two questions with identical text but
// different options are still duplicates of each other — deliberately
// coarse, since a false duplicate flag is reviewable while silent
// answer-key drift is not.
func (q CanonicalQuestion) DedupKey() string {
	return strings.ToLower(strings.TrimSpace(q.QuestionText))
}

// QuestionStatus is the dedup classification of a staged question.
type QuestionStatus string

const (
	StatusNew       QuestionStatus = "NEW"
	StatusDuplicate QuestionStatus = "DUPLICATE"
)

// ClassifiedQuestion pairs a candidate with its dedup status. It lives
// only for the span of one staged batch: created by the deduplicator,
// reviewed, then either committed (NEW) or discarded.
type ClassifiedQuestion struct {
	CanonicalQuestion
	Status QuestionStatus `json:"status"`
}

// StoredQuestion is a question as persisted in a bank. Identity is
// assigned by storage, never by the pipeline.
type StoredQuestion struct {
	ID     uuid.UUID `json:"id"`
	BankID uuid.UUID `json:"bank_id"`
	CanonicalQuestion
}

// CommitRequest confirms a staged batch. SelectedKeys optionally narrows
// the commit to a subset of NEW entries by dedup key; empty means all.
type CommitRequest struct {
	SelectedKeys []string `json:"selected_keys" binding:"omitempty,dive,min=1"`
}
