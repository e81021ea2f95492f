package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionBank is the named collection a question is filed under. It
// scopes the existing-question snapshot an ingestion run dedupes
// against.
type QuestionBank struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Topic       string    `json:"topic,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateBankRequest is the payload for creating a question bank.
type CreateBankRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=255"`
	Topic       string `json:"topic" binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty"`
}
