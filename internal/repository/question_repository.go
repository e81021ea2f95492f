package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evalhub/qbank-ingest/internal/model"
)

// QuestionRepository is the storage collaborator the pipeline hands
// confirmed questions to. It owns persistent identity and the
// authoritative uniqueness check.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// DedupKeys returns the existing-question snapshot for a bank: the set
// of dedup keys present at the moment ingestion starts. The snapshot is
// owned by one pipeline invocation and never refreshed mid-run.
func (r *QuestionRepository) DedupKeys(ctx context.Context, bankID uuid.UUID) (map[string]struct{}, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT dedup_key FROM questions WHERE bank_id = $1`, bankID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys[key] = struct{}{}
	}
	return keys, rows.Err()
}

// InsertBatch persists confirmed questions in one transaction and
// returns how many rows were actually written. ON CONFLICT DO NOTHING
// on (bank_id, dedup_key) is the authoritative uniqueness check that
// resolves the snapshot race between concurrent uploads.
func (r *QuestionRepository) InsertBatch(ctx context.Context, bankID uuid.UUID, questions []model.CanonicalQuestion) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, q := range questions {
		batch.Queue(
			`INSERT INTO questions
			   (bank_id, kind, question_text, dedup_key,
			    option_a, option_b, option_c, option_d, answer,
			    test_case_id, test_case_input, expected_output, language)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			 ON CONFLICT (bank_id, dedup_key) DO NOTHING`,
			bankID, q.Kind, q.QuestionText, q.DedupKey(),
			q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.Answer,
			q.TestCaseID, q.TestCaseInput, q.ExpectedOutput, q.Language,
		)
	}

	results := tx.SendBatch(ctx, batch)
	inserted := 0
	for range questions {
		tag, err := results.Exec()
		if err != nil {
			results.Close()
			return 0, err
		}
		inserted += int(tag.RowsAffected())
	}
	if err := results.Close(); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

// ListByBank retrieves all stored questions for a bank in insertion
// order, for the review UI.
func (r *QuestionRepository) ListByBank(ctx context.Context, bankID uuid.UUID) ([]model.StoredQuestion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, bank_id, kind, question_text,
		        option_a, option_b, option_c, option_d, answer,
		        test_case_id, test_case_input, expected_output, language
		 FROM questions WHERE bank_id = $1
		 ORDER BY created_at`, bankID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.StoredQuestion
	for rows.Next() {
		var q model.StoredQuestion
		if err := rows.Scan(&q.ID, &q.BankID, &q.Kind, &q.QuestionText,
			&q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.Answer,
			&q.TestCaseID, &q.TestCaseInput, &q.ExpectedOutput, &q.Language); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// CountByBank returns the number of stored questions in a bank.
func (r *QuestionRepository) CountByBank(ctx context.Context, bankID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM questions WHERE bank_id = $1`, bankID).Scan(&count)
	return count, err
}
