package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/evalhub/qbank-ingest/internal/ingest"
	"github.com/evalhub/qbank-ingest/internal/model"
)

// Sentinel errors for the stage/commit flow.
var (
	ErrBatchNotFound   = errors.New("staged batch not found or expired")
	ErrNothingToCommit = errors.New("no new questions to commit")
)

// StagedBatch is one classified upload held for human confirmation.
// Commit consumes it; re-running detection after the user edits the
// source file always stages a fresh batch — staged state is never
// patched in place.
type StagedBatch struct {
	Token      string                     `json:"token"`
	BankID     uuid.UUID                  `json:"bank_id"`
	Hint       model.QuestionKind         `json:"kind"`
	Filename   string                     `json:"filename"`
	Classified []model.ClassifiedQuestion `json:"classified"`
	Skipped    []ingest.SkippedRow        `json:"skipped,omitempty"`
	NewCount   int                        `json:"new_count"`
	NoNew      bool                       `json:"no_new"`
}

// QuestionStore is the storage collaborator contract: snapshot fetch at
// stage time, batched persistence at commit time.
type QuestionStore interface {
	DedupKeys(ctx context.Context, bankID uuid.UUID) (map[string]struct{}, error)
	InsertBatch(ctx context.Context, bankID uuid.UUID, questions []model.CanonicalQuestion) (int, error)
}

// StagingStore holds staged batches between the preview and the
// explicit confirmation. Entries expire on their own if never confirmed.
type StagingStore interface {
	Put(ctx context.Context, batch *StagedBatch) error
	Get(ctx context.Context, token string) (*StagedBatch, error)
	Delete(ctx context.Context, token string) error
}

// IngestService coordinates the ingestion pipeline: one synchronous
// pipeline run per upload, then a mandatory human-in-the-loop commit.
// There is no automatic commit — silent duplicate suppression across
// unrelated uploads causes answer-key drift in this domain.
type IngestService struct {
	questions QuestionStore
	staging   StagingStore
	log       zerolog.Logger
}

// NewIngestService creates a new IngestService.
func NewIngestService(questions QuestionStore, staging StagingStore, log zerolog.Logger) *IngestService {
	return &IngestService{
		questions: questions,
		staging:   staging,
		log:       log.With().Str("component", "ingest_service").Logger(),
	}
}

// Stage runs the pipeline against a fresh existing-question snapshot
// for the bank and holds the classified result under a new confirmation
// token. Fatal pipeline errors (decode, unrecognized format) pass
// through to the caller untouched.
func (s *IngestService) Stage(ctx context.Context, bankID uuid.UUID, in ingest.Input) (*StagedBatch, error) {
	index, err := s.questions.DedupKeys(ctx, bankID)
	if err != nil {
		s.log.Error().Err(err).Str("bank_id", bankID.String()).Msg("failed to fetch dedup snapshot")
		return nil, err
	}

	result, err := ingest.Run(in, index)
	if err != nil {
		return nil, err
	}

	batch := &StagedBatch{
		Token:      uuid.New().String(),
		BankID:     bankID,
		Hint:       in.Hint,
		Filename:   in.Filename,
		Classified: result.Classified,
		Skipped:    result.Skipped,
		NewCount:   result.NewCount,
		NoNew:      result.NoNew,
	}

	if err := s.staging.Put(ctx, batch); err != nil {
		s.log.Error().Err(err).Msg("failed to stage batch")
		return nil, err
	}

	s.log.Info().
		Str("bank_id", bankID.String()).
		Str("token", batch.Token).
		Str("file", in.Filename).
		Int("classified", len(batch.Classified)).
		Int("new", batch.NewCount).
		Int("skipped", len(batch.Skipped)).
		Msg("batch staged")

	return batch, nil
}

// Commit confirms a staged batch: only New entries are forwarded to
// storage, optionally narrowed to selectedKeys (dedup keys). Duplicate
// entries are discarded regardless of selection. The staged batch is
// consumed either way.
func (s *IngestService) Commit(ctx context.Context, token string, selectedKeys []string) (int, error) {
	batch, err := s.staging.Get(ctx, token)
	if err != nil {
		return 0, err
	}

	selected := make(map[string]struct{}, len(selectedKeys))
	for _, key := range selectedKeys {
		selected[key] = struct{}{}
	}

	var toCommit []model.CanonicalQuestion
	for _, c := range batch.Classified {
		if c.Status != model.StatusNew {
			continue
		}
		if len(selected) > 0 {
			if _, ok := selected[c.DedupKey()]; !ok {
				continue
			}
		}
		toCommit = append(toCommit, c.CanonicalQuestion)
	}

	if len(toCommit) == 0 {
		return 0, ErrNothingToCommit
	}

	inserted, err := s.questions.InsertBatch(ctx, batch.BankID, toCommit)
	if err != nil {
		s.log.Error().Err(err).Str("token", token).Msg("commit failed")
		return 0, err
	}

	if err := s.staging.Delete(ctx, token); err != nil {
		// The batch will expire on its own; commit already succeeded.
		s.log.Warn().Err(err).Str("token", token).Msg("failed to delete staged batch")
	}

	s.log.Info().
		Str("bank_id", batch.BankID.String()).
		Str("token", token).
		Int("committed", inserted).
		Msg("batch committed")

	return inserted, nil
}
