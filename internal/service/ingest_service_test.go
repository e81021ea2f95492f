package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evalhub/qbank-ingest/internal/ingest"
	"github.com/evalhub/qbank-ingest/internal/model"
)

type fakeQuestionStore struct {
	keys     map[string]struct{}
	inserted [][]model.CanonicalQuestion
	keysErr  error
}

func (f *fakeQuestionStore) DedupKeys(_ context.Context, _ uuid.UUID) (map[string]struct{}, error) {
	if f.keysErr != nil {
		return nil, f.keysErr
	}
	if f.keys == nil {
		return map[string]struct{}{}, nil
	}
	return f.keys, nil
}

func (f *fakeQuestionStore) InsertBatch(_ context.Context, _ uuid.UUID, qs []model.CanonicalQuestion) (int, error) {
	f.inserted = append(f.inserted, qs)
	return len(qs), nil
}

type fakeStagingStore struct {
	batches map[string]*StagedBatch
}

func newFakeStagingStore() *fakeStagingStore {
	return &fakeStagingStore{batches: make(map[string]*StagedBatch)}
}

func (f *fakeStagingStore) Put(_ context.Context, batch *StagedBatch) error {
	f.batches[batch.Token] = batch
	return nil
}

func (f *fakeStagingStore) Get(_ context.Context, token string) (*StagedBatch, error) {
	batch, ok := f.batches[token]
	if !ok {
		return nil, ErrBatchNotFound
	}
	return batch, nil
}

func (f *fakeStagingStore) Delete(_ context.Context, token string) error {
	delete(f.batches, token)
	return nil
}

func mcqCSV() ingest.Input {
	csv := "Question,A,B,C,D,Answer\n" +
		"One?,1,2,3,4,A\n" +
		"Two?,1,2,3,4,B\n" +
		"One?,1,2,3,4,A\n"
	return ingest.Input{
		Filename: "upload.csv",
		Ext:      ".csv",
		Hint:     model.KindMCQ,
		Data:     []byte(csv),
	}
}

func newTestService(store *fakeQuestionStore, staging *fakeStagingStore) *IngestService {
	return NewIngestService(store, staging, zerolog.Nop())
}

func TestStageHoldsClassifiedBatch(t *testing.T) {
	store := &fakeQuestionStore{}
	staging := newFakeStagingStore()
	svc := newTestService(store, staging)
	bankID := uuid.New()

	batch, err := svc.Stage(context.Background(), bankID, mcqCSV())
	require.NoError(t, err)

	assert.NotEmpty(t, batch.Token)
	assert.Equal(t, bankID, batch.BankID)
	require.Len(t, batch.Classified, 3)
	assert.Equal(t, 2, batch.NewCount)
	assert.False(t, batch.NoNew)

	// Nothing persisted until commit.
	assert.Empty(t, store.inserted)
	assert.Contains(t, staging.batches, batch.Token)
}

func TestStageUsesBankSnapshot(t *testing.T) {
	store := &fakeQuestionStore{keys: map[string]struct{}{"one?": {}}}
	svc := newTestService(store, newFakeStagingStore())

	batch, err := svc.Stage(context.Background(), uuid.New(), mcqCSV())
	require.NoError(t, err)

	assert.Equal(t, model.StatusDuplicate, batch.Classified[0].Status)
	assert.Equal(t, model.StatusNew, batch.Classified[1].Status)
	assert.Equal(t, 1, batch.NewCount)
}

func TestStageFatalPipelineErrorPassesThrough(t *testing.T) {
	svc := newTestService(&fakeQuestionStore{}, newFakeStagingStore())

	_, err := svc.Stage(context.Background(), uuid.New(), ingest.Input{
		Ext:  ".txt",
		Hint: model.KindCompilerIntegrated,
		Data: []byte("no labels here"),
	})
	assert.ErrorIs(t, err, ingest.ErrUnrecognizedFormat)
}

func TestStageSnapshotFetchError(t *testing.T) {
	boom := errors.New("db down")
	svc := newTestService(&fakeQuestionStore{keysErr: boom}, newFakeStagingStore())

	_, err := svc.Stage(context.Background(), uuid.New(), mcqCSV())
	assert.ErrorIs(t, err, boom)
}

func TestCommitPersistsOnlyNewEntries(t *testing.T) {
	store := &fakeQuestionStore{}
	staging := newFakeStagingStore()
	svc := newTestService(store, staging)

	batch, err := svc.Stage(context.Background(), uuid.New(), mcqCSV())
	require.NoError(t, err)

	committed, err := svc.Commit(context.Background(), batch.Token, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, committed)

	require.Len(t, store.inserted, 1)
	texts := []string{store.inserted[0][0].QuestionText, store.inserted[0][1].QuestionText}
	assert.Equal(t, []string{"One?", "Two?"}, texts)

	// The staged batch is consumed by commit.
	assert.NotContains(t, staging.batches, batch.Token)
}

func TestCommitSelectedSubset(t *testing.T) {
	store := &fakeQuestionStore{}
	svc := newTestService(store, newFakeStagingStore())

	batch, err := svc.Stage(context.Background(), uuid.New(), mcqCSV())
	require.NoError(t, err)

	committed, err := svc.Commit(context.Background(), batch.Token, []string{"two?"})
	require.NoError(t, err)
	assert.Equal(t, 1, committed)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "Two?", store.inserted[0][0].QuestionText)
}

// Selecting only duplicate keys cannot resurrect them; duplicates are
// discarded regardless of selection.
func TestCommitSelectionCannotIncludeDuplicates(t *testing.T) {
	store := &fakeQuestionStore{keys: map[string]struct{}{"one?": {}, "two?": {}}}
	svc := newTestService(store, newFakeStagingStore())

	batch, err := svc.Stage(context.Background(), uuid.New(), mcqCSV())
	require.NoError(t, err)
	assert.True(t, batch.NoNew)

	_, err = svc.Commit(context.Background(), batch.Token, []string{"one?"})
	assert.ErrorIs(t, err, ErrNothingToCommit)
	assert.Empty(t, store.inserted)
}

func TestCommitUnknownToken(t *testing.T) {
	svc := newTestService(&fakeQuestionStore{}, newFakeStagingStore())

	_, err := svc.Commit(context.Background(), uuid.New().String(), nil)
	assert.ErrorIs(t, err, ErrBatchNotFound)
}
