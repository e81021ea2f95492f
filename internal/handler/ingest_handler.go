package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/evalhub/qbank-ingest/internal/config"
	"github.com/evalhub/qbank-ingest/internal/ingest"
	"github.com/evalhub/qbank-ingest/internal/model"
	"github.com/evalhub/qbank-ingest/internal/response"
	"github.com/evalhub/qbank-ingest/internal/service"
	"github.com/evalhub/qbank-ingest/internal/validator"
)

// Accepted upload extensions, as declared by the file name.
var allowedExtensions = map[string]struct{}{
	".csv":  {},
	".xlsx": {},
	".xls":  {},
	".txt":  {},
}

// kindParams maps the public kind parameter onto question kinds.
var kindParams = map[string]model.QuestionKind{
	"mcq":      model.KindMCQ,
	"compiler": model.KindCompilerIntegrated,
	"legacy":   model.KindLegacyTechnical,
}

// BankFinder locates the target bank an import is scoped to.
type BankFinder interface {
	GetBank(ctx context.Context, id uuid.UUID) (*model.QuestionBank, error)
}

// IngestHandler handles question import endpoints.
type IngestHandler struct {
	ingestService *service.IngestService
	banks         BankFinder
	cfg           *config.Config
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(ingestService *service.IngestService, banks BankFinder, cfg *config.Config) *IngestHandler {
	return &IngestHandler{
		ingestService: ingestService,
		banks:         banks,
		cfg:           cfg,
	}
}

// StageImport godoc
// POST /api/v1/banks/:id/imports
// Uploads a question file, runs the ingestion pipeline and returns the
// classified batch for review. Nothing is persisted until commit.
func (h *IngestHandler) StageImport(c *gin.Context) {
	bankID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	hint, ok := kindParams[strings.ToLower(c.PostForm("kind"))]
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidQuestionKind)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		return
	}
	if header.Size > h.cfg.MaxUploadBytes {
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if _, err := h.banks.GetBank(c.Request.Context(), bankID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	batch, err := h.ingestService.Stage(c.Request.Context(), bankID, ingest.Input{
		Filename: header.Filename,
		Ext:      ext,
		Hint:     hint,
		Data:     data,
	})
	if err != nil {
		var decodeErr *ingest.DecodeError
		switch {
		case errors.As(err, &decodeErr):
			response.Fail(c, http.StatusBadRequest, response.ErrDecodeFailed)
		case errors.Is(err, ingest.ErrUnrecognizedFormat):
			response.Fail(c, http.StatusBadRequest, response.ErrUnrecognizedFormat)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"batch": batch})
}

// CommitImport godoc
// POST /api/v1/imports/:token/commit
// Confirms a staged batch. Only New entries are persisted; an optional
// selected_keys list narrows the commit further.
func (h *IngestHandler) CommitImport(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CommitRequest
	if c.Request.ContentLength > 0 {
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return
		}
	}

	committed, err := h.ingestService.Commit(c.Request.Context(), token.String(), req.SelectedKeys)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBatchNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrBatchNotFound)
		case errors.Is(err, service.ErrNothingToCommit):
			response.Fail(c, http.StatusConflict, response.ErrNothingToCommit)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"committed": committed})
}
