package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/evalhub/qbank-ingest/internal/model"
	"github.com/evalhub/qbank-ingest/internal/response"
	"github.com/evalhub/qbank-ingest/internal/service"
	"github.com/evalhub/qbank-ingest/internal/validator"
)

// QuestionHandler handles question bank endpoints.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListBanks godoc
// GET /api/v1/banks
// Lists question banks with pagination and optional name search.
func (h *QuestionHandler) ListBanks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	search := c.Query("search")

	banks, pagination, err := h.questionService.ListBanks(c.Request.Context(), page, perPage, search)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"banks": banks}, pagination)
}

// CreateBank godoc
// POST /api/v1/banks
// Creates a question bank.
func (h *QuestionHandler) CreateBank(c *gin.Context) {
	var req model.CreateBankRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	bank := &model.QuestionBank{
		Name:        req.Name,
		Topic:       req.Topic,
		Description: req.Description,
	}
	if err := h.questionService.CreateBank(c.Request.Context(), bank); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"bank": bank})
}

// GetBank godoc
// GET /api/v1/banks/:id
// Retrieves a single question bank.
func (h *QuestionHandler) GetBank(c *gin.Context) {
	bankID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	bank, err := h.questionService.GetBank(c.Request.Context(), bankID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bank": bank})
}

// ListQuestions godoc
// GET /api/v1/banks/:id/questions
// Lists all stored questions for a bank.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	bankID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	questions, err := h.questionService.ListQuestions(c.Request.Context(), bankID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if questions == nil {
		questions = []model.StoredQuestion{}
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}
