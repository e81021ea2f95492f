package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/evalhub/qbank-ingest/internal/model"
	"github.com/evalhub/qbank-ingest/internal/repository"
	"github.com/evalhub/qbank-ingest/internal/response"
)

// QuestionService handles bank and stored-question reads for the
// review UI.
type QuestionService struct {
	bankRepo     *repository.BankRepository
	questionRepo *repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(bankRepo *repository.BankRepository, questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{bankRepo: bankRepo, questionRepo: questionRepo}
}

// ListBanks retrieves question banks with pagination.
func (s *QuestionService) ListBanks(ctx context.Context, page, perPage int, search string) ([]model.QuestionBank, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	banks, total, err := s.bankRepo.List(ctx, perPage, (page-1)*perPage, search)
	if err != nil {
		return nil, nil, err
	}
	if banks == nil {
		banks = []model.QuestionBank{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return banks, pagination, nil
}

// CreateBank creates a new question bank.
func (s *QuestionService) CreateBank(ctx context.Context, bank *model.QuestionBank) error {
	return s.bankRepo.Create(ctx, bank)
}

// GetBank retrieves a specific question bank.
func (s *QuestionService) GetBank(ctx context.Context, id uuid.UUID) (*model.QuestionBank, error) {
	return s.bankRepo.GetByID(ctx, id)
}

// ListQuestions retrieves all stored questions for a bank.
func (s *QuestionService) ListQuestions(ctx context.Context, bankID uuid.UUID) ([]model.StoredQuestion, error) {
	return s.questionRepo.ListByBank(ctx, bankID)
}
