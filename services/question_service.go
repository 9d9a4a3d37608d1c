package services

import (
	"quizapp/apperrors"
	"quizapp/models"
	"quizapp/repository"
)

// QuestionService manages the reusable question bank.
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

type CreateQuestionRequest struct {
	Text            string                  `json:"text" binding:"required"`
	CreatedByUserID string                  `json:"created_by_user_id" binding:"required"`
	Options         []QuestionOptionRequest `json:"options" binding:"required,min=2,dive"`
}

type QuestionOptionRequest struct {
	Text            string `json:"text" binding:"required"`
	IsCorrectAnswer bool   `json:"is_correct_answer"`
}

type UpdateQuestionRequest struct {
	Text    string                  `json:"text"`
	Options []QuestionOptionRequest `json:"options"`
}

// validateOptions enforces the single-correct-option invariant at the
// composition boundary; the storage layer does not enforce it.
func validateOptions(options []QuestionOptionRequest) error {
	correctCount := 0
	for _, opt := range options {
		if opt.IsCorrectAnswer {
			correctCount++
		}
	}
	if correctCount != 1 {
		return apperrors.NewValidation("each question must have exactly one correct option, got %d", correctCount)
	}
	return nil
}

func buildOptions(requests []QuestionOptionRequest) []models.QuestionOption {
	options := make([]models.QuestionOption, 0, len(requests))
	for _, opt := range requests {
		options = append(options, models.QuestionOption{
			Text:            opt.Text,
			IsCorrectAnswer: opt.IsCorrectAnswer,
		})
	}
	return options
}

func (s *QuestionService) CreateQuestion(req *CreateQuestionRequest) (*models.Question, error) {
	if err := validateOptions(req.Options); err != nil {
		return nil, err
	}

	question := &models.Question{
		Text:            req.Text,
		CreatedByUserID: req.CreatedByUserID,
		Options:         buildOptions(req.Options),
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	return question, nil
}

func (s *QuestionService) GetQuestionByID(id uint) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperrors.NewNotFound("Question", id)
	}
	return question, nil
}

func (s *QuestionService) GetPaginatedQuestions(createdByUserID, text string, page, pageSize int) (*repository.PaginatedResult[models.Question], error) {
	return s.questionRepo.GetPaginated(createdByUserID, text, page, pageSize)
}

// UpdateQuestion applies a non-empty text override. When Options is
// present the existing option set is deleted and replaced wholesale.
func (s *QuestionService) UpdateQuestion(id uint, req *UpdateQuestionRequest) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperrors.NewNotFound("Question", id)
	}

	if req.Text != "" {
		question.Text = req.Text
	}

	replaceOptions := req.Options != nil
	if replaceOptions {
		if err := validateOptions(req.Options); err != nil {
			return nil, err
		}
		question.Options = buildOptions(req.Options)
	}

	if err := s.questionRepo.Update(question, replaceOptions); err != nil {
		return nil, err
	}

	return s.GetQuestionByID(id)
}

func (s *QuestionService) DeleteQuestion(id uint) error {
	return s.questionRepo.Delete(id)
}
