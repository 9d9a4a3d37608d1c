package services

import (
	"quizapp/apperrors"
	"quizapp/models"
	"quizapp/repository"
)

// QuizService composes quizzes out of the reusable question bank. A quiz
// never owns its questions; it links to them through QuizQuestion rows.
type QuizService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
}

func NewQuizService(quizRepo repository.QuizRepository, questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
	}
}

type CreateQuizRequest struct {
	Name            string `json:"name" binding:"required"`
	TimeLimit       *int   `json:"time_limit"`
	CreatedByUserID string `json:"created_by_user_id" binding:"required"`
	QuestionIDs     []uint `json:"question_ids" binding:"required"`
}

type UpdateQuizRequest struct {
	Name        string `json:"name"`
	TimeLimit   *int   `json:"time_limit"`
	QuestionIDs []uint `json:"question_ids"`
}

// resolveQuestionLinks verifies every referenced question exists and
// builds the link rows in request order. Any miss aborts the whole
// operation; the composite link key cannot represent a duplicate, so
// duplicate ids are refused up front instead of silently collapsed.
func (s *QuizService) resolveQuestionLinks(questionIDs []uint) ([]models.QuizQuestion, error) {
	links := make([]models.QuizQuestion, 0, len(questionIDs))
	seen := make(map[uint]bool, len(questionIDs))

	for _, questionID := range questionIDs {
		if seen[questionID] {
			return nil, apperrors.NewValidation("question with ID %d is listed more than once", questionID)
		}
		seen[questionID] = true

		question, err := s.questionRepo.GetByID(questionID)
		if err != nil {
			return nil, err
		}
		if question == nil {
			return nil, apperrors.NewNotFound("Question", questionID)
		}

		links = append(links, models.QuizQuestion{QuestionID: question.ID})
	}

	return links, nil
}

// CreateQuiz validates every referenced question, then persists the quiz
// and its links as one unit. Nothing is written if any lookup misses.
func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	links, err := s.resolveQuestionLinks(req.QuestionIDs)
	if err != nil {
		return nil, err
	}

	quiz := &models.Quiz{
		Name:            req.Name,
		TimeLimit:       req.TimeLimit,
		CreatedByUserID: req.CreatedByUserID,
		QuizQuestions:   links,
	}

	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, err
	}

	return s.GetQuizByID(quiz.ID)
}

func (s *QuizService) GetQuizByID(id uint) (*models.Quiz, error) {
	quiz, err := s.quizRepo.GetWithQuestions(id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperrors.NewNotFound("Quiz", id)
	}
	return quiz, nil
}

// GetQuizWithFullQuestions returns the deep graph including every
// question's options, for the full-detail view.
func (s *QuizService) GetQuizWithFullQuestions(id uint) (*models.Quiz, error) {
	quiz, err := s.quizRepo.GetWithFullQuestions(id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperrors.NewNotFound("Quiz", id)
	}
	return quiz, nil
}

func (s *QuizService) GetPaginatedQuizzes(createdByUserID, name string, page, pageSize int) (*repository.PaginatedResult[models.Quiz], error) {
	return s.quizRepo.GetPaginated(createdByUserID, name, page, pageSize)
}

// UpdateQuiz applies non-empty field overrides. A TimeLimit of 0 clears
// the limit. When QuestionIDs is present the entire link set is replaced
// after the same all-or-nothing validation as on create.
func (s *QuizService) UpdateQuiz(id uint, req *UpdateQuizRequest) (*models.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperrors.NewNotFound("Quiz", id)
	}

	if req.Name != "" {
		quiz.Name = req.Name
	}
	if req.TimeLimit != nil {
		if *req.TimeLimit == 0 {
			quiz.TimeLimit = nil
		} else {
			quiz.TimeLimit = req.TimeLimit
		}
	}

	replaceLinks := req.QuestionIDs != nil
	if replaceLinks {
		links, err := s.resolveQuestionLinks(req.QuestionIDs)
		if err != nil {
			return nil, err
		}
		quiz.QuizQuestions = links
	}

	if err := s.quizRepo.Update(quiz, replaceLinks); err != nil {
		return nil, err
	}

	return s.GetQuizByID(id)
}

func (s *QuizService) DeleteQuiz(id uint) error {
	return s.quizRepo.Delete(id)
}
