package services

import (
	"log"
	"time"

	"quizapp/apperrors"
	"quizapp/models"
	"quizapp/repository"
)

// QuizAttemptService grades submitted attempts against the canonical
// correct options and persists the result. Grading is all-or-nothing: a
// missing quiz or question aborts the whole call and nothing is written.
type QuizAttemptService struct {
	attemptRepo  repository.QuizAttemptRepository
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	leaderboard  *LeaderboardService
	hub          *Hub
}

// NewQuizAttemptService wires the scoring engine. leaderboard and hub
// are optional; pass nil to disable the corresponding side channel.
func NewQuizAttemptService(
	attemptRepo repository.QuizAttemptRepository,
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	leaderboard *LeaderboardService,
	hub *Hub,
) *QuizAttemptService {
	return &QuizAttemptService{
		attemptRepo:  attemptRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		leaderboard:  leaderboard,
		hub:          hub,
	}
}

type CreateQuizAttemptRequest struct {
	QuizID           uint                     `json:"quiz_id" binding:"required"`
	AttemptByUserID  string                   `json:"attempt_by_user_id" binding:"required"`
	QuestionAttempts []QuestionAttemptRequest `json:"question_attempts" binding:"required"`
}

type QuestionAttemptRequest struct {
	QuestionID       uint  `json:"question_id" binding:"required"`
	SelectedOptionID *uint `json:"selected_option_id"`
}

// CreateQuizAttempt grades the submission and persists one attempt row.
//
// TotalQuestions snapshots the quiz's current linked-question count, not
// the number of submitted answers: callers may omit questions, and the
// omitted ones simply contribute nothing to the score.
func (s *QuizAttemptService) CreateQuizAttempt(req *CreateQuizAttemptRequest) (*models.QuizAttempt, error) {
	quiz, err := s.quizRepo.GetWithQuestions(req.QuizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperrors.NewNotFound("Quiz", req.QuizID)
	}

	score := 0
	correctAnswers := 0
	for _, questionAttempt := range req.QuestionAttempts {
		question, err := s.questionRepo.GetByID(questionAttempt.QuestionID)
		if err != nil {
			return nil, err
		}
		if question == nil {
			return nil, apperrors.NewNotFound("Question", questionAttempt.QuestionID)
		}

		if question.IsCorrectAnswer(questionAttempt.SelectedOptionID) {
			score++
			correctAnswers++
		}
	}

	attempt := &models.QuizAttempt{
		QuizID:          quiz.ID,
		AttemptByUserID: req.AttemptByUserID,
		Score:           score,
		TotalQuestions:  len(quiz.QuizQuestions),
		CorrectAnswers:  correctAnswers,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	// The attempt row is the source of truth; leaderboard and live feed
	// updates are best-effort.
	if s.leaderboard != nil {
		if err := s.leaderboard.RecordScore(quiz.ID, req.AttemptByUserID, score); err != nil {
			log.Printf("Failed to record leaderboard score for quiz %d: %v", quiz.ID, err)
		}
	}
	if s.hub != nil {
		s.hub.BroadcastToQuiz(quiz.ID, "attempt_scored", map[string]interface{}{
			"attempt_id":         attempt.ID,
			"attempt_by_user_id": attempt.AttemptByUserID,
			"score":              attempt.Score,
			"total_questions":    attempt.TotalQuestions,
		})
	}

	return attempt, nil
}

func (s *QuizAttemptService) GetQuizAttemptByID(id uint) (*models.QuizAttempt, error) {
	attempt, err := s.attemptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, apperrors.NewNotFound("QuizAttempt", id)
	}
	return attempt, nil
}
