package repository

import (
	"errors"

	"quizapp/apperrors"
	"quizapp/models"

	"gorm.io/gorm"
)

// QuizAttemptRepository is the storage gateway for graded attempts.
// Attempts are write-once: there is deliberately no update method.
type QuizAttemptRepository interface {
	Create(attempt *models.QuizAttempt) error
	GetByID(id uint) (*models.QuizAttempt, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) Create(attempt *models.QuizAttempt) error {
	if err := r.db.Create(attempt).Error; err != nil {
		return apperrors.NewStorage("create quiz attempt", err)
	}
	return nil
}

func (r *quizAttemptRepository) GetByID(id uint) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	err := r.db.
		Preload("Quiz").
		First(&attempt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorage("get quiz attempt", err)
	}
	return &attempt, nil
}
