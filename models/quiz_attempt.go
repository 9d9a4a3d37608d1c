package models

import (
	"time"
)

// QuizAttempt is a write-once record of one graded submission. It is
// never updated after creation.
type QuizAttempt struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	QuizID          uint      `json:"quiz_id" gorm:"not null;index"`
	AttemptByUserID string    `json:"attempt_by_user_id" gorm:"not null;index"`
	Score           int       `json:"score" gorm:"not null"`
	TotalQuestions  int       `json:"total_questions" gorm:"not null"`
	CorrectAnswers  int       `json:"correct_answers" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`

	// Relationships
	Quiz Quiz `json:"quiz,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
