package models

import (
	"time"
)

type Quiz struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	TimeLimit       *int      `json:"time_limit"` // minutes, nil means unlimited
	CreatedByUserID string    `json:"created_by_user_id" gorm:"not null;index"`
	CreatedAt       time.Time `json:"created_at"`

	// Relationships
	QuizQuestions []QuizQuestion `json:"quiz_questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Attempts      []QuizAttempt  `json:"attempts,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

// Questions flattens the link rows into the linked questions, preserving
// link order.
func (q *Quiz) Questions() []Question {
	questions := make([]Question, 0, len(q.QuizQuestions))
	for _, link := range q.QuizQuestions {
		questions = append(questions, link.Question)
	}
	return questions
}
