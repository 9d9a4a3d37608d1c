package models

import (
	"time"
)

type Question struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Text            string    `json:"text" gorm:"not null"`
	CreatedByUserID string    `json:"created_by_user_id" gorm:"not null;index"`
	CreatedAt       time.Time `json:"created_at"`

	// Relationships
	Options       []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	QuizQuestions []QuizQuestion   `json:"-" gorm:"foreignKey:QuestionID"`
}

// CorrectOption returns the canonical correct option, the first one
// flagged IsCorrectAnswer. Returns nil if no option is flagged.
func (q *Question) CorrectOption() *QuestionOption {
	for i := range q.Options {
		if q.Options[i].IsCorrectAnswer {
			return &q.Options[i]
		}
	}
	return nil
}

// IsCorrectAnswer reports whether the selected option is the canonical
// correct one. A nil selection is simply incorrect.
func (q *Question) IsCorrectAnswer(selectedOptionID *uint) bool {
	if selectedOptionID == nil {
		return false
	}
	correct := q.CorrectOption()
	return correct != nil && correct.ID == *selectedOptionID
}
