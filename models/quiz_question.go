package models

// QuizQuestion links a quiz to one of its questions. The composite key
// means a question can appear in a quiz at most once, while still being
// reusable across quizzes.
type QuizQuestion struct {
	QuizID     uint `json:"quiz_id" gorm:"primaryKey;autoIncrement:false"`
	QuestionID uint `json:"question_id" gorm:"primaryKey;autoIncrement:false"`

	// Relationships
	Quiz     Quiz     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Question Question `json:"question,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
