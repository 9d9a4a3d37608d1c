package models

type QuestionOption struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	QuestionID      uint   `json:"question_id" gorm:"not null;index"`
	Text            string `json:"text" gorm:"not null"`
	IsCorrectAnswer bool   `json:"is_correct_answer" gorm:"not null;default:false"`
}
