package services

import (
	"testing"

	"quizapp/apperrors"
)

func TestCreateQuestionEnforcesSingleCorrectOption(t *testing.T) {
	tests := []struct {
		name    string
		options []QuestionOptionRequest
		wantErr bool
	}{
		{
			"exactly one correct",
			[]QuestionOptionRequest{
				{Text: "Paris", IsCorrectAnswer: true},
				{Text: "Lyon"},
			},
			false,
		},
		{
			"no correct option",
			[]QuestionOptionRequest{
				{Text: "Paris"},
				{Text: "Lyon"},
			},
			true,
		},
		{
			"two correct options",
			[]QuestionOptionRequest{
				{Text: "Paris", IsCorrectAnswer: true},
				{Text: "Lyon", IsCorrectAnswer: true},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQuestionService(newFakeQuestionRepo())
			question, err := service.CreateQuestion(&CreateQuestionRequest{
				Text:            "Capital of France?",
				CreatedByUserID: "auth0|alice",
				Options:         tt.options,
			})

			if tt.wantErr {
				if !apperrors.IsValidation(err) {
					t.Fatalf("want ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateQuestion: %v", err)
			}
			if len(question.Options) != len(tt.options) {
				t.Errorf("want %d options, got %d", len(tt.options), len(question.Options))
			}
			if question.CorrectOption() == nil {
				t.Error("created question must have a canonical correct option")
			}
		})
	}
}

func TestUpdateQuestionReplacesOptionsWholesale(t *testing.T) {
	questionRepo := newFakeQuestionRepo(questionWithOptions(1, "old text", 11, 12, 13))
	service := NewQuestionService(questionRepo)

	updated, err := service.UpdateQuestion(1, &UpdateQuestionRequest{
		Options: []QuestionOptionRequest{
			{Text: "new right", IsCorrectAnswer: true},
			{Text: "new wrong"},
		},
	})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}

	if len(updated.Options) != 2 {
		t.Fatalf("options must be replaced, not merged: got %d", len(updated.Options))
	}
	if !questionRepo.lastReplaceOptions {
		t.Error("providing options must trigger wholesale replacement")
	}
	if updated.Text != "old text" {
		t.Errorf("text must be untouched when omitted, got %q", updated.Text)
	}
}

func TestUpdateQuestionTextOnlyKeepsOptions(t *testing.T) {
	questionRepo := newFakeQuestionRepo(questionWithOptions(1, "old text", 11, 12))
	service := NewQuestionService(questionRepo)

	updated, err := service.UpdateQuestion(1, &UpdateQuestionRequest{Text: "new text"})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}

	if updated.Text != "new text" {
		t.Errorf("text not updated: %q", updated.Text)
	}
	if len(updated.Options) != 2 {
		t.Errorf("options must survive a text-only update, got %d", len(updated.Options))
	}
	if questionRepo.lastReplaceOptions {
		t.Error("omitting options must not replace them")
	}
}

func TestUpdateQuestionRejectsInvalidOptionSet(t *testing.T) {
	questionRepo := newFakeQuestionRepo(questionWithOptions(1, "text", 11, 12))
	service := NewQuestionService(questionRepo)

	_, err := service.UpdateQuestion(1, &UpdateQuestionRequest{
		Options: []QuestionOptionRequest{
			{Text: "a"},
			{Text: "b"},
		},
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("want ValidationError, got %v", err)
	}

	current, err := service.GetQuestionByID(1)
	if err != nil {
		t.Fatalf("GetQuestionByID: %v", err)
	}
	if len(current.Options) != 2 || current.CorrectOption() == nil {
		t.Error("failed update must leave the option set intact")
	}
}

func TestUpdateQuestionMissing(t *testing.T) {
	service := NewQuestionService(newFakeQuestionRepo())

	_, err := service.UpdateQuestion(42, &UpdateQuestionRequest{Text: "ghost"})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestDeleteQuestion(t *testing.T) {
	service := NewQuestionService(newFakeQuestionRepo(questionWithOptions(1, "text", 11)))

	if err := service.DeleteQuestion(1); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}
	if err := service.DeleteQuestion(1); !apperrors.IsNotFound(err) {
		t.Fatalf("second delete must report NotFoundError, got %v", err)
	}
}
