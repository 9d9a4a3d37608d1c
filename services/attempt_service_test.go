package services

import (
	"strings"
	"testing"

	"quizapp/apperrors"
	"quizapp/models"
)

func newAttemptServiceForTest(quiz *models.Quiz, questions ...*models.Question) (*QuizAttemptService, *fakeAttemptRepo) {
	quizRepo := newFakeQuizRepo()
	if quiz != nil {
		quizRepo.quizzes[quiz.ID] = quiz
	}
	questionRepo := newFakeQuestionRepo(questions...)
	attemptRepo := newFakeAttemptRepo()
	return NewQuizAttemptService(attemptRepo, quizRepo, questionRepo, nil, nil), attemptRepo
}

func quizWithLinks(id uint, questionIDs ...uint) *models.Quiz {
	links := make([]models.QuizQuestion, 0, len(questionIDs))
	for _, questionID := range questionIDs {
		links = append(links, models.QuizQuestion{QuizID: id, QuestionID: questionID})
	}
	return &models.Quiz{ID: id, Name: "quiz", CreatedByUserID: "auth0|creator", QuizQuestions: links}
}

func optionID(id uint) *uint {
	return &id
}

func TestCreateQuizAttemptMixedAnswers(t *testing.T) {
	// Three questions with correct options 11, 21, 31. The submission
	// gets the first right, the second wrong, and skips the third.
	service, attemptRepo := newAttemptServiceForTest(
		quizWithLinks(1, 1, 2, 3),
		questionWithOptions(1, "q1", 11, 12),
		questionWithOptions(2, "q2", 21, 22),
		questionWithOptions(3, "q3", 31, 32),
	)

	attempt, err := service.CreateQuizAttempt(&CreateQuizAttemptRequest{
		QuizID:          1,
		AttemptByUserID: "auth0|bob",
		QuestionAttempts: []QuestionAttemptRequest{
			{QuestionID: 1, SelectedOptionID: optionID(11)},
			{QuestionID: 2, SelectedOptionID: optionID(22)},
			{QuestionID: 3, SelectedOptionID: nil},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuizAttempt: %v", err)
	}

	if attempt.Score != 1 {
		t.Errorf("score = %d, want 1", attempt.Score)
	}
	if attempt.CorrectAnswers != 1 {
		t.Errorf("correctAnswers = %d, want 1", attempt.CorrectAnswers)
	}
	if attempt.TotalQuestions != 3 {
		t.Errorf("totalQuestions = %d, want 3", attempt.TotalQuestions)
	}
	if attempt.CreatedAt.IsZero() {
		t.Error("attempt must carry a creation timestamp")
	}
	if len(attemptRepo.attempts) != 1 {
		t.Errorf("exactly one attempt row expected, got %d", len(attemptRepo.attempts))
	}
}

func TestCreateQuizAttemptAllCorrect(t *testing.T) {
	service, _ := newAttemptServiceForTest(
		quizWithLinks(1, 1, 2),
		questionWithOptions(1, "q1", 11, 12),
		questionWithOptions(2, "q2", 21, 22),
	)

	attempt, err := service.CreateQuizAttempt(&CreateQuizAttemptRequest{
		QuizID:          1,
		AttemptByUserID: "auth0|bob",
		QuestionAttempts: []QuestionAttemptRequest{
			{QuestionID: 1, SelectedOptionID: optionID(11)},
			{QuestionID: 2, SelectedOptionID: optionID(21)},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuizAttempt: %v", err)
	}

	if attempt.Score != 2 || attempt.CorrectAnswers != 2 {
		t.Errorf("score/correct = %d/%d, want 2/2", attempt.Score, attempt.CorrectAnswers)
	}
	if attempt.Score != attempt.CorrectAnswers {
		t.Error("score and correctAnswers must move together")
	}
}

func TestCreateQuizAttemptOmittedQuestionsStillCountInTotal(t *testing.T) {
	service, _ := newAttemptServiceForTest(
		quizWithLinks(1, 1, 2, 3),
		questionWithOptions(1, "q1", 11),
		questionWithOptions(2, "q2", 21),
		questionWithOptions(3, "q3", 31),
	)

	attempt, err := service.CreateQuizAttempt(&CreateQuizAttemptRequest{
		QuizID:          1,
		AttemptByUserID: "auth0|bob",
		QuestionAttempts: []QuestionAttemptRequest{
			{QuestionID: 2, SelectedOptionID: optionID(21)},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuizAttempt: %v", err)
	}

	if attempt.TotalQuestions != 3 {
		t.Errorf("totalQuestions must snapshot the quiz's link count, got %d", attempt.TotalQuestions)
	}
	if attempt.Score != 1 {
		t.Errorf("score = %d, want 1", attempt.Score)
	}
}

func TestCreateQuizAttemptMissingQuiz(t *testing.T) {
	service, attemptRepo := newAttemptServiceForTest(nil)

	_, err := service.CreateQuizAttempt(&CreateQuizAttemptRequest{
		QuizID:          7,
		AttemptByUserID: "auth0|bob",
	})

	if !apperrors.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if len(attemptRepo.attempts) != 0 {
		t.Error("no attempt may be persisted when the quiz is missing")
	}
}

func TestCreateQuizAttemptMissingQuestionAborts(t *testing.T) {
	service, attemptRepo := newAttemptServiceForTest(
		quizWithLinks(1, 1),
		questionWithOptions(1, "q1", 11),
	)

	_, err := service.CreateQuizAttempt(&CreateQuizAttemptRequest{
		QuizID:          1,
		AttemptByUserID: "auth0|bob",
		QuestionAttempts: []QuestionAttemptRequest{
			{QuestionID: 1, SelectedOptionID: optionID(11)},
			{QuestionID: 55, SelectedOptionID: optionID(1)},
		},
	})

	if !apperrors.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "55") {
		t.Errorf("error should name the missing question: %v", err)
	}
	if len(attemptRepo.attempts) != 0 {
		t.Error("grading is all-or-nothing; nothing may be persisted")
	}
}

func TestCreateQuizAttemptQuestionWithoutCorrectOption(t *testing.T) {
	// Storage does not enforce the single-correct invariant; a question
	// with no flagged option simply cannot be answered correctly.
	unanswerable := &models.Question{
		ID:   1,
		Text: "q1",
		Options: []models.QuestionOption{
			{ID: 11, QuestionID: 1, Text: "a"},
			{ID: 12, QuestionID: 1, Text: "b"},
		},
	}
	service, _ := newAttemptServiceForTest(quizWithLinks(1, 1), unanswerable)

	attempt, err := service.CreateQuizAttempt(&CreateQuizAttemptRequest{
		QuizID:          1,
		AttemptByUserID: "auth0|bob",
		QuestionAttempts: []QuestionAttemptRequest{
			{QuestionID: 1, SelectedOptionID: optionID(11)},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuizAttempt: %v", err)
	}
	if attempt.Score != 0 {
		t.Errorf("score = %d, want 0", attempt.Score)
	}
}

func TestGetQuizAttemptByID(t *testing.T) {
	service, _ := newAttemptServiceForTest(
		quizWithLinks(1, 1),
		questionWithOptions(1, "q1", 11),
	)

	created, err := service.CreateQuizAttempt(&CreateQuizAttemptRequest{
		QuizID:          1,
		AttemptByUserID: "auth0|bob",
		QuestionAttempts: []QuestionAttemptRequest{
			{QuestionID: 1, SelectedOptionID: optionID(11)},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuizAttempt: %v", err)
	}

	fetched, err := service.GetQuizAttemptByID(created.ID)
	if err != nil {
		t.Fatalf("GetQuizAttemptByID: %v", err)
	}
	if fetched.Score != created.Score || fetched.AttemptByUserID != created.AttemptByUserID {
		t.Error("fetched attempt differs from the created one")
	}

	if _, err := service.GetQuizAttemptByID(999); !apperrors.IsNotFound(err) {
		t.Errorf("want NotFoundError for unknown attempt, got %v", err)
	}
}
