package services

import (
	"quizapp/apperrors"
	"quizapp/models"
	"quizapp/repository"
)

// In-memory storage gateway fakes. They honor the gateway contract the
// services rely on: reads return (nil, nil) on a miss, deletes of absent
// rows return NotFoundError.

type fakeQuizRepo struct {
	quizzes map[uint]*models.Quiz
	nextID  uint

	createCalls      int
	lastReplaceLinks bool
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[uint]*models.Quiz), nextID: 1}
}

func (f *fakeQuizRepo) Create(quiz *models.Quiz) error {
	quiz.ID = f.nextID
	f.nextID++
	for i := range quiz.QuizQuestions {
		quiz.QuizQuestions[i].QuizID = quiz.ID
	}
	f.quizzes[quiz.ID] = quiz
	f.createCalls++
	return nil
}

func (f *fakeQuizRepo) GetByID(id uint) (*models.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, nil
	}
	return quiz, nil
}

func (f *fakeQuizRepo) GetWithQuestions(id uint) (*models.Quiz, error) {
	return f.GetByID(id)
}

func (f *fakeQuizRepo) GetWithFullQuestions(id uint) (*models.Quiz, error) {
	return f.GetByID(id)
}

func (f *fakeQuizRepo) GetPaginated(createdByUserID, name string, page, pageSize int) (*repository.PaginatedResult[models.Quiz], error) {
	if err := repository.ValidatePageArgs(page, pageSize); err != nil {
		return nil, err
	}
	items := make([]models.Quiz, 0, len(f.quizzes))
	for _, quiz := range f.quizzes {
		items = append(items, *quiz)
	}
	if err := repository.CheckPageRange(page, pageSize, int64(len(items))); err != nil {
		return nil, err
	}
	return &repository.PaginatedResult[models.Quiz]{
		Items:      items,
		TotalCount: int64(len(items)),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (f *fakeQuizRepo) Update(quiz *models.Quiz, replaceLinks bool) error {
	f.lastReplaceLinks = replaceLinks
	f.quizzes[quiz.ID] = quiz
	return nil
}

func (f *fakeQuizRepo) Delete(id uint) error {
	if _, ok := f.quizzes[id]; !ok {
		return apperrors.NewNotFound("Quiz", id)
	}
	delete(f.quizzes, id)
	return nil
}

type fakeQuestionRepo struct {
	questions map[uint]*models.Question
	nextID    uint

	lastReplaceOptions bool
}

func newFakeQuestionRepo(seed ...*models.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{questions: make(map[uint]*models.Question), nextID: 1}
	for _, question := range seed {
		repo.questions[question.ID] = question
		if question.ID >= repo.nextID {
			repo.nextID = question.ID + 1
		}
	}
	return repo
}

func (f *fakeQuestionRepo) Create(question *models.Question) error {
	question.ID = f.nextID
	f.nextID++
	for i := range question.Options {
		question.Options[i].ID = f.nextID
		question.Options[i].QuestionID = question.ID
		f.nextID++
	}
	f.questions[question.ID] = question
	return nil
}

func (f *fakeQuestionRepo) GetByID(id uint) (*models.Question, error) {
	question, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	return question, nil
}

func (f *fakeQuestionRepo) GetPaginated(createdByUserID, text string, page, pageSize int) (*repository.PaginatedResult[models.Question], error) {
	if err := repository.ValidatePageArgs(page, pageSize); err != nil {
		return nil, err
	}
	items := make([]models.Question, 0, len(f.questions))
	for _, question := range f.questions {
		items = append(items, *question)
	}
	if err := repository.CheckPageRange(page, pageSize, int64(len(items))); err != nil {
		return nil, err
	}
	return &repository.PaginatedResult[models.Question]{
		Items:      items,
		TotalCount: int64(len(items)),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (f *fakeQuestionRepo) Update(question *models.Question, replaceOptions bool) error {
	f.lastReplaceOptions = replaceOptions
	f.questions[question.ID] = question
	return nil
}

func (f *fakeQuestionRepo) Delete(id uint) error {
	if _, ok := f.questions[id]; !ok {
		return apperrors.NewNotFound("Question", id)
	}
	delete(f.questions, id)
	return nil
}

type fakeAttemptRepo struct {
	attempts map[uint]*models.QuizAttempt
	nextID   uint
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: make(map[uint]*models.QuizAttempt), nextID: 1}
}

func (f *fakeAttemptRepo) Create(attempt *models.QuizAttempt) error {
	attempt.ID = f.nextID
	f.nextID++
	f.attempts[attempt.ID] = attempt
	return nil
}

func (f *fakeAttemptRepo) GetByID(id uint) (*models.QuizAttempt, error) {
	attempt, ok := f.attempts[id]
	if !ok {
		return nil, nil
	}
	return attempt, nil
}

// questionWithOptions builds a bank question whose first listed option
// id is the canonical correct one.
func questionWithOptions(id uint, text string, correctOptionID uint, wrongOptionIDs ...uint) *models.Question {
	options := []models.QuestionOption{
		{ID: correctOptionID, QuestionID: id, Text: "correct", IsCorrectAnswer: true},
	}
	for _, optionID := range wrongOptionIDs {
		options = append(options, models.QuestionOption{ID: optionID, QuestionID: id, Text: "wrong", IsCorrectAnswer: false})
	}
	return &models.Question{ID: id, Text: text, CreatedByUserID: "auth0|creator", Options: options}
}
