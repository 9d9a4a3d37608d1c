package repository

import (
	"errors"

	"quizapp/apperrors"
	"quizapp/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuizRepository is the storage gateway for quizzes and their question
// links. Reads return (nil, nil) on a miss; write failures come back as
// StorageError, a delete of an absent quiz as NotFoundError.
type QuizRepository interface {
	Create(quiz *models.Quiz) error
	GetByID(id uint) (*models.Quiz, error)
	GetWithQuestions(id uint) (*models.Quiz, error)
	GetWithFullQuestions(id uint) (*models.Quiz, error)
	GetPaginated(createdByUserID, name string, page, pageSize int) (*PaginatedResult[models.Quiz], error)
	Update(quiz *models.Quiz, replaceLinks bool) error
	Delete(id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// Create persists the quiz together with its link rows in one
// transaction, so a failed link insert leaves no partial quiz behind.
func (r *quizRepository) Create(quiz *models.Quiz) error {
	if err := r.db.Create(quiz).Error; err != nil {
		return apperrors.NewStorage("create quiz", err)
	}
	return nil
}

func (r *quizRepository) GetByID(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorage("get quiz", err)
	}
	return &quiz, nil
}

func (r *quizRepository) GetWithQuestions(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.
		Preload("QuizQuestions.Question").
		First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorage("get quiz with questions", err)
	}
	return &quiz, nil
}

func (r *quizRepository) GetWithFullQuestions(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.
		Preload("QuizQuestions.Question.Options").
		First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorage("get quiz with full questions", err)
	}
	return &quiz, nil
}

func (r *quizRepository) GetPaginated(createdByUserID, name string, page, pageSize int) (*PaginatedResult[models.Quiz], error) {
	filter := func(db *gorm.DB) *gorm.DB {
		query := db.Model(&models.Quiz{})
		if createdByUserID != "" {
			query = query.Where("created_by_user_id = ?", createdByUserID)
		}
		if name != "" {
			query = query.Where("name ILIKE ?", "%"+name+"%")
		}
		return query
	}

	fetch := filter(r.db).Preload("QuizQuestions")
	return paginate[models.Quiz](filter(r.db), fetch, page, pageSize)
}

// Update saves the quiz's own columns and, when replaceLinks is set,
// clears and rebuilds the full link set in the same transaction.
func (r *quizRepository) Update(quiz *models.Quiz, replaceLinks bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(quiz).Error; err != nil {
			return err
		}

		if !replaceLinks {
			return nil
		}

		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.QuizQuestion{}).Error; err != nil {
			return err
		}
		for i := range quiz.QuizQuestions {
			quiz.QuizQuestions[i].QuizID = quiz.ID
		}
		if len(quiz.QuizQuestions) > 0 {
			if err := tx.Create(&quiz.QuizQuestions).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewStorage("update quiz", err)
	}
	return nil
}

func (r *quizRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Quiz{}, id)
	if result.Error != nil {
		return apperrors.NewStorage("delete quiz", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Quiz", id)
	}
	return nil
}
