package repository

import (
	"errors"

	"quizapp/apperrors"
	"quizapp/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionRepository is the storage gateway for questions and their
// owned options. Options live and die with their question.
type QuestionRepository interface {
	Create(question *models.Question) error
	GetByID(id uint) (*models.Question, error)
	GetPaginated(createdByUserID, text string, page, pageSize int) (*PaginatedResult[models.Question], error)
	Update(question *models.Question, replaceOptions bool) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return apperrors.NewStorage("create question", err)
	}
	return nil
}

func (r *questionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.
		Preload("Options").
		First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorage("get question", err)
	}
	return &question, nil
}

func (r *questionRepository) GetPaginated(createdByUserID, text string, page, pageSize int) (*PaginatedResult[models.Question], error) {
	filter := func(db *gorm.DB) *gorm.DB {
		query := db.Model(&models.Question{})
		if createdByUserID != "" {
			query = query.Where("created_by_user_id = ?", createdByUserID)
		}
		if text != "" {
			query = query.Where("text ILIKE ?", "%"+text+"%")
		}
		return query
	}

	fetch := filter(r.db).Preload("Options")
	return paginate[models.Question](filter(r.db), fetch, page, pageSize)
}

// Update saves the question's own columns and, when replaceOptions is
// set, deletes every existing option and inserts the new set. Options
// are replaced wholesale, never diffed.
func (r *questionRepository) Update(question *models.Question, replaceOptions bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(question).Error; err != nil {
			return err
		}

		if !replaceOptions {
			return nil
		}

		if err := tx.Where("question_id = ?", question.ID).Delete(&models.QuestionOption{}).Error; err != nil {
			return err
		}
		for i := range question.Options {
			question.Options[i].ID = 0
			question.Options[i].QuestionID = question.ID
		}
		if len(question.Options) > 0 {
			if err := tx.Create(&question.Options).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewStorage("update question", err)
	}
	return nil
}

func (r *questionRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Question{}, id)
	if result.Error != nil {
		return apperrors.NewStorage("delete question", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Question", id)
	}
	return nil
}
