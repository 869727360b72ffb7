package repository

import (
	"github.com/prepstack/examprep/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByTestID(testID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByTestID(testID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("test_id = ?", testID).
		Order("order_in_test ASC").
		Find(&questions).Error
	return questions, err
}
