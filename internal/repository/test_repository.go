package repository

import (
	"github.com/prepstack/examprep/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindByIDWithQuestions(id uint) (*model.Test, error)
	FindAll() ([]model.Test, error)
	FindByIDs(ids []uint) ([]model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// Creating the test also creates its questions when test.Questions is
	// populated, via the foreignKey:TestID association.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.First(&test, id).Error
	return &test, err
}

func (r *testRepository) FindByIDWithQuestions(id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_in_test ASC")
		}).
		First(&test, id).Error
	return &test, err
}

func (r *testRepository) FindAll() ([]model.Test, error) {
	var tests []model.Test
	err := r.db.Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (r *testRepository) FindByIDs(ids []uint) ([]model.Test, error) {
	var tests []model.Test
	if len(ids) == 0 {
		return tests, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&tests).Error
	return tests, err
}
