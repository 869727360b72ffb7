package repository

import (
	"github.com/prepstack/examprep/internal/model"
	"gorm.io/gorm"
)

// MaxScanRows caps how many attempt rows any aggregation scan will pull from
// the store. Rows beyond the cap are silently excluded; this is the known
// scalability ceiling of recomputing leaderboards from raw attempts.
const MaxScanRows = 5000

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindByIDWithTest(id uint) (*model.Attempt, error)
	FindAll(limit int) ([]model.Attempt, error)
	FindByTest(testID uint, limit int) ([]model.Attempt, error)
	FindByUser(userID uint) ([]model.Attempt, error)
	FindByTestAndUser(testID, userID uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

// Create appends exactly one attempt row. There is deliberately no Update or
// Delete on this repository: attempts are immutable once written, and
// resubmission creates a second independent row.
func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) FindByIDWithTest(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.Preload("Test").First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) FindAll(limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Order("score DESC").Limit(capLimit(limit)).Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByTest(testID uint, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("test_id = ?", testID).
		Order("score DESC").
		Limit(capLimit(limit)).
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByUser(userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(MaxScanRows).
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByTestAndUser(testID, userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("test_id = ? AND user_id = ?", testID, userID).
		Order("completed_at DESC").
		Limit(MaxScanRows).
		Find(&attempts).Error
	return attempts, err
}

func capLimit(limit int) int {
	if limit <= 0 || limit > MaxScanRows {
		return MaxScanRows
	}
	return limit
}
