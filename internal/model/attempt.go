package model

import (
	"time"
)

// Attempt is one persisted outcome of a user completing a test. Rows are
// append-only: nothing in the scoring or ranking paths ever updates or
// deletes an attempt, which is why there is no UpdatedAt and no soft delete.
// The same (UserID, TestID) pair may appear any number of times; leaderboards
// collapse re-attempts to the best one at read time.
type Attempt struct {
	ID             uint        `gorm:"primarykey" json:"id"`
	UserID         uint        `json:"user_id" gorm:"not null;index"`
	User           User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TestID         uint        `json:"test_id" gorm:"not null;index"`
	Test           Test        `json:"test,omitempty" gorm:"foreignKey:TestID"`
	Score          int         `json:"score" gorm:"not null"` // signed, net of negative marking, never clamped
	TotalQuestions int         `json:"total_questions" gorm:"not null"`
	Answers        AnswerSheet `json:"answers" gorm:"type:jsonb"`
	CompletedAt    time.Time   `json:"completed_at" gorm:"not null;index"`
	CreatedAt      time.Time   `json:"created_at"`
}
