package dto

import "time"

// GlobalLeaderboardEntryDTO ranks one user by the sum of their scores across
// every attempt on every test.
type GlobalLeaderboardEntryDTO struct {
	Rank           int    `json:"rank"`
	UserID         uint   `json:"user_id"`
	Name           string `json:"name,omitempty"`
	TotalScore     int    `json:"total_score"`
	TestsAttempted int    `json:"tests_attempted"`
	AheadOfPercent int    `json:"ahead_of_percent"`
}

// GlobalLeaderboardDTO is the cross-test board. An empty population is a
// valid board with zero participants, not an error. Standing is nil when the
// requesting user has no attempts.
type GlobalLeaderboardDTO struct {
	TotalParticipants int                         `json:"total_participants"`
	Entries           []GlobalLeaderboardEntryDTO `json:"entries"`
	Standing          *GlobalLeaderboardEntryDTO  `json:"standing,omitempty"`
}

// TestLeaderboardEntryDTO ranks one user's best attempt on a single test.
type TestLeaderboardEntryDTO struct {
	Rank           int       `json:"rank"`
	UserID         uint      `json:"user_id"`
	Name           string    `json:"name,omitempty"`
	AttemptID      uint      `json:"attempt_id"`
	Score          int       `json:"score"`
	Accuracy       int       `json:"accuracy"`
	AheadOfPercent int       `json:"ahead_of_percent"`
	CompletedAt    time.Time `json:"completed_at"`
}

type TestLeaderboardDTO struct {
	TestID            uint                      `json:"test_id"`
	TestTitle         string                    `json:"test_title,omitempty"`
	TotalParticipants int                       `json:"total_participants"`
	Entries           []TestLeaderboardEntryDTO `json:"entries"`
	Standing          *TestLeaderboardEntryDTO  `json:"standing,omitempty"`
}

// TestStatsDTO aggregates everyone's attempts on one test.
type TestStatsDTO struct {
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"average_score"`
	HighestScore int     `json:"highest_score"`
	MedianScore  float64 `json:"median_score"`
}

// PerformanceEntryDTO is one of the user's own attempts joined with the
// population statistics of that test.
type PerformanceEntryDTO struct {
	AttemptID      uint         `json:"attempt_id"`
	TestID         uint         `json:"test_id"`
	TestTitle      string       `json:"test_title,omitempty"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	Accuracy       int          `json:"accuracy"`
	CompletedAt    time.Time    `json:"completed_at"`
	TestStats      TestStatsDTO `json:"test_stats"`
}

// PerformanceDTO summarizes one user across all of their attempts. The
// aggregate fields are recomputed from attempts on every read.
type PerformanceDTO struct {
	UserID         uint                  `json:"user_id"`
	TotalScore     int                   `json:"total_score"`
	TestsAttempted int                   `json:"tests_attempted"`
	Entries        []PerformanceEntryDTO `json:"entries"`
}
