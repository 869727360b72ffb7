package dto

import "time"

// QuestionDTO is the user-facing view of a question. It deliberately omits
// the correct option index.
type QuestionDTO struct {
	ID          uint     `json:"id"`
	TestID      uint     `json:"test_id"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	OrderInTest int      `json:"order_in_test"`
}

// TestResponseDTO is used for displaying full test details to users.
type TestResponseDTO struct {
	ID             uint          `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	TotalQuestions int           `json:"total_questions"`
	Questions      []QuestionDTO `json:"questions,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// TestSummaryDTO is used for listing tests available to users.
type TestSummaryDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// AttemptDetailDTO is the full outcome of one attempt: the stored record plus
// the derived breakdown. It is also the payload the results view consumes
// from the pending-result scratch store.
type AttemptDetailDTO struct {
	ID             uint        `json:"id"`
	TestID         uint        `json:"test_id"`
	TestTitle      string      `json:"test_title,omitempty"`
	UserID         uint        `json:"user_id"`
	Score          int         `json:"score"` // signed, never clamped
	MaxScore       int         `json:"max_score"`
	TotalQuestions int         `json:"total_questions"`
	Correct        int         `json:"correct"`
	Incorrect      int         `json:"incorrect"`
	Unattempted    int         `json:"unattempted"`
	Accuracy       int         `json:"accuracy"` // percent of max score, may be negative
	Answers        map[int]int `json:"answers"`
	CompletedAt    time.Time   `json:"completed_at"`
}

// AttemptSummaryDTO is for listing a user's attempts on a test.
type AttemptSummaryDTO struct {
	ID             uint      `json:"id"`
	TestID         uint      `json:"test_id"`
	UserID         uint      `json:"user_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Accuracy       int       `json:"accuracy"`
	CompletedAt    time.Time `json:"completed_at"`
}

type UserResponseDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
