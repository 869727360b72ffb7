package dto

// AttemptSubmitDTO is the request body for submitting one completed test.
// Answers maps 0-based question positions to selected option indexes; a
// question the user skipped is simply absent from the map. An empty map is a
// valid (fully blank) submission.
type AttemptSubmitDTO struct {
	UserID  uint        `json:"user_id" binding:"required"`
	Answers map[int]int `json:"answers"`
}
