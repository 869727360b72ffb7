package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prepstack/examprep/internal/dto"
	"github.com/prepstack/examprep/internal/service"
)

type TestController struct {
	testService   service.TestService
	resultService service.ResultService
}

func NewTestController(ts service.TestService, rs service.ResultService) *TestController {
	return &TestController{testService: ts, resultService: rs}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Description Get the catalog of mock tests available for attempts.
// @Tags User - Tests & Attempts
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *TestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.testService.GetAllTests()
	if err != nil {
		log.Error().Err(err).Msg("User GetAllTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get full details of a test, including its questions (without correct answers), for a user to start an attempt.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *TestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	testDetails, err := c.testService.GetTestDetails(testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("User GetTestDetails: test not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// SubmitAttempt godoc
// @Summary (User) Submit answers for a completed test
// @Description Scores the sparse answer sheet against the test's answer key and records one immutable attempt.
// @Tags User - Tests & Attempts
// @Accept json
// @Produce json
// @Param test_id path int true "ID of the Test being attempted"
// @Param submission body dto.AttemptSubmitDTO true "User ID and sparse answers (question position -> option index)"
// @Success 201 {object} dto.AttemptDetailDTO "Attempt recorded with its score and breakdown"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Could not save result"
// @Router /tests/{test_id}/attempts [post]
func (c *TestController) SubmitAttempt(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}

	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User SubmitAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("testID", testID).Uint("userID", req.UserID).Int("answerCount", len(req.Answers)).Msg("Received attempt submission")

	detail, err := c.resultService.SubmitAttempt(ctx.Request.Context(), testID, req)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("User SubmitAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Could not save result", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}

// GetUserTestAttempts godoc
// @Summary (User) Get all attempts by a user for a specific test
// @Description Retrieve summaries of every attempt a user made on a test, newest first.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Param user_id query int true "User ID (will come from auth later)"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/my-attempts [get]
func (c *TestController) GetUserTestAttempts(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	userID, ok := parseIDQuery(ctx, "user_id")
	if !ok {
		return
	}

	attempts, err := c.resultService.GetUserAttemptsForTest(testID, userID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Uint("userID", userID).Msg("User GetUserTestAttempts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttempt godoc
// @Summary (User) Get details of a specific attempt
// @Description Retrieve the full outcome of one attempt: score, breakdown and the submitted answer sheet.
// @Tags User - Tests & Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *TestController) GetAttempt(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}

	detail, err := c.resultService.GetAttempt(attemptID)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("User GetAttempt: attempt not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// TakePendingResult godoc
// @Summary (User) Consume the pending result of a just-submitted attempt
// @Description One-shot read of the result summary stashed at submission time. A second read (or an expired stash) returns 404; fall back to the attempt detail endpoint.
// @Tags User - Tests & Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "No pending result"
// @Router /attempts/{attempt_id}/pending [get]
func (c *TestController) TakePendingResult(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}

	result, err := c.resultService.TakePendingResult(ctx.Request.Context(), attemptID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to read pending result", Details: []string{err.Error()}})
		return
	}
	if result == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No pending result for this attempt"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

func parseIDQuery(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format in query"})
		return 0, false
	}
	return uint(val), true
}

// parseOptionalIDQuery returns nil when the query param is absent.
func parseOptionalIDQuery(ctx *gin.Context, name string) (*uint, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format in query"})
		return nil, false
	}
	id := uint(val)
	return &id, true
}
