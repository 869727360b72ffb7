package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prepstack/examprep/internal/dto"
	"github.com/prepstack/examprep/internal/service"
)

type LeaderboardController struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardController(ls service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardService: ls}
}

// GetGlobalLeaderboard godoc
// @Summary (User) Global cross-test leaderboard
// @Description Ranks every user with at least one attempt by total score across all tests. Recomputed from raw attempts on every call.
// @Tags User - Leaderboards
// @Produce json
// @Param user_id query int false "Optional User ID to include that user's standing"
// @Success 200 {object} dto.GlobalLeaderboardDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Router /leaderboard [get]
func (c *LeaderboardController) GetGlobalLeaderboard(ctx *gin.Context) {
	subject, ok := parseOptionalIDQuery(ctx, "user_id")
	if !ok {
		return
	}

	board, err := c.leaderboardService.GlobalLeaderboard(subject)
	if err != nil {
		log.Error().Err(err).Msg("User GetGlobalLeaderboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute leaderboard", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, board)
}

// GetTestLeaderboard godoc
// @Summary (User) Per-test leaderboard
// @Description Ranks each user's single best attempt on one test. Re-attempts are collapsed before ranking.
// @Tags User - Leaderboards
// @Produce json
// @Param test_id path int true "Test ID"
// @Param user_id query int false "Optional User ID to include that user's standing"
// @Success 200 {object} dto.TestLeaderboardDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id}/leaderboard [get]
func (c *LeaderboardController) GetTestLeaderboard(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	subject, ok := parseOptionalIDQuery(ctx, "user_id")
	if !ok {
		return
	}

	board, err := c.leaderboardService.TestLeaderboard(testID, subject)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("User GetTestLeaderboard: test not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, board)
}

// GetUserPerformance godoc
// @Summary (User) Per-user performance summary
// @Description The user's own attempts joined with per-test population statistics (average, highest, median).
// @Tags User - Leaderboards
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.PerformanceDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Router /users/{user_id}/performance [get]
func (c *LeaderboardController) GetUserPerformance(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}

	perf, err := c.leaderboardService.UserPerformance(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("User GetUserPerformance: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute performance summary", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, perf)
}
