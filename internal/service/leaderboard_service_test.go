package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepstack/examprep/internal/model"
	"github.com/prepstack/examprep/internal/service"
)

func seedAttempt(repo *fakeAttemptRepo, userID, testID uint, score int, completedAt time.Time) {
	_ = repo.Create(&model.Attempt{
		UserID:         userID,
		TestID:         testID,
		Score:          score,
		TotalQuestions: 5,
		Answers:        model.AnswerSheet{},
		CompletedAt:    completedAt,
	})
}

func seedTest(repo *fakeTestRepo, title string) uint {
	test := model.Test{Title: title, TotalQuestions: 5}
	_ = repo.Create(&test)
	return test.ID
}

func uintPtr(v uint) *uint { return &v }

func TestGlobalLeaderboard_SumsScoresAcrossTests(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	testRepo := newFakeTestRepo()
	userRepo := newFakeUserRepo()
	_ = userRepo.Create(&model.User{Name: "Asha"})  // user 1
	_ = userRepo.Create(&model.User{Name: "Binh"})  // user 2
	svc := service.NewLeaderboardService(attemptRepo, testRepo, userRepo)

	now := time.Unix(1700000000, 0)
	seedAttempt(attemptRepo, 1, 1, 10, now)
	seedAttempt(attemptRepo, 1, 2, 15, now)
	seedAttempt(attemptRepo, 2, 1, 20, now)

	board, err := svc.GlobalLeaderboard(uintPtr(1))
	require.NoError(t, err)

	assert.Equal(t, 2, board.TotalParticipants)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, uint(1), board.Entries[0].UserID) // 25 total
	assert.Equal(t, 25, board.Entries[0].TotalScore)
	assert.Equal(t, 2, board.Entries[0].TestsAttempted)
	assert.Equal(t, "Asha", board.Entries[0].Name)
	assert.Equal(t, uint(2), board.Entries[1].UserID) // 20 total
	assert.Equal(t, 1, board.Entries[1].TestsAttempted)

	require.NotNil(t, board.Standing)
	assert.Equal(t, 1, board.Standing.Rank)
	assert.Equal(t, 100, board.Standing.AheadOfPercent)
}

func TestGlobalLeaderboard_TiePercentiles(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	svc := service.NewLeaderboardService(attemptRepo, newFakeTestRepo(), newFakeUserRepo())

	now := time.Unix(1700000000, 0)
	seedAttempt(attemptRepo, 1, 1, 20, now)
	seedAttempt(attemptRepo, 2, 1, 20, now)
	seedAttempt(attemptRepo, 3, 1, 10, now)

	board, err := svc.GlobalLeaderboard(nil)
	require.NoError(t, err)
	require.Len(t, board.Entries, 3)

	// Ordinal ranks are distinct even on the tie, but ahead-of percent only
	// counts strictly lower scores: both 20s are ahead of 50%, the 10 of 0%.
	byUser := map[uint]int{}
	for _, e := range board.Entries {
		byUser[e.UserID] = e.AheadOfPercent
	}
	assert.Equal(t, 50, byUser[1])
	assert.Equal(t, 50, byUser[2])
	assert.Equal(t, 0, byUser[3])
	assert.Equal(t, []int{1, 2, 3}, []int{board.Entries[0].Rank, board.Entries[1].Rank, board.Entries[2].Rank})
}

func TestGlobalLeaderboard_EmptyPopulationSentinel(t *testing.T) {
	svc := service.NewLeaderboardService(newFakeAttemptRepo(), newFakeTestRepo(), newFakeUserRepo())

	board, err := svc.GlobalLeaderboard(uintPtr(1))
	require.NoError(t, err)

	assert.Equal(t, 0, board.TotalParticipants)
	assert.Empty(t, board.Entries)
	assert.Nil(t, board.Standing)
}

func TestGlobalLeaderboard_ReadFailureDegradesToEmptyBoard(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	attemptRepo.failReads = true
	svc := service.NewLeaderboardService(attemptRepo, newFakeTestRepo(), newFakeUserRepo())

	board, err := svc.GlobalLeaderboard(nil)

	// Aggregation reads never surface hard errors.
	require.NoError(t, err)
	assert.Equal(t, 0, board.TotalParticipants)
	assert.Empty(t, board.Entries)
}

func TestGlobalLeaderboard_SubjectNotInPopulation(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	svc := service.NewLeaderboardService(attemptRepo, newFakeTestRepo(), newFakeUserRepo())
	seedAttempt(attemptRepo, 1, 1, 10, time.Unix(1700000000, 0))

	board, err := svc.GlobalLeaderboard(uintPtr(42))
	require.NoError(t, err)

	// The board is still returned for others; the subject has no standing.
	assert.Len(t, board.Entries, 1)
	assert.Nil(t, board.Standing)
}

func TestTestLeaderboard_DeduplicatesToBestAttempt(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	testRepo := newFakeTestRepo()
	testID := seedTest(testRepo, "Mock Test 1")
	svc := service.NewLeaderboardService(attemptRepo, testRepo, newFakeUserRepo())

	now := time.Unix(1700000000, 0)
	seedAttempt(attemptRepo, 1, testID, 8, now)
	seedAttempt(attemptRepo, 1, testID, 12, now.Add(time.Hour))
	seedAttempt(attemptRepo, 2, testID, 10, now)

	board, err := svc.TestLeaderboard(testID, uintPtr(1))
	require.NoError(t, err)

	// User 1 appears once, ranked on 12, and is not double-counted.
	assert.Equal(t, 2, board.TotalParticipants)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, uint(1), board.Entries[0].UserID)
	assert.Equal(t, 12, board.Entries[0].Score)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, 60, board.Entries[0].Accuracy) // 12 of 20

	require.NotNil(t, board.Standing)
	assert.Equal(t, uint(1), board.Standing.UserID)
	assert.Equal(t, 12, board.Standing.Score)
}

func TestTestLeaderboard_ScoreTieKeepsEarlierAttempt(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	testRepo := newFakeTestRepo()
	testID := seedTest(testRepo, "Mock Test 1")
	svc := service.NewLeaderboardService(attemptRepo, testRepo, newFakeUserRepo())

	now := time.Unix(1700000000, 0)
	seedAttempt(attemptRepo, 1, testID, 12, now.Add(time.Hour)) // attempt 1, later
	seedAttempt(attemptRepo, 1, testID, 12, now)                // attempt 2, earlier

	board, err := svc.TestLeaderboard(testID, nil)
	require.NoError(t, err)

	require.Len(t, board.Entries, 1)
	assert.Equal(t, uint(2), board.Entries[0].AttemptID)
	assert.Equal(t, now, board.Entries[0].CompletedAt)
}

func TestTestLeaderboard_EmptyBoardForTestWithoutAttempts(t *testing.T) {
	testRepo := newFakeTestRepo()
	testID := seedTest(testRepo, "Untouched Test")
	svc := service.NewLeaderboardService(newFakeAttemptRepo(), testRepo, newFakeUserRepo())

	board, err := svc.TestLeaderboard(testID, nil)
	require.NoError(t, err)

	assert.Equal(t, "Untouched Test", board.TestTitle)
	assert.Equal(t, 0, board.TotalParticipants)
	assert.Empty(t, board.Entries)
}

func TestTestLeaderboard_UnknownTest(t *testing.T) {
	svc := service.NewLeaderboardService(newFakeAttemptRepo(), newFakeTestRepo(), newFakeUserRepo())

	_, err := svc.TestLeaderboard(99, nil)

	assert.Error(t, err)
}

func TestUserPerformance_JoinsPerTestStats(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	testRepo := newFakeTestRepo()
	testID := seedTest(testRepo, "Mock Test 1")
	svc := service.NewLeaderboardService(attemptRepo, testRepo, newFakeUserRepo())

	now := time.Unix(1700000000, 0)
	seedAttempt(attemptRepo, 1, testID, 10, now)
	seedAttempt(attemptRepo, 2, testID, 2, now)
	seedAttempt(attemptRepo, 3, testID, 8, now)
	seedAttempt(attemptRepo, 3, testID, 4, now.Add(time.Hour))

	perf, err := svc.UserPerformance(3)
	require.NoError(t, err)

	assert.Equal(t, uint(3), perf.UserID)
	assert.Equal(t, 2, perf.TestsAttempted)
	assert.Equal(t, 12, perf.TotalScore)
	require.Len(t, perf.Entries, 2)

	stats := perf.Entries[0].TestStats
	assert.Equal(t, 4, stats.Attempts)
	assert.InDelta(t, 6.0, stats.AverageScore, 1e-9) // (10+2+8+4)/4
	assert.Equal(t, 10, stats.HighestScore)
	assert.InDelta(t, 6.0, stats.MedianScore, 1e-9)
	assert.Equal(t, "Mock Test 1", perf.Entries[0].TestTitle)
}

func TestUserPerformance_NoAttempts(t *testing.T) {
	svc := service.NewLeaderboardService(newFakeAttemptRepo(), newFakeTestRepo(), newFakeUserRepo())

	perf, err := svc.UserPerformance(5)
	require.NoError(t, err)

	assert.Equal(t, 0, perf.TestsAttempted)
	assert.Empty(t, perf.Entries)
}

func TestLeaderboards_ReadsAreIdempotent(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	testRepo := newFakeTestRepo()
	testID := seedTest(testRepo, "Mock Test 1")
	svc := service.NewLeaderboardService(attemptRepo, testRepo, newFakeUserRepo())

	now := time.Unix(1700000000, 0)
	seedAttempt(attemptRepo, 1, testID, 17, now)
	seedAttempt(attemptRepo, 2, testID, 17, now.Add(time.Minute))
	seedAttempt(attemptRepo, 3, testID, -2, now)

	first, err := svc.TestLeaderboard(testID, nil)
	require.NoError(t, err)
	second, err := svc.TestLeaderboard(testID, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	g1, err := svc.GlobalLeaderboard(nil)
	require.NoError(t, err)
	g2, err := svc.GlobalLeaderboard(nil)
	require.NoError(t, err)
	assert.Equal(t, g1, g2)
}
