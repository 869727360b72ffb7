package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/prepstack/examprep/internal/dto"
	"github.com/prepstack/examprep/internal/model"
	"github.com/prepstack/examprep/internal/ranking"
	"github.com/prepstack/examprep/internal/repository"
)

// LeaderboardService recomputes every board from raw attempt rows on each
// call. There is no cached or incremental index, so two near-simultaneous
// reads during concurrent submissions may observe slightly different boards;
// that staleness window is tolerated for an informational leaderboard.
//
// All three scopes share the math in internal/ranking; this service only
// selects populations and metrics. A failed read degrades to the empty board
// or a nil standing instead of surfacing a hard error.
type LeaderboardService interface {
	GlobalLeaderboard(subjectUserID *uint) (*dto.GlobalLeaderboardDTO, error)
	TestLeaderboard(testID uint, subjectUserID *uint) (*dto.TestLeaderboardDTO, error)
	UserPerformance(userID uint) (*dto.PerformanceDTO, error)
}

type leaderboardService struct {
	attemptRepo repository.AttemptRepository
	testRepo    repository.TestRepository
	userRepo    repository.UserRepository
}

func NewLeaderboardService(
	attemptRepo repository.AttemptRepository,
	testRepo repository.TestRepository,
	userRepo repository.UserRepository,
) LeaderboardService {
	return &leaderboardService{
		attemptRepo: attemptRepo,
		testRepo:    testRepo,
		userRepo:    userRepo,
	}
}

// GlobalLeaderboard ranks every user with at least one attempt by the sum of
// their scores across all attempts on all tests.
func (s *leaderboardService) GlobalLeaderboard(subjectUserID *uint) (*dto.GlobalLeaderboardDTO, error) {
	board := &dto.GlobalLeaderboardDTO{Entries: []dto.GlobalLeaderboardEntryDTO{}}

	attempts, err := s.attemptRepo.FindAll(repository.MaxScanRows)
	if err != nil {
		log.Warn().Err(err).Msg("GlobalLeaderboard: attempt scan failed, returning empty board")
		return board, nil
	}
	if len(attempts) == 0 {
		return board, nil
	}

	totals := make(map[uint]int)
	counts := make(map[uint]int)
	for _, a := range attempts {
		totals[a.UserID] += a.Score
		counts[a.UserID]++
	}

	entries := make([]ranking.Entry, 0, len(totals))
	for userID, total := range totals {
		entries = append(entries, ranking.Entry{UserID: userID, Score: total})
	}

	placements := ranking.Rank(entries)
	names := s.userNames(userIDs(placements))

	board.TotalParticipants = len(placements)
	for _, p := range placements {
		entry := dto.GlobalLeaderboardEntryDTO{
			Rank:           p.Rank,
			UserID:         p.UserID,
			Name:           names[p.UserID],
			TotalScore:     p.Score,
			TestsAttempted: counts[p.UserID],
			AheadOfPercent: p.AheadOfPercent,
		}
		board.Entries = append(board.Entries, entry)
		if subjectUserID != nil && p.UserID == *subjectUserID {
			standing := entry
			board.Standing = &standing
		}
	}
	return board, nil
}

// TestLeaderboard ranks one test's participants by their single best attempt.
func (s *leaderboardService) TestLeaderboard(testID uint, subjectUserID *uint) (*dto.TestLeaderboardDTO, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("TestLeaderboard: test not found")
		return nil, fmt.Errorf("test not found with ID %d: %w", testID, err)
	}

	board := &dto.TestLeaderboardDTO{
		TestID:    testID,
		TestTitle: test.Title,
		Entries:   []dto.TestLeaderboardEntryDTO{},
	}

	attempts, err := s.attemptRepo.FindByTest(testID, repository.MaxScanRows)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("TestLeaderboard: attempt scan failed, returning empty board")
		return board, nil
	}
	if len(attempts) == 0 {
		return board, nil
	}

	// Collapse re-attempts before ranking so nobody is counted twice in the
	// participant total.
	deduped := ranking.BestPerUser(attemptEntries(attempts))
	placements := ranking.Rank(deduped)
	names := s.userNames(userIDs(placements))

	board.TotalParticipants = len(placements)
	for _, p := range placements {
		entry := dto.TestLeaderboardEntryDTO{
			Rank:           p.Rank,
			UserID:         p.UserID,
			Name:           names[p.UserID],
			AttemptID:      p.AttemptID,
			Score:          p.Score,
			Accuracy:       ranking.Accuracy(p.Score, p.TotalQuestions),
			AheadOfPercent: p.AheadOfPercent,
			CompletedAt:    p.CompletedAt,
		}
		board.Entries = append(board.Entries, entry)
		if subjectUserID != nil && p.UserID == *subjectUserID {
			standing := entry
			board.Standing = &standing
		}
	}
	return board, nil
}

// UserPerformance joins one user's attempts against per-test population
// statistics. The per-user aggregates are derived here on every read; nothing
// is ever persisted back onto the user row.
func (s *leaderboardService) UserPerformance(userID uint) (*dto.PerformanceDTO, error) {
	perf := &dto.PerformanceDTO{UserID: userID, Entries: []dto.PerformanceEntryDTO{}}

	mine, err := s.attemptRepo.FindByUser(userID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("UserPerformance: attempt scan failed, returning empty summary")
		return perf, nil
	}
	if len(mine) == 0 {
		return perf, nil
	}

	stats := make(map[uint]dto.TestStatsDTO)
	titles := make(map[uint]string)
	for _, a := range mine {
		perf.TotalScore += a.Score
		if _, done := stats[a.TestID]; done {
			continue
		}
		stats[a.TestID] = s.testStats(a.TestID)
	}
	perf.TestsAttempted = len(mine)

	testIDList := make([]uint, 0, len(stats))
	for id := range stats {
		testIDList = append(testIDList, id)
	}
	if tests, tErr := s.testRepo.FindByIDs(testIDList); tErr != nil {
		log.Warn().Err(tErr).Msg("UserPerformance: could not load test titles")
	} else {
		for _, t := range tests {
			titles[t.ID] = t.Title
		}
	}

	for _, a := range mine {
		perf.Entries = append(perf.Entries, dto.PerformanceEntryDTO{
			AttemptID:      a.ID,
			TestID:         a.TestID,
			TestTitle:      titles[a.TestID],
			Score:          a.Score,
			TotalQuestions: a.TotalQuestions,
			Accuracy:       ranking.Accuracy(a.Score, a.TotalQuestions),
			CompletedAt:    a.CompletedAt,
			TestStats:      stats[a.TestID],
		})
	}
	return perf, nil
}

// testStats aggregates all attempts (by anyone) on one test. A failed scan
// yields zero-valued stats for that test only.
func (s *leaderboardService) testStats(testID uint) dto.TestStatsDTO {
	attempts, err := s.attemptRepo.FindByTest(testID, repository.MaxScanRows)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("UserPerformance: stats scan failed for test")
		return dto.TestStatsDTO{}
	}
	scores := make([]int, len(attempts))
	for i, a := range attempts {
		scores[i] = a.Score
	}
	return dto.TestStatsDTO{
		Attempts:     len(scores),
		AverageScore: ranking.Mean(scores),
		HighestScore: ranking.Highest(scores),
		MedianScore:  ranking.Median(scores),
	}
}

// userNames resolves display names for the board; a failed lookup leaves
// names empty rather than failing the board.
func (s *leaderboardService) userNames(ids []uint) map[uint]string {
	names := make(map[uint]string, len(ids))
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		log.Warn().Err(err).Msg("leaderboard: could not resolve user names")
		return names
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

func attemptEntries(attempts []model.Attempt) []ranking.Entry {
	entries := make([]ranking.Entry, len(attempts))
	for i, a := range attempts {
		entries[i] = ranking.Entry{
			UserID:         a.UserID,
			Score:          a.Score,
			TotalQuestions: a.TotalQuestions,
			CompletedAt:    a.CompletedAt,
			AttemptID:      a.ID,
		}
	}
	return entries
}

func userIDs(placements []ranking.Placement) []uint {
	ids := make([]uint, len(placements))
	for i, p := range placements {
		ids[i] = p.UserID
	}
	return ids
}
