package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/prepstack/examprep/internal/dto"
	"github.com/prepstack/examprep/internal/model"
	"github.com/prepstack/examprep/internal/ranking"
	"github.com/prepstack/examprep/internal/repository"
	"github.com/prepstack/examprep/internal/scoring"
	"github.com/prepstack/examprep/internal/scratch"
)

// ResultService records completed attempts. Each submission appends exactly
// one immutable attempt row; resubmitting the same test creates a second
// independent row, and leaderboards decide later which one counts.
type ResultService interface {
	SubmitAttempt(ctx context.Context, testID uint, req dto.AttemptSubmitDTO) (*dto.AttemptDetailDTO, error)
	GetAttempt(attemptID uint) (*dto.AttemptDetailDTO, error)
	GetUserAttemptsForTest(testID, userID uint) ([]dto.AttemptSummaryDTO, error)
	TakePendingResult(ctx context.Context, attemptID uint) (*dto.AttemptDetailDTO, error)
}

type resultService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	results      *scratch.ResultStore
}

func NewResultService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	results *scratch.ResultStore,
) ResultService {
	return &resultService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		results:      results,
	}
}

func (s *resultService) SubmitAttempt(ctx context.Context, testID uint, req dto.AttemptSubmitDTO) (*dto.AttemptDetailDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("SubmitAttempt: test not found")
		return nil, fmt.Errorf("test not found with ID %d: %w", testID, err)
	}
	if len(test.Questions) == 0 {
		return nil, fmt.Errorf("test ID %d has no questions, submission is not possible", testID)
	}

	key := answerKey(test.Questions)
	totalQuestions := test.TotalQuestions
	if totalQuestions <= 0 {
		totalQuestions = len(test.Questions)
	}

	breakdown := scoring.Grade(req.Answers, key, totalQuestions)

	answers := model.AnswerSheet(req.Answers)
	if answers == nil {
		answers = model.AnswerSheet{}
	}
	attempt := model.Attempt{
		UserID:         req.UserID,
		TestID:         testID,
		Score:          breakdown.Score,
		TotalQuestions: totalQuestions,
		Answers:        answers,
		CompletedAt:    time.Now(),
	}

	// Persistence failure propagates to the caller, no retry. The attempt is
	// lost unless the caller resubmits.
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("testID", testID).Uint("userID", req.UserID).Msg("SubmitAttempt: failed to persist attempt")
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}

	detail := attemptDetail(&attempt, test.Title, breakdown)

	// Best effort: the results view can consume this once without re-reading
	// the attempt. A scratch failure never fails a persisted submission.
	if err := s.results.Put(ctx, detail); err != nil {
		log.Warn().Err(err).Uint("attemptID", attempt.ID).Msg("SubmitAttempt: failed to stash pending result")
	}

	log.Info().Uint("attemptID", attempt.ID).Uint("testID", testID).Uint("userID", req.UserID).
		Int("score", breakdown.Score).Msg("Attempt recorded")
	return detail, nil
}

func (s *resultService) GetAttempt(attemptID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithTest(attemptID)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("GetAttempt: attempt not found")
		return nil, fmt.Errorf("attempt not found with ID %d: %w", attemptID, err)
	}

	// Re-grade against the stored key to rebuild the breakdown for display.
	// The stored score stays authoritative even if it disagrees.
	breakdown := scoring.Breakdown{Score: attempt.Score}
	questions, qErr := s.questionRepo.FindByTestID(attempt.TestID)
	if qErr != nil {
		log.Warn().Err(qErr).Uint("testID", attempt.TestID).Msg("GetAttempt: could not load questions for breakdown")
	} else {
		graded := scoring.Grade(attempt.Answers, answerKey(questions), attempt.TotalQuestions)
		graded.Score = attempt.Score
		breakdown = graded
	}

	return attemptDetail(attempt, attempt.Test.Title, breakdown), nil
}

func (s *resultService) GetUserAttemptsForTest(testID, userID uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindByTestAndUser(testID, userID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Uint("userID", userID).Msg("GetUserAttemptsForTest: repository error")
		return nil, fmt.Errorf("error fetching attempts for test %d: %w", testID, err)
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if errCp := copier.Copy(&summary, &attempt); errCp != nil {
			log.Error().Err(errCp).Uint("attemptID", attempt.ID).Msg("GetUserAttemptsForTest: error copying attempt to summary DTO")
			continue
		}
		summary.Accuracy = ranking.Accuracy(attempt.Score, attempt.TotalQuestions)
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *resultService) TakePendingResult(ctx context.Context, attemptID uint) (*dto.AttemptDetailDTO, error) {
	result, err := s.results.Take(ctx, attemptID)
	if err != nil {
		// Degrade to a miss; the caller falls back to GetAttempt.
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("TakePendingResult: scratch store error")
		return nil, nil
	}
	return result, nil
}

// answerKey maps each question's position in the test to its correct option.
func answerKey(questions []model.Question) map[int]int {
	key := make(map[int]int, len(questions))
	for _, q := range questions {
		key[q.OrderInTest] = q.CorrectOption
	}
	return key
}

func attemptDetail(attempt *model.Attempt, testTitle string, b scoring.Breakdown) *dto.AttemptDetailDTO {
	return &dto.AttemptDetailDTO{
		ID:             attempt.ID,
		TestID:         attempt.TestID,
		TestTitle:      testTitle,
		UserID:         attempt.UserID,
		Score:          attempt.Score,
		MaxScore:       scoring.MaxScore(attempt.TotalQuestions),
		TotalQuestions: attempt.TotalQuestions,
		Correct:        b.Correct,
		Incorrect:      b.Incorrect,
		Unattempted:    b.Unattempted,
		Accuracy:       ranking.Accuracy(attempt.Score, attempt.TotalQuestions),
		Answers:        attempt.Answers,
		CompletedAt:    attempt.CompletedAt,
	}
}
