package service_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepstack/examprep/internal/dto"
	"github.com/prepstack/examprep/internal/model"
	"github.com/prepstack/examprep/internal/scratch"
	"github.com/prepstack/examprep/internal/service"
)

func newScratchStore(t *testing.T) *scratch.ResultStore {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return scratch.NewResultStore(client, time.Minute)
}

// fiveQuestionTest seeds a 5-question test whose correct option is always 1.
func fiveQuestionTest(testRepo *fakeTestRepo, attemptRepo *fakeAttemptRepo, questionRepo *fakeQuestionRepo) uint {
	questions := make([]model.Question, 5)
	for i := range questions {
		questions[i] = model.Question{
			Prompt:        "Q",
			Options:       model.OptionList{"a", "b", "c", "d"},
			CorrectOption: 1,
			OrderInTest:   i,
		}
	}
	test := model.Test{Title: "Mock Test 1", TotalQuestions: 5, Questions: questions}
	_ = testRepo.Create(&test)
	attemptRepo.tests[test.ID] = test
	if questionRepo != nil {
		questionRepo.byTest = map[uint][]model.Question{test.ID: questions}
	}
	return test.ID
}

func TestSubmitAttempt_ScoresAndPersists(t *testing.T) {
	testRepo := newFakeTestRepo()
	attemptRepo := newFakeAttemptRepo()
	questionRepo := &fakeQuestionRepo{}
	svc := service.NewResultService(testRepo, questionRepo, attemptRepo, newScratchStore(t))
	testID := fiveQuestionTest(testRepo, attemptRepo, questionRepo)

	// Q1 correct, Q2 wrong, Q3 skipped, Q4 correct, Q5 wrong.
	detail, err := svc.SubmitAttempt(context.Background(), testID, dto.AttemptSubmitDTO{
		UserID:  7,
		Answers: map[int]int{0: 1, 1: 0, 3: 1, 4: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 6, detail.Score)
	assert.Equal(t, 20, detail.MaxScore)
	assert.Equal(t, 30, detail.Accuracy)
	assert.Equal(t, 2, detail.Correct)
	assert.Equal(t, 2, detail.Incorrect)
	assert.Equal(t, 1, detail.Unattempted)
	assert.False(t, detail.CompletedAt.IsZero())

	require.Len(t, attemptRepo.attempts, 1)
	stored := attemptRepo.attempts[0]
	assert.Equal(t, 6, stored.Score)
	assert.Equal(t, uint(7), stored.UserID)
	// The sparse sheet is stored as submitted: skipped questions stay absent.
	assert.False(t, stored.Answers.Attempted(2))
}

func TestSubmitAttempt_ResubmissionAppendsSecondRecord(t *testing.T) {
	testRepo := newFakeTestRepo()
	attemptRepo := newFakeAttemptRepo()
	svc := service.NewResultService(testRepo, &fakeQuestionRepo{}, attemptRepo, newScratchStore(t))
	testID := fiveQuestionTest(testRepo, attemptRepo, nil)

	req := dto.AttemptSubmitDTO{UserID: 7, Answers: map[int]int{0: 1}}
	_, err := svc.SubmitAttempt(context.Background(), testID, req)
	require.NoError(t, err)
	_, err = svc.SubmitAttempt(context.Background(), testID, req)
	require.NoError(t, err)

	// No uniqueness constraint: two independent rows exist.
	assert.Len(t, attemptRepo.attempts, 2)
	assert.NotEqual(t, attemptRepo.attempts[0].ID, attemptRepo.attempts[1].ID)
}

func TestSubmitAttempt_AllWrongStoresNegativeScore(t *testing.T) {
	testRepo := newFakeTestRepo()
	attemptRepo := newFakeAttemptRepo()
	svc := service.NewResultService(testRepo, &fakeQuestionRepo{}, attemptRepo, newScratchStore(t))
	testID := fiveQuestionTest(testRepo, attemptRepo, nil)

	detail, err := svc.SubmitAttempt(context.Background(), testID, dto.AttemptSubmitDTO{
		UserID:  7,
		Answers: map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 0},
	})

	require.NoError(t, err)
	// The true signed score is stored, never clamped to zero.
	assert.Equal(t, -5, detail.Score)
	assert.Equal(t, -5, attemptRepo.attempts[0].Score)
	assert.Equal(t, -25, detail.Accuracy)
}

func TestSubmitAttempt_PersistenceFailurePropagates(t *testing.T) {
	testRepo := newFakeTestRepo()
	attemptRepo := newFakeAttemptRepo()
	attemptRepo.failCreate = true
	svc := service.NewResultService(testRepo, &fakeQuestionRepo{}, attemptRepo, newScratchStore(t))
	testID := fiveQuestionTest(testRepo, attemptRepo, nil)

	_, err := svc.SubmitAttempt(context.Background(), testID, dto.AttemptSubmitDTO{UserID: 7})

	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestSubmitAttempt_UnknownTest(t *testing.T) {
	svc := service.NewResultService(newFakeTestRepo(), &fakeQuestionRepo{}, newFakeAttemptRepo(), newScratchStore(t))

	_, err := svc.SubmitAttempt(context.Background(), 99, dto.AttemptSubmitDTO{UserID: 7})

	assert.Error(t, err)
}

func TestPendingResult_ConsumedExactlyOnce(t *testing.T) {
	testRepo := newFakeTestRepo()
	attemptRepo := newFakeAttemptRepo()
	svc := service.NewResultService(testRepo, &fakeQuestionRepo{}, attemptRepo, newScratchStore(t))
	testID := fiveQuestionTest(testRepo, attemptRepo, nil)

	ctx := context.Background()
	detail, err := svc.SubmitAttempt(ctx, testID, dto.AttemptSubmitDTO{
		UserID:  7,
		Answers: map[int]int{0: 1, 1: 1},
	})
	require.NoError(t, err)

	pending, err := svc.TakePendingResult(ctx, detail.ID)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, detail.Score, pending.Score)

	pending, err = svc.TakePendingResult(ctx, detail.ID)
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestGetAttempt_RebuildsBreakdown(t *testing.T) {
	testRepo := newFakeTestRepo()
	attemptRepo := newFakeAttemptRepo()
	questionRepo := &fakeQuestionRepo{}
	svc := service.NewResultService(testRepo, questionRepo, attemptRepo, newScratchStore(t))
	testID := fiveQuestionTest(testRepo, attemptRepo, questionRepo)

	ctx := context.Background()
	submitted, err := svc.SubmitAttempt(ctx, testID, dto.AttemptSubmitDTO{
		UserID:  7,
		Answers: map[int]int{0: 1, 1: 0, 3: 1, 4: 2},
	})
	require.NoError(t, err)

	detail, err := svc.GetAttempt(submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mock Test 1", detail.TestTitle)
	assert.Equal(t, 6, detail.Score)
	assert.Equal(t, 2, detail.Correct)
	assert.Equal(t, 2, detail.Incorrect)
	assert.Equal(t, 1, detail.Unattempted)
}

func TestGetUserAttemptsForTest(t *testing.T) {
	testRepo := newFakeTestRepo()
	attemptRepo := newFakeAttemptRepo()
	svc := service.NewResultService(testRepo, &fakeQuestionRepo{}, attemptRepo, newScratchStore(t))
	testID := fiveQuestionTest(testRepo, attemptRepo, nil)

	ctx := context.Background()
	_, err := svc.SubmitAttempt(ctx, testID, dto.AttemptSubmitDTO{UserID: 7, Answers: map[int]int{0: 1}})
	require.NoError(t, err)
	_, err = svc.SubmitAttempt(ctx, testID, dto.AttemptSubmitDTO{UserID: 8, Answers: map[int]int{0: 1}})
	require.NoError(t, err)

	summaries, err := svc.GetUserAttemptsForTest(testID, 7)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, uint(7), summaries[0].UserID)
	assert.Equal(t, 4, summaries[0].Score)
	assert.Equal(t, 20, summaries[0].Accuracy)
}
