package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/prepstack/examprep/internal/dto"
	"github.com/prepstack/examprep/internal/model"
	"github.com/prepstack/examprep/internal/repository"
)

type TestService interface {
	GetAllTests() ([]dto.TestSummaryDTO, error)
	GetTestDetails(testID uint) (*dto.TestResponseDTO, error)
}

type testService struct {
	testRepo repository.TestRepository
}

func NewTestService(testRepo repository.TestRepository) TestService {
	return &testService{testRepo: testRepo}
}

func (s *testService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: repository error")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(tests))
	for _, t := range tests {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:             t.ID,
			Title:          t.Title,
			Description:    t.Description,
			TotalQuestions: t.TotalQuestions,
			CreatedAt:      t.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *testService) GetTestDetails(testID uint) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("GetTestDetails: test not found")
		return nil, fmt.Errorf("test not found with ID %d: %w", testID, err)
	}
	return testResponse(test), nil
}

// testResponse maps a test to its user-facing view. Questions are mapped by
// hand so the correct option index never leaks into the response.
func testResponse(test *model.Test) *dto.TestResponseDTO {
	resp := &dto.TestResponseDTO{
		ID:             test.ID,
		Title:          test.Title,
		Description:    test.Description,
		TotalQuestions: test.TotalQuestions,
		CreatedAt:      test.CreatedAt,
	}
	for _, q := range test.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionDTO{
			ID:          q.ID,
			TestID:      q.TestID,
			Prompt:      q.Prompt,
			Options:     []string(q.Options),
			OrderInTest: q.OrderInTest,
		})
	}
	return resp
}
