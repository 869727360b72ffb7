package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/prepstack/examprep/internal/dto"
	"github.com/prepstack/examprep/internal/model"
	"github.com/prepstack/examprep/internal/repository"
)

type AdminService interface {
	CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	CreateUser(req dto.UserCreateDTO) (*dto.UserResponseDTO, error)
	GetUsers() ([]dto.UserResponseDTO, error)
}

type adminService struct {
	testRepo repository.TestRepository
	userRepo repository.UserRepository
}

func NewAdminService(testRepo repository.TestRepository, userRepo repository.UserRepository) AdminService {
	return &adminService{testRepo: testRepo, userRepo: userRepo}
}

func (s *adminService) CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	total := len(req.Questions)
	seen := make(map[int]bool, total)
	questions := make([]model.Question, 0, total)

	for _, qDto := range req.Questions {
		if qDto.OrderInTest < 0 || qDto.OrderInTest >= total {
			return nil, fmt.Errorf("order_in_test must be between 0 and %d, got %d", total-1, qDto.OrderInTest)
		}
		if seen[qDto.OrderInTest] {
			return nil, fmt.Errorf("duplicate order_in_test %d found in questions", qDto.OrderInTest)
		}
		seen[qDto.OrderInTest] = true

		if qDto.CorrectOption < 0 || qDto.CorrectOption >= len(qDto.Options) {
			return nil, fmt.Errorf("correct_option %d is out of range for question at position %d (%d options)",
				qDto.CorrectOption, qDto.OrderInTest, len(qDto.Options))
		}

		questions = append(questions, model.Question{
			Prompt:        qDto.Prompt,
			Options:       model.OptionList(qDto.Options),
			CorrectOption: qDto.CorrectOption,
			OrderInTest:   qDto.OrderInTest,
		})
	}

	testModel := model.Test{
		Title:          req.Title,
		Description:    req.Description,
		TotalQuestions: total,
		Questions:      questions,
	}

	if err := s.testRepo.Create(&testModel); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTest: failed to create test")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}

	created, err := s.testRepo.FindByIDWithQuestions(testModel.ID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testModel.ID).Msg("CreateTest: failed to reload created test for response")
		return testResponse(&testModel), nil
	}
	return testResponse(created), nil
}

func (s *adminService) CreateUser(req dto.UserCreateDTO) (*dto.UserResponseDTO, error) {
	user := model.User{Name: req.Name, Email: req.Email}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("CreateUser: failed to create user")
		return nil, fmt.Errorf("database error creating user: %w", err)
	}

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, &user); err != nil {
		log.Error().Err(err).Msg("CreateUser: error copying user to DTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminService) GetUsers() ([]dto.UserResponseDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetUsers: repository error")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	var dtos []dto.UserResponseDTO
	if err := copier.Copy(&dtos, &users); err != nil {
		log.Error().Err(err).Msg("GetUsers: error copying users to DTOs")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return dtos, nil
}
