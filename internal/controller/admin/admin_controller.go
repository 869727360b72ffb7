package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prepstack/examprep/internal/dto"
	"github.com/prepstack/examprep/internal/service"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// CreateTest godoc
// @Summary (Admin) Create a new complete test
// @Description Admin creates a test with its full ordered question set, including the correct option per question.
// @Tags Admin
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test creation data including all questions"
// @Success 201 {object} dto.TestResponseDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/tests [post]
func (c *AdminController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	testResp, err := c.adminService.CreateTest(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateTest: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create test", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}

// CreateUser godoc
// @Summary (Admin) Register a user
// @Description Creates a minimal identity record; attempts reference it by ID.
// @Tags Admin
// @Accept json
// @Produce json
// @Param user_data body dto.UserCreateDTO true "User name and email"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/users [post]
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req dto.UserCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateUser: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userResp, err := c.adminService.CreateUser(req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Admin CreateUser: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create user", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, userResp)
}

// GetUsers godoc
// @Summary (Admin) List registered users
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.UserResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	users, err := c.adminService.GetUsers()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetUsers: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve users", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, users)
}
