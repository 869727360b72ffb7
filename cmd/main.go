package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/prepstack/examprep/config"
	"github.com/prepstack/examprep/database"
	_ "github.com/prepstack/examprep/docs" // Swagger docs - auto-generated
	adminctrl "github.com/prepstack/examprep/internal/controller/admin"
	userctrl "github.com/prepstack/examprep/internal/controller/user"
	"github.com/prepstack/examprep/internal/logger"
	"github.com/prepstack/examprep/internal/model"
	"github.com/prepstack/examprep/internal/repository"
	"github.com/prepstack/examprep/internal/scratch"
	"github.com/prepstack/examprep/internal/service"
)

// @title Exam Prep Scoring & Leaderboard API
// @version 1.0
// @description API for recording mock-test attempts and computing leaderboards, percentiles and performance summaries from raw attempt records.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,    // *gorm.DB
			database.NewRedisClient, // *redis.Client
			NewResultStore,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewUserRepository,
		),

		// Services layer
		fx.Provide(
			service.NewTestService,
			service.NewAdminService,
			service.NewResultService,
			service.NewLeaderboardService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewTestController,
			userctrl.NewLeaderboardController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewResultStore wires the pending-result scratch store with its configured TTL.
func NewResultStore(client *redis.Client, cfg *config.Config) *scratch.ResultStore {
	return scratch.NewResultStore(client, time.Duration(cfg.Redis.ResultTTLSeconds)*time.Second)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminCtrl *adminctrl.AdminController,
	testCtrl *userctrl.TestController,
	leaderboardCtrl *userctrl.LeaderboardController,
) {
	// Admin routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/tests", adminCtrl.CreateTest)
		adminAPIGroup.POST("/users", adminCtrl.CreateUser)
		adminAPIGroup.GET("/users", adminCtrl.GetUsers)
	}

	// User routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/tests", testCtrl.GetAllTests)
		userAPIGroup.GET("/tests/:test_id", testCtrl.GetTestDetails)

		userAPIGroup.POST("/tests/:test_id/attempts", testCtrl.SubmitAttempt)
		userAPIGroup.GET("/tests/:test_id/my-attempts", testCtrl.GetUserTestAttempts)
		userAPIGroup.GET("/attempts/:attempt_id", testCtrl.GetAttempt)
		userAPIGroup.GET("/attempts/:attempt_id/pending", testCtrl.TakePendingResult)

		userAPIGroup.GET("/leaderboard", leaderboardCtrl.GetGlobalLeaderboard)
		userAPIGroup.GET("/tests/:test_id/leaderboard", leaderboardCtrl.GetTestLeaderboard)
		userAPIGroup.GET("/users/:user_id/performance", leaderboardCtrl.GetUserPerformance)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam prep API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Test{},
		&model.Question{},
		&model.User{},
		&model.Attempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
