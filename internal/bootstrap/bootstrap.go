package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/studentrecords/backend/internal/app/controllers"
	appRepos "github.com/studentrecords/backend/internal/app/repositories"
	appRoutes "github.com/studentrecords/backend/internal/app/routes"
	appServices "github.com/studentrecords/backend/internal/app/services"
	"github.com/studentrecords/backend/internal/config"
	"github.com/studentrecords/backend/internal/db"
	appMiddleware "github.com/studentrecords/backend/internal/middleware"
	"github.com/studentrecords/backend/internal/pkg/logger"
	"github.com/studentrecords/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	StudentService    *appServices.StudentService
	ResultService     *appServices.ResultService
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	ResultController  *appControllers.ResultController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the MongoDB connection and creates the unique
// indexes the repositories rely on. A failure here halts the process.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("uri", cfg.Mongo.URI).Str("database", cfg.Mongo.Database).Msg("Connecting to MongoDB...")

	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, err
	}

	lgr.Info().Msg("MongoDB connection successfully established.")
	return database, nil
}

// BuildDependencies initializes repositories, services and controllers,
// and runs startup index creation and result seeding.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	if err := deps.Repos.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to create unique indexes")
		return nil, err
	}
	lgr.Info().Msg("Unique indexes ensured.")

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, cfg.Auth.StudentDefaultPassword, lgr)
	deps.ResultService = appServices.NewResultService(deps.Repos.ResultRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.ResultController = appControllers.NewResultController(deps.ResultService)

	if err := seed.LoadResults(ctx, cfg.Seed.ResultsFile, deps.Repos.ResultRepository, lgr); err != nil {
		// Seeding is best-effort; the API serves whatever is already stored
		lgr.Error().Err(err).Msg("Failed to seed results, proceeding anyway...")
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.ResultController,
	)

	return router
}
