package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	appControllers "github.com/jdelacruz/ssis-backend/internal/app/controllers"
	appMigrations "github.com/jdelacruz/ssis-backend/internal/app/migrations"
	appRepos "github.com/jdelacruz/ssis-backend/internal/app/repositories"
	appRoutes "github.com/jdelacruz/ssis-backend/internal/app/routes"
	appServices "github.com/jdelacruz/ssis-backend/internal/app/services"
	"github.com/jdelacruz/ssis-backend/internal/config"
	"github.com/jdelacruz/ssis-backend/internal/db"
	appMiddleware "github.com/jdelacruz/ssis-backend/internal/middleware"
	pkgAuth "github.com/jdelacruz/ssis-backend/internal/pkg/auth"
	"github.com/jdelacruz/ssis-backend/internal/pkg/helpers"
	"github.com/jdelacruz/ssis-backend/internal/pkg/logger"
	"github.com/jdelacruz/ssis-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	JWTService        *pkgAuth.JWTService
	AuthMiddleware    *appMiddleware.AuthMiddleware
	AuthController    *appControllers.AuthController
	CollegeController *appControllers.CollegeController
	ProgramController *appControllers.ProgramController
	StudentController *appControllers.StudentController
	UserController    *appControllers.UserController
	StatsController   *appControllers.StatsController
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(ctx, dbPool); err != nil {
		// A failed seed leaves the schema intact, so startup continues
		logger.Error().Err(err).Msg("Failed to seed default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) *Dependencies {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, deps.JWTService)
	deps.CollegeController = appControllers.NewCollegeController(deps.Services.CollegeService, deps.Services.ProgramService)
	deps.ProgramController = appControllers.NewProgramController(deps.Services.ProgramService, deps.Services.StudentService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.StatsController = appControllers.NewStatsController(deps.Services.StatsService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Credentials must be allowed so the SPA can send the session cookie
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CollegeController,
		deps.ProgramController,
		deps.StudentController,
		deps.UserController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	return router
}
