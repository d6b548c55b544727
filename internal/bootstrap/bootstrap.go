package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/pushkov-fedor/course-selection/internal/app/controllers"
	appMigrations "github.com/pushkov-fedor/course-selection/internal/app/migrations"
	appRepos "github.com/pushkov-fedor/course-selection/internal/app/repositories"
	appRoutes "github.com/pushkov-fedor/course-selection/internal/app/routes"
	appServices "github.com/pushkov-fedor/course-selection/internal/app/services"
	"github.com/pushkov-fedor/course-selection/internal/config"
	"github.com/pushkov-fedor/course-selection/internal/db"
	appMiddleware "github.com/pushkov-fedor/course-selection/internal/middleware"
	pkgAuth "github.com/pushkov-fedor/course-selection/internal/pkg/auth"
	"github.com/pushkov-fedor/course-selection/internal/pkg/helpers"
	"github.com/pushkov-fedor/course-selection/internal/pkg/logger"
	"github.com/pushkov-fedor/course-selection/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	CourseService     appServices.CourseService
	OfferingService   appServices.OfferingService
	CohortService     appServices.CohortService
	EnrollmentService appServices.EnrollmentService
	CatalogService    appServices.CatalogService

	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	OfferingController   *appControllers.OfferingController
	CohortController     *appControllers.CohortController
	EnrollmentController *appControllers.EnrollmentController
	CatalogController    *appControllers.CatalogController

	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Logger     zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.JWTSecret,
		TokenExp:    helpers.ParseDuration(cfg.Auth.TokenExpiration, 12*time.Hour),
		TokenIssuer: cfg.Auth.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(cfg, deps.JWTService, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)
	deps.OfferingService = appServices.NewOfferingService(deps.Repos.OfferingRepository, deps.Repos.CourseRepository, lgr)
	deps.CohortService = appServices.NewCohortService(deps.Repos.CohortRepository, deps.Repos.CohortSemesterRepository, lgr)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		dbPool,
		deps.Repos.EnrollmentRepository,
		deps.Repos.OfferingRepository,
		deps.Repos.CohortSemesterRepository,
		lgr,
	)
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CourseRepository, deps.Repos.OfferingRepository, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.OfferingController = appControllers.NewOfferingController(deps.OfferingService)
	deps.CohortController = appControllers.NewCohortController(deps.CohortService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.OfferingController,
		deps.CohortController,
		deps.EnrollmentController,
		deps.CatalogController,
		deps.JWTService,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
