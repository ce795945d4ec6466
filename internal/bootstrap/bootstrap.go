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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rcardoso/schedula/internal/app/controllers"
	appMigrations "github.com/rcardoso/schedula/internal/app/migrations"
	appRepos "github.com/rcardoso/schedula/internal/app/repositories"
	appRoutes "github.com/rcardoso/schedula/internal/app/routes"
	appServices "github.com/rcardoso/schedula/internal/app/services"
	"github.com/rcardoso/schedula/internal/config"
	"github.com/rcardoso/schedula/internal/db"
	appMiddleware "github.com/rcardoso/schedula/internal/middleware"
	"github.com/rcardoso/schedula/internal/pkg/keylock"
	"github.com/rcardoso/schedula/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	Logger      zerolog.Logger
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
	prettyLog := strings.ToLower(cfg.Logging.Format) == "console"

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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	locks := keylock.New()

	subjectService := appServices.NewSubjectService(deps.Repos.SubjectRepository)
	instructorService := appServices.NewInstructorService(deps.Repos.InstructorRepository)
	roomService := appServices.NewRoomService(deps.Repos.RoomRepository)
	studentService := appServices.NewStudentService(deps.Repos.StudentRepository)
	sectionService := appServices.NewSectionService(
		deps.Repos.SectionRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.InstructorRepository,
		deps.Repos.RoomRepository,
		locks,
	)
	enrollmentService := appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.SectionRepository,
		deps.Repos.RoomRepository,
		deps.Repos.StudentRepository,
		locks,
	)

	deps.Services = &appServices.Services{
		SubjectService:    subjectService,
		InstructorService: instructorService,
		RoomService:       roomService,
		StudentService:    studentService,
		SectionService:    sectionService,
		EnrollmentService: enrollmentService,
	}

	deps.Controllers = &appControllers.Controllers{
		SubjectController:    appControllers.NewSubjectController(subjectService),
		InstructorController: appControllers.NewInstructorController(instructorService),
		RoomController:       appControllers.NewRoomController(roomService),
		StudentController:    appControllers.NewStudentController(studentService),
		SectionController:    appControllers.NewSectionController(sectionService, enrollmentService),
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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, appMiddleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
