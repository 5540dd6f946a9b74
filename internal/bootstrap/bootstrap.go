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

	appControllers "github.com/snpzone/skillhunt/internal/app/controllers"
	appMigrations "github.com/snpzone/skillhunt/internal/app/migrations"
	appRepos "github.com/snpzone/skillhunt/internal/app/repositories"
	appRoutes "github.com/snpzone/skillhunt/internal/app/routes"
	appServices "github.com/snpzone/skillhunt/internal/app/services"
	"github.com/snpzone/skillhunt/internal/config"
	"github.com/snpzone/skillhunt/internal/db"
	appMiddleware "github.com/snpzone/skillhunt/internal/middleware"
	pkgAuth "github.com/snpzone/skillhunt/internal/pkg/auth"
	"github.com/snpzone/skillhunt/internal/pkg/email"
	"github.com/snpzone/skillhunt/internal/pkg/emailcheck"
	"github.com/snpzone/skillhunt/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CompanyService     *appServices.CompanyService
	StudentService     *appServices.StudentService
	JobService         *appServices.JobService
	ApplicationService *appServices.ApplicationService
	CompanyController  *appControllers.CompanyController
	StudentController  *appControllers.StudentController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	MailService        email.MailService
	Logger             zerolog.Logger
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)

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
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		SessionExp:  config.ParseDuration(cfg.JWT.SessionExpiration, 2*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.MailService = email.NewSMTPMailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	checker := emailcheck.NewChecker(emailcheck.Config{
		DisposableAPIURL: cfg.EmailCheck.DisposableAPIURL,
		Timeout:          config.ParseDuration(cfg.EmailCheck.Timeout, 5*time.Second),
	}, lgr)

	otpTTL := config.ParseDuration(cfg.Registration.OTPTTL, appServices.DefaultOTPTTL)

	deps.CompanyService = appServices.NewCompanyService(
		deps.Repos.CompanyRepository,
		deps.MailService,
		checker,
		otpTTL,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.MailService,
		checker,
		otpTTL,
		lgr,
	)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository, deps.Repos.CompanyRepository, lgr)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.ApplicationRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.CompanyController = appControllers.NewCompanyController(
		deps.CompanyService,
		deps.StudentService,
		deps.JobService,
		deps.ApplicationService,
		deps.JWTService,
		deps.Logger,
	)
	deps.StudentController = appControllers.NewStudentController(
		deps.StudentService,
		deps.JobService,
		deps.ApplicationService,
		deps.JWTService,
		deps.Logger,
	)

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

	router := gin.Default()

	// Credentialed CORS so browser clients can carry the session cookies.
	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.CompanyController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	return router
}
