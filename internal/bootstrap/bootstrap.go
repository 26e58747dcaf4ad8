package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/interconnect/backend/internal/app/auth"
	appControllers "github.com/interconnect/backend/internal/app/controllers"
	appMigrations "github.com/interconnect/backend/internal/app/migrations"
	appRepos "github.com/interconnect/backend/internal/app/repositories"
	"github.com/interconnect/backend/internal/app/repositories/memory"
	appRoutes "github.com/interconnect/backend/internal/app/routes"
	appServices "github.com/interconnect/backend/internal/app/services"
	"github.com/interconnect/backend/internal/config"
	"github.com/interconnect/backend/internal/db"
	appMiddleware "github.com/interconnect/backend/internal/middleware"
	pkgAuth "github.com/interconnect/backend/internal/pkg/auth"
	"github.com/interconnect/backend/internal/pkg/helpers"
	"github.com/interconnect/backend/internal/pkg/logger"
	"github.com/interconnect/backend/internal/pkg/metrics"
	"github.com/interconnect/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	Database           *db.PostgresDB // nil with the memory driver
	JWTService         *pkgAuth.JWTService
	AuthzService       *appAuth.AuthorizationService
	AuthService        *appServices.AuthService
	InternshipService  *appServices.InternshipService
	ApplicationService *appServices.ApplicationService
	DashboardService   *appServices.DashboardService
	UserService        *appServices.UserService
	Controllers        appRoutes.Controllers
	AuthMiddleware     *appMiddleware.AuthMiddleware
	AuthLimiter        *appMiddleware.RateLimiter
	Metrics            *metrics.Metrics
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
	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  strings.ToLower(cfg.Logging.Format) == "text",
		Service: "interconnect-api",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured store, applies migrations and seeds the
// admin account. The returned *db.PostgresDB is nil for the memory driver.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, *appRepos.Repositories, error) {
	var (
		database *db.PostgresDB
		repos    *appRepos.Repositories
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory store, data is lost on restart")
		repos = memory.NewRepositories()

	default:
		lgr.Info().Msg("Establishing database connection...")
		var err error
		database, err = db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		migrationsDir := cfg.Database.MigrationsDir
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			database.Close()
			lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
			return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
		}

		lgr.Info().Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(database.Pool, lgr)
		if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
			database.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		repos = appRepos.NewRepositories(database, helpers.ParseDuration(cfg.Database.QueryTimeout, 5*time.Second))
	}

	err := seed.CreateDefaultAdmin(ctx, repos.Users, seed.AdminAccount{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	return database, repos, nil
}

// BuildDependencies initializes services, middleware and controllers on top
// of the given repositories.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}

	deps := &Dependencies{
		Repos:    repos,
		Database: database,
		Metrics:  metrics.New(),
		Logger:   lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService(repos.Internships)

	deps.AuthService = appServices.NewAuthService(repos.Users, deps.JWTService, deps.Metrics, lgr, cfg.Auth.AllowAdminRegistration)
	deps.InternshipService = appServices.NewInternshipService(repos.Internships, deps.AuthzService, deps.Metrics, lgr)
	deps.ApplicationService = appServices.NewApplicationService(repos.Applications, repos.Internships, deps.AuthzService, deps.Metrics, lgr)
	deps.DashboardService = appServices.NewDashboardService(repos.Stats, repos.Internships)
	deps.UserService = appServices.NewUserService(repos.Users, repos.Profiles, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthService)
	deps.AuthLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	var ping func(ctx context.Context) error
	if database != nil {
		ping = database.Pool.Ping
	}

	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(deps.AuthService, lgr),
		Student:  appControllers.NewStudentController(deps.InternshipService, deps.ApplicationService, deps.DashboardService, deps.UserService, lgr),
		Employer: appControllers.NewEmployerController(deps.InternshipService, deps.ApplicationService, deps.DashboardService, lgr),
		Admin:    appControllers.NewAdminController(deps.DashboardService, deps.UserService, lgr),
		Health:   appControllers.NewHealthController(cfg.Database.Driver, ping),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(deps.Metrics),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
		appMiddleware.RequestTimeout(helpers.ParseDuration(cfg.Server.RequestTimeout, 15*time.Second)),
	)

	appRoutes.SetupSwagger(router, swaggerHost(cfg))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.AuthLimiter)

	return router
}

// swaggerHost is the host advertised in the API docs. Production keeps the
// host from the generated spec.
func swaggerHost(cfg *config.Config) string {
	if cfg.IsProduction() || cfg.Server.Port == "" {
		return ""
	}
	return "localhost:" + cfg.Server.Port
}
