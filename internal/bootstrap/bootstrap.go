package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mkaraca/careergate/internal/app/controllers"
	appRoutes "github.com/mkaraca/careergate/internal/app/routes"
	appServices "github.com/mkaraca/careergate/internal/app/services"
	"github.com/mkaraca/careergate/internal/config"
	appMiddleware "github.com/mkaraca/careergate/internal/middleware"
	"github.com/mkaraca/careergate/internal/pkg/logger"
	"github.com/mkaraca/careergate/internal/pkg/sealer"
	"github.com/mkaraca/careergate/internal/session"
	"github.com/mkaraca/careergate/internal/upstream"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Clients              *upstream.Clients
	SessionService       *session.Service
	ProfileService       *appServices.ProfileService
	FairService          *appServices.FairService
	ApplyService         *appServices.ApplyService
	AnnouncementService  *appServices.AnnouncementService
	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	CompanyController    *appControllers.CompanyController
	FacultyController    *appControllers.FacultyController
	AdminController      *appControllers.AdminController
	CareerFairController *appControllers.CareerFairController
	SessionMiddleware    *appMiddleware.SessionMiddleware
	Logger               zerolog.Logger
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

// SetupSessionStore opens the local session database and its token sealer.
func SetupSessionStore(cfg *config.Config, lgr zerolog.Logger) (*session.SQLStore, error) {
	seal, err := sealer.New(cfg.SealKeyBytes())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize token sealer")
		return nil, fmt.Errorf("failed to initialize token sealer: %w", err)
	}

	store, err := session.NewSQLStore(cfg.Session.StorePath, seal, cfg.SessionTTL())
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Session.StorePath).Msg("Failed to open session store")
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	lgr.Info().Str("path", cfg.Session.StorePath).Msg("Session store ready")
	return store, nil
}

// BuildDependencies initializes upstream clients, services, and controllers.
func BuildDependencies(cfg *config.Config, store *session.SQLStore, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	core, err := upstream.NewClient(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.UpstreamTimeout(),
	}, &http.Client{Timeout: cfg.UpstreamTimeout()}, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("baseUrl", cfg.Upstream.BaseURL).Msg("Failed to initialize upstream client")
		return nil, fmt.Errorf("failed to initialize upstream client: %w", err)
	}
	deps.Clients = upstream.NewClients(core)

	deps.SessionService = session.NewService(store, deps.Clients, lgr)

	deps.ProfileService = appServices.NewProfileService(
		deps.Clients.Student,
		deps.Clients.Company,
		deps.Clients.Faculty,
		deps.SessionService,
	)
	deps.FairService = appServices.NewFairService(deps.Clients.CareerFair, deps.SessionService)
	deps.ApplyService = appServices.NewApplyService(deps.Clients.Position, lgr)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Clients.Admin)

	cookieTTL := int(cfg.SessionTTL().Seconds())
	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.SessionService, cfg.Session.CookieName, cookieTTL, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.SessionService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.ProfileService, lgr)
	deps.CompanyController = appControllers.NewCompanyController(deps.ProfileService, lgr)
	deps.FacultyController = appControllers.NewFacultyController(deps.ProfileService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AnnouncementService, lgr)
	deps.CareerFairController = appControllers.NewCareerFairController(deps.FairService, deps.ApplyService, lgr)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.CompanyController,
		deps.FacultyController,
		deps.AdminController,
		deps.CareerFairController,
		deps.SessionMiddleware,
	)

	return router
}
