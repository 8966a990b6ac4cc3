package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careerbridge/careerbridge-api/internal/api/handler"
	"github.com/careerbridge/careerbridge-api/internal/api/middleware"
	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/service"
	mongodb "github.com/careerbridge/careerbridge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/careerbridge/careerbridge-api/internal/infrastructure/db/redis"
	"github.com/careerbridge/careerbridge-api/internal/infrastructure/storage"
)

// Options carries everything the router needs beyond its datastores.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	UploadDir string
	Logger    zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("careerbridge"))

	// --- Dependencies ---
	tokenService, err := service.NewTokenService(opts.JWTSecret, opts.TokenTTL)
	if err != nil {
		return nil, err
	}

	fileStore, err := storage.NewLocalStore(opts.UploadDir)
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	contentRepo := mongodb.NewContentRepository(db)
	submissionRepo := mongodb.NewSubmissionRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, tokenService, denylist, fileStore, opts.Logger)
	userService := service.NewUserService(userRepo, fileStore, opts.Logger)
	contentService := service.NewContentService(contentRepo, opts.Logger)
	submissionService := service.NewSubmissionService(submissionRepo, fileStore, opts.Logger)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	contentHandler := handler.NewContentHandler(contentService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)

	requireAuth := middleware.RequireAuth(tokenService, denylist)
	requireAdmin := middleware.RequireAdmin()

	// --- Auth ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/register-detailed", authHandler.RegisterDetailed)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout, requireAuth)
	e.GET("/api/auth/me", authHandler.Me, requireAuth)

	// --- Self-service ---
	e.PUT("/api/users/me", userHandler.UpdateProfile, requireAuth)

	// --- Public content ---
	e.GET("/api/services", contentHandler.PublicServices)
	e.GET("/api/testimonials", contentHandler.PublicTestimonials)
	e.GET("/api/contact-info", contentHandler.ContactInfo)
	e.GET("/api/legal/:slug", contentHandler.LegalPage)

	// --- Visitor intake ---
	e.POST("/api/leads", submissionHandler.SubmitLead)
	e.POST("/api/messages", submissionHandler.SubmitMessage)
	e.POST("/api/applications", submissionHandler.SubmitApplication)
	e.POST("/api/fraud-reports", submissionHandler.SubmitFraudReport)

	// --- Admin back office ---
	admin := e.Group("/api/admin", requireAuth, requireAdmin)
	admin.GET("/users", userHandler.List)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.PUT("/users/:id/role", userHandler.ChangeRole)

	admin.GET("/services", contentHandler.AdminListServices)
	admin.POST("/services", contentHandler.CreateService)
	admin.PUT("/services/:id", contentHandler.UpdateService)
	admin.DELETE("/services/:id", contentHandler.DeleteService)

	admin.GET("/testimonials", contentHandler.AdminListTestimonials)
	admin.POST("/testimonials", contentHandler.CreateTestimonial)
	admin.PUT("/testimonials/:id", contentHandler.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", contentHandler.DeleteTestimonial)

	admin.PUT("/contact-info", contentHandler.UpdateContactInfo)

	admin.GET("/legal", contentHandler.AdminListLegalPages)
	admin.PUT("/legal", contentHandler.PutLegalPage)
	admin.DELETE("/legal/:slug", contentHandler.DeleteLegalPage)

	admin.GET("/leads", submissionHandler.ListLeads)
	admin.DELETE("/leads/:id", submissionHandler.Delete(domain.KindLead))
	admin.GET("/messages", submissionHandler.ListMessages)
	admin.DELETE("/messages/:id", submissionHandler.Delete(domain.KindMessage))
	admin.GET("/applications", submissionHandler.ListApplications)
	admin.DELETE("/applications/:id", submissionHandler.Delete(domain.KindApplication))
	admin.GET("/fraud-reports", submissionHandler.ListFraudReports)
	admin.DELETE("/fraud-reports/:id", submissionHandler.Delete(domain.KindFraudReport))

	// --- Uploaded files, served back by relative path ---
	e.Static("/uploads", opts.UploadDir)

	// --- Ops ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
