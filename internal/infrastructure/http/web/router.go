// Package web provides the console's inbound HTTP surface: server-rendered
// pages, their POST actions, and a handful of JSON endpoints.
package web

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bytebasket/internal/domain/auth"
	"bytebasket/internal/domain/donation"
	"bytebasket/internal/domain/volunteer"
	"bytebasket/internal/infrastructure/apiclient"
	"bytebasket/internal/infrastructure/http/web/handlers"
	"bytebasket/internal/infrastructure/http/web/middleware"
	"bytebasket/internal/infrastructure/http/web/static"
	"bytebasket/internal/infrastructure/http/web/templates"
	"bytebasket/internal/infrastructure/session"
	"bytebasket/pkg/logger"
)

// RouterConfig holds the console's wiring.
type RouterConfig struct {
	// Logger for request logging.
	Logger *logger.Logger

	// Client is the platform API client.
	Client *apiclient.Client

	// Health probes the backend health URL.
	Health *apiclient.HealthProbe

	// Sessions is the browsing-session store.
	Sessions session.Store

	// AllowedOrigins for the JSON endpoints; empty disables CORS.
	AllowedOrigins []string

	// SecureCookies marks the session cookie Secure (behind TLS).
	SecureCookies bool

	// SessionTTL bounds how long idle per-session page state is kept.
	SessionTTL time.Duration

	// DevMode keeps gin in debug mode.
	DevMode bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Session(cfg.SecureCookies))

	base := handlers.BaseHandler{Templates: tmpl, Sessions: cfg.Sessions}

	authSvc := auth.NewService(cfg.Client, cfg.Sessions)
	shiftSvc := volunteer.NewService(cfg.Client)
	donationSvc := donation.NewService(cfg.Client)

	authH := &handlers.AuthHandler{BaseHandler: base, Auth: authSvc}
	dashH := &handlers.DashboardHandler{BaseHandler: base, Auth: authSvc, API: cfg.Client}
	invH := handlers.NewInventoryHandler(base, cfg.Client, cfg.SessionTTL)
	fbH := handlers.NewFoodBankHandler(base, cfg.Client, cfg.SessionTTL)
	volH := &handlers.VolunteerHandler{BaseHandler: base, Shifts: shiftSvc, Auth: authSvc}
	donH := &handlers.DonateHandler{BaseHandler: base, Donations: donationSvc}
	verifyH := &handlers.VerifyEmailHandler{BaseHandler: base, Auth: authSvc}
	healthH := &handlers.HealthHandler{Probe: cfg.Health}
	eventsH := &handlers.EventsHandler{BaseHandler: base}

	homeH := &handlers.HomeHandler{
		BaseHandler: base,
		Health:      cfg.Health,
		Inventory:   invH,
		FoodBanks:   fbH,
		Volunteer:   volH,
		Donate:      donH,
		Auth:        authH,
		Dashboard:   dashH,
		VerifyMail:  verifyH,
	}

	// Pages
	router.GET("/", homeH.Root)
	router.GET("/verify-email", verifyH.Page)
	router.StaticFS("/static", http.FS(static.FS))

	// Auth actions
	router.POST("/signin", authH.SignIn)
	router.POST("/register", authH.Register)
	router.POST("/logout", authH.Logout)
	router.POST("/auth/resend-verification", verifyH.Resend)

	// Donations
	router.POST("/donate", donH.Submit)

	// Inventory actions
	router.POST("/inventory/create", invH.Create)
	router.POST("/inventory/:id/update", invH.Update)
	router.POST("/inventory/:id/delete", invH.Delete)
	router.POST("/inventory/bulk-delete", invH.BulkDelete)
	router.GET("/inventory/export.csv", invH.ExportCSV)

	// Food banks and storage
	router.POST("/foodbanks/create", fbH.Create)
	router.POST("/foodbanks/:id/update", fbH.Update)
	router.POST("/foodbanks/:id/delete", fbH.Delete)
	router.POST("/storage/create", fbH.CreateStorage)
	router.POST("/storage/:id/update", fbH.UpdateStorage)
	router.POST("/storage/:id/delete", fbH.DeleteStorage)

	// Volunteers and shifts
	router.POST("/volunteers/register", volH.Register)
	router.POST("/shifts/:id/signup", volH.SignUp)
	router.POST("/shifts/:id/cancel", volH.Cancel)

	// JSON endpoints
	api := router.Group("/api")
	{
		api.GET("/inventory", invH.ListJSON)
		api.GET("/connection-test", healthH.ConnectionTest)
	}

	// Infrastructure
	router.GET("/health", healthH.Live)
	router.GET("/events/session", eventsH.SessionEvents)

	return router, nil
}
