package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sharath018/event-registration-backend/config"
	_ "github.com/sharath018/event-registration-backend/docs"
	"github.com/sharath018/event-registration-backend/internal/auth"
	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/notification"
	"github.com/sharath018/event-registration-backend/internal/registration"
	"github.com/sharath018/event-registration-backend/internal/reports"
	"github.com/sharath018/event-registration-backend/internal/validation"
	"github.com/sharath018/event-registration-backend/middleware"
)

// Dependencies is everything Setup needs to build the handlers. Publisher and Redis may be nil.
type Dependencies struct {
	Config    *config.Config
	DB        *gorm.DB
	Auth      auth.Service
	Publisher notification.Publisher
	Redis     *redis.Client
}

func Setup(r *gin.Engine, deps Dependencies) {
	validation.Register()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(deps.Config.RateLimitPerMinute))

	adminOnly := middleware.AdminAuth(deps.Auth, deps.Config.AdminAuthRequired)

	// ========== Auth ==========
	authHandler := auth.NewHandler(deps.Auth)
	api.POST("/auth/login", authHandler.Login)

	// ========== Events ==========
	eventRepo := event.NewRepository(deps.DB)
	eventHandler := event.NewHandler(event.NewService(eventRepo))

	events := api.Group("/events")
	{
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.POST("", adminOnly, eventHandler.CreateEvent)
		events.PUT("/:id", adminOnly, eventHandler.UpdateEvent)
		events.DELETE("/:id", adminOnly, eventHandler.DeleteEvent)
	}

	// ========== Registrations ==========
	regSvc := registration.NewService(registration.NewRepository(deps.DB), eventRepo, deps.Publisher)
	regHandler := registration.NewHandler(regSvc)

	regs := api.Group("/registrations")
	{
		// the public form posts here
		regs.POST("", regHandler.CreateRegistration)

		regs.GET("", adminOnly, regHandler.ListRegistrations)
		regs.GET("/:id", adminOnly, regHandler.GetRegistration)
		regs.PUT("/:id/status", adminOnly, regHandler.UpdateStatus)
		regs.PUT("/:id/payment", adminOnly, regHandler.UpdatePayment)
		regs.POST("/:id/transitions", adminOnly, regHandler.Transition)
	}

	// ========== Reports ==========
	reportHandler := reports.NewHandler(reports.NewReportService(reports.NewRepository(deps.DB), reports.NewReportExporter()))
	api.GET("/reports/registrations", adminOnly, reportHandler.GetRegistrationsReport)
	api.GET("/dashboard/stats", adminOnly, reportHandler.GetDashboardStats)

	// ========== Notifications ==========
	notificationHandler := notification.NewHandler(deps.Redis)
	api.GET("/notifications/registrations", adminOnly, notificationHandler.StreamRegistrations)
}
