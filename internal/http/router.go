package http

import (
	"log/slog"
	"net/http"

	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/config"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/http/handlers"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/http/middleware"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/models"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/services"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/web"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config      *config.Config
	AuthService *services.AuthService
	TaskService *services.TaskService
	Logger      *slog.Logger
	RateLimiter *middleware.RateLimiter
	Pinger      handlers.Pinger
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	userHandler := handlers.NewUserHandler(deps.AuthService)
	taskHandler := handlers.NewTaskHandler(deps.TaskService)
	meHandler := handlers.NewMeHandler(deps.AuthService)

	router.GET("/healthz", handlers.Health(deps.Pinger))

	public := router.Group("")
	if deps.RateLimiter != nil {
		public.Use(deps.RateLimiter.Middleware())
	}
	public.POST("/users/", userHandler.Register)
	public.POST("/login", authHandler.Login)

	protected := router.Group("")
	protected.Use(middleware.JWTAuth(middleware.AuthConfig{Secret: deps.Config.JWTSecret}))
	{
		protected.GET("/me", meHandler.GetMe)
		protected.GET("/tasks/", taskHandler.List)
		protected.POST("/tasks/", taskHandler.Create)
		protected.PUT("/tasks/:id/", taskHandler.Update)
		protected.DELETE("/tasks/:id/", middleware.RequireRole(models.RoleAdmin), taskHandler.Delete)
	}

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index())
	})
	router.StaticFS("/static", web.Assets())

	return router
}
