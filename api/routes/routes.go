package routes

import (
	"github.com/Avis17/karunya-draw-tracker/internal/config"
	"github.com/Avis17/karunya-draw-tracker/internal/handlers"
	"github.com/Avis17/karunya-draw-tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies bundles the handlers the router wires up.
type HandlerDependencies struct {
	AuthHandler   *handlers.AuthHandler
	ResultHandler *handlers.ResultHandler
	AdminHandler  *handlers.AdminHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		results := public.Group("/results")
		{
			results.GET("/home", deps.ResultHandler.GetHomeBoard)
			results.GET("/board", deps.ResultHandler.GetBoard)
		}
	}

	// Admin routes live under a deliberately non-obvious prefix. The prefix
	// only hides the endpoints from casual discovery; the JWT middleware is
	// what actually protects them.
	admin := router.Group(cfg.Server.AdminPathPrefix)
	{
		admin.POST("/auth/login", deps.AuthHandler.Login)

		protected := admin.Group("/results")
		protected.Use(middleware.JWTAuthMiddleware(cfg))
		protected.Use(middleware.RequireRole("admin"))
		{
			protected.GET("", deps.AdminHandler.GetResults)
			protected.POST("", deps.AdminHandler.UpsertResult)
			protected.DELETE("/:id", deps.AdminHandler.DeleteResult)
		}
	}

	return router
}
