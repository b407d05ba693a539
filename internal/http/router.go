package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas del sitio.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	authH *AuthHandler,
	messageH *MessageHandler,
	projectH *ProjectHandler,
	corsOrigin string,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y CORS (el frontend corre en
	// otro origen).
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(corsOrigin))

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authH.Signup)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)
	auth.POST("/logout", authH.Logout)

	messages := api.Group("/messages")
	messages.POST("", messageH.CreateMessage)
	messages.GET("", messageH.ListMessages)
	messages.DELETE("/:id/:token", messageH.DeleteMessage)

	projects := api.Group("/portfolio/projects")
	projects.GET("", projectH.ListProjects)

	adminProjects := api.Group("/portfolio/projects", JWTAuthMiddleware(jwtSvc))
	adminProjects.POST("", projectH.CreateProject)
	adminProjects.PUT("/:id", projectH.UpdateProject)
	adminProjects.DELETE("/:id", projectH.DeleteProject)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// corsMiddleware habilita CORS para el frontend del sitio.
func corsMiddleware(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
