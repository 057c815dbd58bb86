package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bauwerk-digital/contracts-tracker/internal/common"
	"github.com/bauwerk-digital/contracts-tracker/internal/middleware"
)

// NewRouter builds the gin engine with the middleware chain and all routes.
// When no JWT secret is configured, the API runs unauthenticated (local
// single-user deployments).
func NewRouter(contracts *ContractHandler, authCfg *common.AuthConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	if authCfg.JWTSecret != "" {
		auth := NewAuthHandler(authCfg)
		api.POST("/auth/login", auth.Login)
		api.Use(middleware.Auth(authCfg))
	}

	api.POST("/contracts/analyze", contracts.Analyze)
	api.GET("/contracts", contracts.List)
	api.GET("/contracts/stats", contracts.Stats)
	api.GET("/contracts/export", contracts.Export)
	api.GET("/contracts/:id", contracts.Get)
	api.DELETE("/contracts/:id", contracts.Delete)

	return router
}
