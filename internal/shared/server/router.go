package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvision-backend/internal/shared/config"
	"cvision-backend/internal/shared/server/middleware"
	"cvision-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to an API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the prewired handlers the router mounts.
type RouterDeps struct {
	Config   config.Config
	Handlers []RouteRegistrar
	// ServeLocalArtifacts exposes exported files under /storage when the
	// local artifact store is in use.
	ServeLocalArtifacts bool
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	for _, h := range deps.Handlers {
		h.RegisterRoutes(api)
	}

	if deps.ServeLocalArtifacts {
		r.Static("/storage", deps.Config.StorageRoot)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
