package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eduassist-backend/internal/faq"
	"eduassist-backend/internal/resources"
	"eduassist-backend/internal/shared/metrics"
	"eduassist-backend/internal/shared/server/middleware"
	"eduassist-backend/internal/shared/server/respond"
	"eduassist-backend/internal/suggestions"
)

const pipelineRateGroup = "PIPELINE"

// RouterDeps carries the constructed handlers into the router. Dependency
// construction lives in bootstrap; the router only wires routes.
type RouterDeps struct {
	Env             string
	CORSAllowOrigin []string
	Resources       *resources.Handler
	Suggestions     *suggestions.Handler
	FAQ             *faq.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":         {Rate: 10, Burst: 20},
				pipelineRateGroup: {Rate: 0.2, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/resources" {
					return pipelineRateGroup
				}
				return ""
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.Resources.RegisterRoutes(api)
	deps.Suggestions.RegisterRoutes(api)
	deps.FAQ.RegisterRoutes(api)

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
