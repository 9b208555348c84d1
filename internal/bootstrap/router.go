package bootstrap

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	httpapi "github.com/deepak92201/Portfolio/internal/api/http"
	"github.com/deepak92201/Portfolio/internal/api/http/middleware"
	authdomain "github.com/deepak92201/Portfolio/internal/auth/domain"
	authhttp "github.com/deepak92201/Portfolio/internal/auth/http"
	authmw "github.com/deepak92201/Portfolio/internal/auth/middleware"
	"github.com/deepak92201/Portfolio/internal/auth/throttle"
	projectshttp "github.com/deepak92201/Portfolio/internal/projects/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	TrustedProxies []string
	DB             httpapi.Pinger
	Logger         logrus.FieldLogger

	Auth     authhttp.LoginService
	Tokens   authmw.TokenVerifier
	Limiter  throttle.Limiter
	Projects projectshttp.ProjectService
}

// BuildRouter wires the middleware chain and every route group. Client
// addresses come from X-Forwarded-For only when the peer is one of
// TrustedProxies.
func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	authHandler := authhttp.New(dep.Auth, dep.Limiter, dep.Logger)
	authHandler.Register(api.Group("/auth"))

	adminOnly := authmw.RequireRole(dep.Tokens, authdomain.RoleAdmin)
	projectsHandler := projectshttp.New(dep.Projects, dep.Logger)
	projectsHandler.Register(api.Group("/projects"), adminOnly)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders: []string{"Location", "X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
