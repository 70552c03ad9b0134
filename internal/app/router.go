// Package app provides router configuration.
package app

import (
	"github.com/guttosm/pickship/config"
	"github.com/guttosm/pickship/internal/http"
	"github.com/guttosm/pickship/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// Close stops the rate limiter's cleanup worker.
func (rc *RouterComponents) Close() {
	if rc.Config.RateLimiter != nil {
		rc.Config.RateLimiter.Stop()
	}
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(services.Packer)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("packer", http.NewPackerCheck(services.Packer))

	routerCfg := http.DefaultRouterConfig()
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimit = cfg.Server.RateLimit
	}
	if cfg.Server.RateWindow > 0 {
		routerCfg.RateWindow = cfg.Server.RateWindow
	}
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	if cfg.Server.MaxBodyBytes > 0 {
		routerCfg.MaxBodyBytes = cfg.Server.MaxBodyBytes
	}
	routerCfg.EnableAuth = cfg.Auth.Enabled
	routerCfg.APIKeys = cfg.Auth.APIKeys
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.RateLimiter = middleware.NewRateLimiter(routerCfg.RateLimit, routerCfg.RateWindow)

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
