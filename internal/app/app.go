// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pickship/config"
	"github.com/guttosm/pickship/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// The returned cleanup releases the background workers of the rate limiter and
// the manifest cache.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	serviceComponents := InitializeServices(cfg)

	routerComponents := InitializeRouter(serviceComponents, cfg)

	engine := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
	return engine, func() {
		routerComponents.Close()
		serviceComponents.Close()
	}
}
