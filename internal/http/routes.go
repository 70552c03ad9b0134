package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// ManifestRoutes registers the manifest endpoints.
type ManifestRoutes struct {
	handler *Handler
}

var _ RouteGroup = (*ManifestRoutes)(nil)

// NewManifestRoutes creates a new ManifestRoutes instance.
func NewManifestRoutes(handler *Handler) *ManifestRoutes {
	return &ManifestRoutes{handler: handler}
}

// RegisterRoutes registers POST /manifests on rg.
func (r *ManifestRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/manifests", r.handler.CreateManifest)
}
