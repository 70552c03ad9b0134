// Package app provides service initialization.
package app

import (
	"github.com/guttosm/pickship/config"
	"github.com/guttosm/pickship/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Packer service.ManifestPacker
	stop   func()
}

// Close stops the packer's cache workers. Safe to call more than once.
func (sc *ServiceComponents) Close() {
	if sc.stop != nil {
		sc.stop()
	}
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	var opts []service.Option

	if cfg.Packing.Capacity > 0 {
		opts = append(opts, service.WithCapacity(cfg.Packing.Capacity))
	}

	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	packer := service.NewPackerService(opts...)
	return &ServiceComponents{
		Packer: packer,
		stop:   packer.Stop,
	}
}
