// Package daemon wires configuration, logging and the web service together.
package daemon

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/joengan/passforge/internal/config"
	"github.com/joengan/passforge/internal/logger"
	"github.com/joengan/passforge/internal/random"
	"github.com/joengan/passforge/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it stops.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logging")
	}

	// refuse to start without a working random source
	if err := random.Probe(); err != nil {
		log.Fatal().Err(err).Msg("secure random source unavailable")
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg),
	}
}
