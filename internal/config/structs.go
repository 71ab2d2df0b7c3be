package config

import (
	"github.com/joengan/passforge/internal/charset"
	"github.com/joengan/passforge/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Log       logger.Log
	Title     string
	Defaults  Defaults
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Defaults are the generation options applied when a request or command
// omits a field. Zero values fall back to the engine defaults.
type Defaults struct {
	Length            int  `toml:"length"`
	ExcludeAmbiguous  bool `toml:"excludeAmbiguous"`
	ExcludeCodeUnsafe bool `toml:"excludeCodeUnsafe"`
}

// Options returns the engine generation options with these defaults
// applied on top of the engine's own.
func (d Defaults) Options() charset.Options {
	opts := charset.DefaultOptions()

	if d.Length > 0 {
		opts.Length = d.Length
	}

	opts.ExcludeAmbiguous = d.ExcludeAmbiguous
	opts.ExcludeCodeUnsafe = d.ExcludeCodeUnsafe

	return opts
}
