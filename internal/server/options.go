// Server configuration options
//
// Defines the available server options and their defaults:
// - Listen address
// - TLS configuration
// - Timeouts (read, write, idle, shutdown)

package server

import (
	"time"

	"github.com/ilijajolevski/ilinden/internal/config"
)

// Options configures a Server's HTTP listener.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	TLS             config.TLSConfig
}

// OptionsFromConfig builds Options from the loaded ServerConfig.
func OptionsFromConfig(cfg config.ServerConfig) Options {
	return Options{
		Addr:            cfg.Addr,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		IdleTimeout:     cfg.IdleTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
		TLS:             cfg.TLS,
	}
}
