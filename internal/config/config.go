// Configuration structure definitions
//
// Defines all configuration options as structured Go types
// with yaml keys and `default` struct tags
//
// Main sections:
// - ServerConfig: HTTP server settings
// - OriginConfig: upstream fetch connection settings
// - CacheConfig: manifest cache behavior settings
// - RegistryConfig: fixed stream name registry
// - LogConfig: logging parameters
package config

import "time"

// Config is the root configuration for the gateway.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Origin   OriginConfig   `yaml:"origin"`
	Cache    CacheConfig    `yaml:"cache"`
	Registry RegistryConfig `yaml:"registry"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig controls the HTTP listener and its lifecycle.
type ServerConfig struct {
	Addr            string        `yaml:"addr" default:":8080"`
	ReadTimeout     time.Duration `yaml:"readTimeout" default:"10s"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idleTimeout" default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" default:"15s"`
	TLS             TLSConfig     `yaml:"tls"`
}

// TLSConfig is optional TLS termination for the listener. Key rotation and
// certificate issuance are out of scope; these paths are loaded as-is.
type TLSConfig struct {
	Enabled        bool   `yaml:"enabled" default:"false"`
	CertFile       string `yaml:"certFile"`
	KeyFile        string `yaml:"keyFile"`
	PassphraseFile string `yaml:"passphraseFile"`
}

// OriginConfig controls the HTTP client used to fetch upstream playlists.
type OriginConfig struct {
	Timeout               time.Duration `yaml:"timeout" default:"5s"`
	MaxIdleConns          int           `yaml:"maxIdleConns" default:"100"`
	MaxIdleConnsPerHost   int           `yaml:"maxIdleConnsPerHost" default:"10"`
	MaxConnsPerHost       int           `yaml:"maxConnsPerHost" default:"0"`
	IdleConnTimeout       time.Duration `yaml:"idleConnTimeout" default:"90s"`
	TLSHandshakeTimeout   time.Duration `yaml:"tlsHandshakeTimeout" default:"5s"`
	ExpectContinueTimeout time.Duration `yaml:"expectContinueTimeout" default:"1s"`
}

// CacheConfig controls the upstream manifest cache. The cache has no
// eviction or TTL by design (spec §5) — ShardCount only tunes lock
// contention, it does not bound memory.
type CacheConfig struct {
	ShardCount int `yaml:"shardCount" default:"16"`
}

// RegistryConfig is the fixed short-name-to-URL stream registry. At least
// one entry ("default") must resolve; DefaultStream names which entry a
// request with no `stream` parameter uses.
type RegistryConfig struct {
	DefaultStream string            `yaml:"defaultStream" default:"default"`
	Streams       map[string]string `yaml:"streams"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"text"`
	Output string `yaml:"output" default:"stdout"`
}
