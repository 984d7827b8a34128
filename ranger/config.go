package ranger

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/routepath"
	"github.com/xy-planning-network/trailmap/logger"
)

// Config holds what a trailmap app is configured with.
//
// Values come, in increasing precedence, from defaults, a TOML file and environment variables;
// cf. [LoadConfig] and [*Config.Finalize].
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Routes      RoutesConfig  `toml:"routes"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig configures the web server.
type ServerConfig struct {
	BaseURL      string `toml:"base_url"`
	CORSOrigin   string `toml:"cors_origin"`
	Host         string `toml:"host"`
	Port         string `toml:"port"`
	IdleTimeout  string `toml:"idle_timeout"`
	ReadTimeout  string `toml:"read_timeout"`
	WriteTimeout string `toml:"write_timeout"`

	// RateLimit is the requests per second allowed from one IP address. Zero means unlimited.
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
}

// RoutesConfig configures the route tree mounted on the app's router.
type RoutesConfig struct {
	// Dir is the route tree's root directory. Empty means no route tree.
	Dir string `toml:"dir"`

	// AutoTags defaults to true.
	AutoTags  *bool  `toml:"auto_tags"`
	StripMode string `toml:"strip_mode"`
	Verbose   bool   `toml:"verbose"`
}

// LoggingConfig configures the app's logger.Logger.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// LoadConfig reads the TOML file at path into a Config.
// An empty path reads the file named by TRAILMAP_CONFIG, or else ConfigFile,
// and a missing ConfigFile yields an empty Config.
//
// LoadConfig does not apply defaults or environment variables; call Finalize for that.
func LoadConfig(path string) (*Config, error) {
	optional := false
	if path == "" {
		path = trailmap.EnvVarOrString(ConfigEnvVar, ConfigFile)
		optional = path == ConfigFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && optional {
		return new(Config), nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: read config: %s", trailmap.ErrNotExist, err)
	}

	cfg := new(Config)
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse config %s: %s", trailmap.ErrNotValid, path, err)
	}

	return cfg, nil
}

// Finalize applies defaults, then environment variables, and validates the result.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := trailmap.Environment(c.Environment).Valid(); err != nil {
		return fmt.Errorf("environment %q: %w", c.Environment, err)
	}

	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if _, err := routepath.NewStripMode(c.Routes.StripMode); err != nil {
		return fmt.Errorf("routes: %w: %s", trailmap.ErrNotValid, err)
	}

	if logger.NewLogLevel(c.Logging.Level) == logger.LogLevelUnk {
		return fmt.Errorf("logging: %w: unknown level %q", trailmap.ErrNotValid, c.Logging.Level)
	}

	return nil
}

// Merge applies the values set in overlay over those in c.
func (c *Config) Merge(overlay *Config) {
	if overlay.Environment != "" {
		c.Environment = overlay.Environment
	}

	c.Server.merge(&overlay.Server)
	c.Routes.merge(&overlay.Routes)
	if overlay.Logging.Level != "" {
		c.Logging.Level = overlay.Logging.Level
	}
}

// Env is the Environment the Config sets.
func (c *Config) Env() trailmap.Environment { return trailmap.Environment(c.Environment) }

// LogLevel is the logger.LogLevel the Config sets.
func (c *Config) LogLevel() logger.LogLevel { return logger.NewLogLevel(c.Logging.Level) }

// StripMode is the routepath.StripMode the Config sets, once finalized.
func (c *Config) StripMode() routepath.StripMode {
	mode, _ := routepath.NewStripMode(c.Routes.StripMode)
	return mode
}

// URL is where the web server is reached: BaseURL if set, otherwise built from Host and Port.
func (c *Config) URL() *url.URL {
	if c.Server.BaseURL != "" {
		if u, err := url.ParseRequestURI(c.Server.BaseURL); err == nil {
			return u
		}
	}

	return &url.URL{Scheme: "http", Host: net.JoinHostPort(c.Server.Host, strings.TrimPrefix(c.Server.Port, ":"))}
}

func (c *Config) loadDefaults() {
	if c.Environment == "" {
		c.Environment = trailmap.Development.String()
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}

	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}

	if c.Server.IdleTimeout == "" {
		c.Server.IdleTimeout = DefaultServerIdleTimeout.String()
	}

	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = DefaultServerReadTimeout.String()
	}

	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = DefaultServerWriteTimeout.String()
	}

	if c.Server.RateLimit > 0 && c.Server.RateBurst == 0 {
		c.Server.RateBurst = DefaultServerRateBurst
	}

	if c.Routes.AutoTags == nil {
		on := true
		c.Routes.AutoTags = &on
	}

	if c.Routes.StripMode == "" {
		c.Routes.StripMode = routepath.StripSegment.String()
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "INFO"
	}
}

func (c *Config) loadEnv() {
	c.Environment = strings.ToUpper(c.Environment)
	c.Environment = trailmap.EnvVarOrEnv(environmentEnvVar, c.Env()).String()

	c.Server.BaseURL = trailmap.EnvVarOrString(BaseURLEnvVar, c.Server.BaseURL)
	c.Server.CORSOrigin = trailmap.EnvVarOrString(corsOriginEnvVar, c.Server.CORSOrigin)
	c.Server.Host = trailmap.EnvVarOrString(hostEnvVar, c.Server.Host)
	c.Server.Port = trailmap.EnvVarOrString(portEnvVar, c.Server.Port)
	c.Server.IdleTimeout = trailmap.EnvVarOrString(serverIdleTimeoutEnvVar, c.Server.IdleTimeout)
	c.Server.ReadTimeout = trailmap.EnvVarOrString(serverReadTimeoutEnvVar, c.Server.ReadTimeout)
	c.Server.WriteTimeout = trailmap.EnvVarOrString(serverWriteTimeoutEnvVar, c.Server.WriteTimeout)
	c.Server.RateLimit = trailmap.EnvVarOrFloat(serverRateLimitEnvVar, c.Server.RateLimit)
	c.Server.RateBurst = trailmap.EnvVarOrInt(serverRateBurstEnvVar, c.Server.RateBurst)

	c.Routes.Dir = trailmap.EnvVarOrString(routesDirEnvVar, c.Routes.Dir)
	autoTags := trailmap.EnvVarOrBool(routesAutoTagsEnvVar, *c.Routes.AutoTags)
	c.Routes.AutoTags = &autoTags
	c.Routes.StripMode = trailmap.EnvVarOrString(routesStripModeEnvVar, c.Routes.StripMode)
	c.Routes.Verbose = trailmap.EnvVarOrBool(routesVerboseEnvVar, c.Routes.Verbose)

	c.Logging.Level = strings.ToUpper(trailmap.EnvVarOrString(logLevelEnvVar, c.Logging.Level))
}

// Durations parses the idle, read and write timeouts, in that order.
func (s ServerConfig) Durations() (idle, read, write time.Duration) {
	idle, _ = time.ParseDuration(s.IdleTimeout)
	read, _ = time.ParseDuration(s.ReadTimeout)
	write, _ = time.ParseDuration(s.WriteTimeout)
	return
}

func (s *ServerConfig) merge(overlay *ServerConfig) {
	for dst, src := range map[*string]string{
		&s.BaseURL:      overlay.BaseURL,
		&s.CORSOrigin:   overlay.CORSOrigin,
		&s.Host:         overlay.Host,
		&s.Port:         overlay.Port,
		&s.IdleTimeout:  overlay.IdleTimeout,
		&s.ReadTimeout:  overlay.ReadTimeout,
		&s.WriteTimeout: overlay.WriteTimeout,
	} {
		if src != "" {
			*dst = src
		}
	}

	if overlay.RateLimit != 0 {
		s.RateLimit = overlay.RateLimit
	}

	if overlay.RateBurst != 0 {
		s.RateBurst = overlay.RateBurst
	}
}

func (s ServerConfig) validate() error {
	for name, val := range map[string]string{
		"idle_timeout":  s.IdleTimeout,
		"read_timeout":  s.ReadTimeout,
		"write_timeout": s.WriteTimeout,
	} {
		if _, err := time.ParseDuration(val); err != nil {
			return fmt.Errorf("%w: invalid %s: %s", trailmap.ErrNotValid, name, err)
		}
	}

	if s.RateLimit < 0 || s.RateBurst < 0 {
		return fmt.Errorf("%w: negative rate_limit or rate_burst", trailmap.ErrNotValid)
	}

	if s.BaseURL != "" {
		if _, err := url.ParseRequestURI(s.BaseURL); err != nil {
			return fmt.Errorf("%w: invalid base_url: %s", trailmap.ErrNotValid, err)
		}
	}

	return nil
}

func (r *RoutesConfig) merge(overlay *RoutesConfig) {
	if overlay.Dir != "" {
		r.Dir = overlay.Dir
	}

	if overlay.AutoTags != nil {
		on := *overlay.AutoTags
		r.AutoTags = &on
	}

	if overlay.StripMode != "" {
		r.StripMode = overlay.StripMode
	}

	if overlay.Verbose {
		r.Verbose = true
	}
}
