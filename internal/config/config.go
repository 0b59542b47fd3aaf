package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"CapIot.esp32mock/internal/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Host            string
	Port            int
	LogLevel        string
	LogFormat       string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LoadConfig resolves each setting from, highest first: flags in args, the
// process environment, an optional .env file, built-in defaults. The .env
// file never overrides a variable that is already set.
func LoadConfig(args []string, logger zerolog.Logger) (Config, error) {
	fs := pflag.NewFlagSet("esp32mock", pflag.ContinueOnError)
	envFile := fs.String("env-file", ".env", "Path to an optional .env file")
	fs.String("host", "0.0.0.0", "Interface to bind")
	fs.Int("port", 80, "TCP port to listen on")
	fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	fs.String("log-format", logging.FormatConsole, "Log format (console, json)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch err := godotenv.Load(*envFile); {
	case errors.Is(err, os.ErrNotExist):
		logger.Info().Str("path", *envFile).Msg("No .env file found, relying on system environment variables")
	case err != nil:
		logger.Warn().Err(err).Str("path", *envFile).Msg("Ignoring unreadable .env file")
	}

	v := viper.New()
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 80)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", logging.FormatConsole)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"host":       "host",
		"port":       "port",
		"log_level":  "log-level",
		"log_format": "log-format",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("binding flag %q: %w", flag, err)
		}
	}

	cfg := Config{
		Host:            v.GetString("host"),
		LogLevel:        strings.ToLower(v.GetString("log_level")),
		LogFormat:       strings.ToLower(v.GetString("log_format")),
		AllowedOrigins:  splitList(v.GetString("cors_allowed_origins")),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}

	port, err := strconv.Atoi(v.GetString("port"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid port %q: %w", v.GetString("port"), err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	if c.LogLevel == "" {
		return fmt.Errorf("log level must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != logging.FormatConsole && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin is required")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
