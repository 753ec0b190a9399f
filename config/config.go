package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Fetch   FetchConfig
	Channel ChannelConfig
	Log     LogConfig
	MCP     MCPConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetchConfig controls the upstream HTTP engine.
type FetchConfig struct {
	// Timeout bounds a single channel page fetch, including the body read.
	Timeout time.Duration // default: 15s

	// Proxy is an optional http(s) proxy URL.
	Proxy string
}

// ChannelConfig controls how channel pages are requested and diagnosed.
type ChannelConfig struct {
	// BaseURL is the upstream origin; channel pages live under
	// BaseURL + "/channel/<id>/videos" and video links are built on it.
	BaseURL string // default: "https://www.youtube.com"

	// DefaultLanguage is sent as Accept-Language when the caller gives none.
	DefaultLanguage string // default: "en-US"

	// DumpDir receives the raw HTML of pages whose payload could not be
	// extracted. Empty disables dumping.
	DumpDir string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// MCPConfig controls the MCP bridge binary.
type MCPConfig struct {
	APIURL string // default: "http://127.0.0.1:8080"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("TUBESCRAPE_HOST", "0.0.0.0"),
			// PORT is honoured for platforms that inject it.
			Port: envIntOr("TUBESCRAPE_PORT", envIntOr("PORT", 8080)),
			Mode: envOr("TUBESCRAPE_MODE", "release"),
		},
		Fetch: FetchConfig{
			Timeout: envDurationOr("TUBESCRAPE_FETCH_TIMEOUT", 15*time.Second),
			Proxy:   os.Getenv("TUBESCRAPE_PROXY"),
		},
		Channel: ChannelConfig{
			BaseURL:         envOr("TUBESCRAPE_BASE_URL", "https://www.youtube.com"),
			DefaultLanguage: envOr("TUBESCRAPE_DEFAULT_LANGUAGE", "en-US"),
			DumpDir:         os.Getenv("TUBESCRAPE_DUMP_DIR"),
		},
		Log: LogConfig{
			Level:  envOr("TUBESCRAPE_LOG_LEVEL", "info"),
			Format: envOr("TUBESCRAPE_LOG_FORMAT", "json"),
		},
		MCP: MCPConfig{
			APIURL: envOr("TUBESCRAPE_MCP_API_URL", "http://127.0.0.1:8080"),
		},
	}
}

// LoadDotenv reads KEY=value files (".env" when none are given) into the
// process environment before Load. Variables already set win; missing files
// are skipped.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
