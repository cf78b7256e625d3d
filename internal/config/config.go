package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every environment variable the bot reads.
const Prefix = "VALRANK_"

// Config holds the bot's runtime configuration.
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	TrackerAPIKey string `env:"TRACKER_API_KEY,required,notEmpty"`

	TrackerBaseURL    string        `env:"TRACKER_BASE_URL" envDefault:"https://api.tracker.gg/api/v2/valorant/standard/profile/riot"`
	TrackerTimeout    time.Duration `env:"TRACKER_TIMEOUT" envDefault:"5s"`
	TrackerMaxRetries uint64        `env:"TRACKER_MAX_RETRIES" envDefault:"3"`

	SQLitePath     string        `env:"SQLITE_DB_PATH" envDefault:"valrank.sqlite"`
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	HandlerTimeout time.Duration `env:"HANDLER_TIMEOUT" envDefault:"30s"`

	// Discord's "Blue" and "Gold".
	CurrentRoleColor int `env:"CURRENT_ROLE_COLOR" envDefault:"3447003"`
	PeakRoleColor    int `env:"PEAK_ROLE_COLOR" envDefault:"15844367"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// FromEnv loads a Config from the process environment.
func FromEnv() (Config, error) {
	return load(envMap(os.Environ()))
}

func load(environ map[string]string) (Config, error) {
	var c Config
	opts := env.Options{
		Prefix:      Prefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func envMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}

// ConfigureLogging applies the level and format to the standard logrus
// logger.
func (c Config) ConfigureLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(level)

	switch c.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}
