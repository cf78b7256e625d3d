package main

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/connorkuehl/valrank/internal/bot"
	"github.com/connorkuehl/valrank/internal/config"
	"github.com/connorkuehl/valrank/internal/database/sqlite"
	"github.com/connorkuehl/valrank/internal/discord"
	"github.com/connorkuehl/valrank/internal/health"
	"github.com/connorkuehl/valrank/internal/roles"
	"github.com/connorkuehl/valrank/internal/tracker"
)

type App struct {
	Bot    *bot.Bot
	Health *health.Server
}

func provideToken(cfg config.Config) discord.Token {
	return discord.Token(cfg.DiscordToken)
}

func providePath(cfg config.Config) sqlite.Path {
	return sqlite.Path(cfg.SQLitePath)
}

func provideAddr(cfg config.Config) health.Addr {
	return health.Addr(cfg.HTTPAddr)
}

func provideHandlerTimeout(cfg config.Config) bot.HandlerTimeout {
	return bot.HandlerTimeout(cfg.HandlerTimeout)
}

func provideColors(cfg config.Config) roles.Colors {
	return roles.Colors{
		Current: cfg.CurrentRoleColor,
		Peak:    cfg.PeakRoleColor,
	}
}

func provideTrackerConfig(cfg config.Config) tracker.Config {
	return tracker.Config{
		BaseURL:    cfg.TrackerBaseURL,
		APIKey:     cfg.TrackerAPIKey,
		Timeout:    cfg.TrackerTimeout,
		MaxRetries: cfg.TrackerMaxRetries,
	}
}

// provideTracer uses the global tracer provider, which records nothing
// until one is installed.
func provideTracer() trace.Tracer {
	return otel.Tracer("github.com/connorkuehl/valrank")
}
