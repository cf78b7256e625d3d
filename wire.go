//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/connorkuehl/valrank/internal/bot"
	"github.com/connorkuehl/valrank/internal/command"
	"github.com/connorkuehl/valrank/internal/config"
	"github.com/connorkuehl/valrank/internal/database/sqlite"
	"github.com/connorkuehl/valrank/internal/discord"
	"github.com/connorkuehl/valrank/internal/health"
	"github.com/connorkuehl/valrank/internal/metrics"
	"github.com/connorkuehl/valrank/internal/roles"
	"github.com/connorkuehl/valrank/internal/tracker"
)

var DiscordSet = wire.NewSet(
	discord.NewSession,
	discord.NewDialer,
	provideToken,
	wire.Bind(new(bot.Session), new(*discord.Session)),
	wire.Bind(new(roles.Directory), new(*discord.Session)),
	wire.Bind(new(health.Heartbeat), new(*discord.Session)),
)

var SQLiteSet = wire.NewSet(
	sqlite.New,
	providePath,
	wire.Bind(new(bot.DB), new(*sqlite.DB)),
)

var RankSet = wire.NewSet(
	tracker.New,
	provideTrackerConfig,
	wire.Bind(new(bot.RankFetcher), new(*tracker.Client)),
	roles.NewReconciler,
	provideColors,
	wire.Bind(new(bot.Reconciler), new(*roles.Reconciler)),
)

func InitializeApp(cfg config.Config) (*App, func(), error) {
	wire.Build(
		bot.New,
		provideHandlerTimeout,
		command.NewRouter,
		wire.Bind(new(bot.CommandRouter), new(*command.Router)),
		DiscordSet,
		SQLiteSet,
		RankSet,
		metrics.New,
		provideTracer,
		health.NewServer,
		provideAddr,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
