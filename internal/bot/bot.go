package bot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/connorkuehl/valrank/internal/command"
	"github.com/connorkuehl/valrank/internal/discord"
	"github.com/connorkuehl/valrank/internal/metrics"
	"github.com/connorkuehl/valrank/internal/roles"
	"github.com/connorkuehl/valrank/internal/valrank"
)

var log = logrus.StandardLogger().WithFields(logrus.Fields{
	"component": "bot",
})

type Session interface {
	Interactions() <-chan discord.Interaction
	Reply(ctx context.Context, i discord.Interaction, content string) error
	Defer(ctx context.Context, i discord.Interaction) error
	EditReply(ctx context.Context, i discord.Interaction, content string) error
}

//go:generate mockery --name RankFetcher --case underscore --with-expecter --testonly --inpackage
type RankFetcher interface {
	FetchRank(ctx context.Context, player valrank.PlayerID) (valrank.RankResult, error)
}

//go:generate mockery --name Reconciler --case underscore --with-expecter --testonly --inpackage
type Reconciler interface {
	Reconcile(ctx context.Context, guildID, userID string, rank valrank.RankResult) (roles.Outcome, error)
}

type DB interface {
	Link(ctx context.Context, guildID, userID string) (valrank.Link, error)
	PutLink(ctx context.Context, link valrank.Link) error
}

type CommandRouter interface {
	Route(name string) command.ArgParser
}

// HandlerTimeout bounds the handling of a single interaction. Zero means
// no bound.
type HandlerTimeout time.Duration

type Bot struct {
	discord    Session
	fetcher    RankFetcher
	reconciler Reconciler
	db         DB
	router     CommandRouter
	metrics    *metrics.Metrics
	timeout    HandlerTimeout
}

func New(
	discord Session,
	fetcher RankFetcher,
	reconciler Reconciler,
	db DB,
	router CommandRouter,
	m *metrics.Metrics,
	timeout HandlerTimeout,
) *Bot {
	return &Bot{
		discord:    discord,
		fetcher:    fetcher,
		reconciler: reconciler,
		db:         db,
		router:     router,
		metrics:    m,
		timeout:    timeout,
	}
}

// Listen handles interactions until ctx is done or the interaction stream
// closes. Each interaction is handled on its own goroutine, and Listen
// doesn't return until every one of them has finished.
func (b *Bot) Listen(ctx context.Context) error {
	interactions := b.discord.Interactions()

	var wg sync.WaitGroup
	defer wg.Wait()

	log.Info("ready to process Discord interactions")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-interactions:
			if !ok {
				return errors.New("discord interaction stream closed")
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				b.handle(ctx, in)
			}()
		}
	}
}

func (b *Bot) handle(ctx context.Context, in discord.Interaction) {
	// In-flight interactions are allowed to finish when the bot shuts
	// down; the handler timeout still applies.
	ctx = context.WithoutCancel(ctx)
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(b.timeout))
		defer cancel()
	}

	cmd := b.router.Route(in.Command)
	if cmd == nil {
		log.WithFields(logrus.Fields{
			"interaction_id": in.ID,
			"command":        in.Command,
		}).Warn("unknown command")
		return
	}

	if in.GuildID == "" {
		b.handleDirectMessage(ctx, in)
		return
	}

	switch c := cmd.(type) {
	case *command.RegisterArgs:
		b.handleRegister(ctx, c, in)

	case *command.RefreshArgs:
		b.handleRefresh(ctx, c, in)
	}
}
