package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/connorkuehl/valrank/internal/command"
	"github.com/connorkuehl/valrank/internal/database"
	"github.com/connorkuehl/valrank/internal/discord"
	"github.com/connorkuehl/valrank/internal/valrank"
)

const (
	MessageInvalidRiotID = "❌ Please provide a valid Riot ID."
	MessageFetchFailed   = "❌ Could not fetch your rank. Make sure your Riot ID is correct!"
	MessageRolesFailed   = "❌ Could not update your roles. Ask a server admin to check my role permissions."
	MessageNotLinked     = "❌ You haven't linked a Riot ID yet. Use /register first."
	MessageGuildOnly     = "❌ This command only works inside a server."
	MessageInternal      = "❌ Something went wrong. Please try again later."

	messageLinked = "✅ Successfully linked **%s**! You have been assigned the role for **%s** and **%s PEAK**."
)

// Outcomes counted per command.
const (
	outcomeOK          = "ok"
	outcomeInvalid     = "invalid"
	outcomeNotLinked   = "not_linked"
	outcomeDM          = "dm"
	outcomeFetchFailed = "fetch_failed"
	outcomeRolesFailed = "roles_failed"
	outcomeError       = "error"
)

// SuccessMessage is the reply sent once a member's roles are in sync.
func SuccessMessage(player valrank.PlayerID, rank valrank.RankResult) string {
	return fmt.Sprintf(messageLinked, player, rank.Current, rank.Peak)
}

func interactionLogger(in discord.Interaction, handler string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"guild_id":       in.GuildID,
		"user_id":        in.UserID,
		"interaction_id": in.ID,
		"handler":        handler,
	})
}

func (b *Bot) handleDirectMessage(ctx context.Context, in discord.Interaction) {
	ll := interactionLogger(in, "direct_message")

	if err := b.discord.Reply(ctx, in, MessageGuildOnly); err != nil {
		ll.WithError(err).Error("reply")
	}
	b.metrics.CommandHandled(in.Command, outcomeDM)
}

func (b *Bot) handleRegister(ctx context.Context, args *command.RegisterArgs, in discord.Interaction) {
	ll := interactionLogger(in, "register")

	err := args.ParseArg(in.Options)
	switch {
	case errors.Is(err, command.ErrInvalidArgument), errors.Is(err, command.ErrMissingArgument):
		if err := b.discord.Reply(ctx, in, MessageInvalidRiotID); err != nil {
			ll.WithError(err).Error("reply")
		}
		b.metrics.CommandHandled(command.Register, outcomeInvalid)
		return
	}
	if err != nil {
		ll.WithError(err).Error("unexpected error from arg parser")
		b.metrics.CommandHandled(command.Register, outcomeError)
		return
	}

	outcome := b.sync(ctx, ll, in, args.PlayerID)
	b.metrics.CommandHandled(command.Register, outcome)
}

func (b *Bot) handleRefresh(ctx context.Context, args *command.RefreshArgs, in discord.Interaction) {
	ll := interactionLogger(in, "refresh")

	if err := args.ParseArg(in.Options); err != nil {
		ll.WithError(err).Error("unexpected error from arg parser")
		b.metrics.CommandHandled(command.Refresh, outcomeError)
		return
	}

	link, err := b.db.Link(ctx, in.GuildID, in.UserID)
	if errors.Is(err, database.ErrNotFound) {
		if err := b.discord.Reply(ctx, in, MessageNotLinked); err != nil {
			ll.WithError(err).Error("reply")
		}
		b.metrics.CommandHandled(command.Refresh, outcomeNotLinked)
		return
	}
	if err != nil {
		ll.WithError(err).Error("Link")
		if err := b.discord.Reply(ctx, in, MessageInternal); err != nil {
			ll.WithError(err).Error("reply")
		}
		b.metrics.CommandHandled(command.Refresh, outcomeError)
		return
	}

	outcome := b.sync(ctx, ll, in, link.PlayerID)
	b.metrics.CommandHandled(command.Refresh, outcome)
}

// sync fetches the player's rank, reconciles the member's roles and
// remembers the link, reporting the result in a deferred reply.
func (b *Bot) sync(ctx context.Context, ll *logrus.Entry, in discord.Interaction, player valrank.PlayerID) string {
	ll = ll.WithField("player_id", player)

	if err := b.discord.Defer(ctx, in); err != nil {
		ll.WithError(err).Error("defer reply")
		return outcomeError
	}

	rank, err := b.fetcher.FetchRank(ctx, player)
	if err != nil {
		ll.WithError(err).Warn("fetch rank")
		b.edit(ctx, ll, in, MessageFetchFailed)
		return outcomeFetchFailed
	}

	ll = ll.WithFields(logrus.Fields{
		"current": rank.Current,
		"peak":    rank.Peak,
	})

	if _, err := b.reconciler.Reconcile(ctx, in.GuildID, in.UserID, rank); err != nil {
		ll.WithError(err).Error("reconcile roles")
		b.edit(ctx, ll, in, MessageRolesFailed)
		return outcomeRolesFailed
	}

	link := valrank.Link{
		GuildID:  in.GuildID,
		UserID:   in.UserID,
		PlayerID: player,
	}
	if err := b.db.PutLink(ctx, link); err != nil {
		ll.WithError(err).Error("PutLink")
	}

	b.edit(ctx, ll, in, SuccessMessage(player, rank))
	return outcomeOK
}

func (b *Bot) edit(ctx context.Context, ll *logrus.Entry, in discord.Interaction, content string) {
	if err := b.discord.EditReply(ctx, in, content); err != nil {
		ll.WithError(err).Error("edit reply")
	}
}
