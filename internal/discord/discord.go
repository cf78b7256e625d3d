package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger().WithFields(logrus.Fields{
	"component": "discord",
})

type Token string

type Dialer struct {
	token Token
}

func NewDialer(token Token) *Dialer {
	return &Dialer{token: token}
}

func (d *Dialer) Dial() (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + string(d.token))
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers
	err = session.Open()
	if err != nil {
		return nil, err
	}

	return session, nil
}

// deliverTimeout is how long an interaction waits for a free slot in the
// stream. Discord expects a response within three seconds, so anything
// older can't be answered anyway.
const deliverTimeout = 3 * time.Second

type Session struct {
	s            *discordgo.Session
	interactions chan Interaction
	done         chan struct{}
	deliverWait  time.Duration
}

func NewSession(dialer *Dialer) (*Session, func(), error) {
	s, err := dialer.Dial()
	if err != nil {
		return nil, nil, err
	}

	session := &Session{
		s:            s,
		interactions: make(chan Interaction, 16),
		done:         make(chan struct{}),
		deliverWait:  deliverTimeout,
	}

	detach := s.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}

		session.deliver(fromInteraction(i.Interaction))
	})

	log.WithField("user", s.State.User.String()).Info("connected to Discord")

	return session, func() {
		close(session.done)
		detach()
		_ = s.Close()
	}, nil
}

// deliver hands an interaction to the stream. It gives up once the
// session is closed or nobody has read the stream for deliverWait.
func (s *Session) deliver(in Interaction) {
	timer := time.NewTimer(s.deliverWait)
	defer timer.Stop()

	ll := log.WithFields(logrus.Fields{
		"interaction_id": in.ID,
		"command":        in.Command,
	})

	select {
	case s.interactions <- in:
	case <-s.done:
		ll.Warn("dropped interaction: session closed")
	case <-timer.C:
		ll.Warn("dropped interaction: nobody is listening")
	}
}

// Interactions streams slash command invocations.
func (s *Session) Interactions() <-chan Interaction {
	return s.interactions
}

// Reply sends an ephemeral response that only the invoking user can see.
func (s *Session) Reply(ctx context.Context, i Interaction, content string) error {
	return s.s.InteractionRespond(i.raw(), &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
}

// Defer acknowledges the interaction with an ephemeral "thinking" placeholder
// to be replaced later by EditReply.
func (s *Session) Defer(ctx context.Context, i Interaction) error {
	return s.s.InteractionRespond(i.raw(), &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
}

func (s *Session) EditReply(ctx context.Context, i Interaction, content string) error {
	_, err := s.s.InteractionResponseEdit(i.raw(), &discordgo.WebhookEdit{
		Content: &content,
	}, discordgo.WithContext(ctx))
	return err
}

func (s *Session) HeartbeatLatency() time.Duration {
	return s.s.HeartbeatLatency()
}

type Interaction struct {
	ID      string
	AppID   string
	Token   string
	GuildID string
	UserID  string
	User    string
	Command string
	Options map[string]string
}

func (i Interaction) raw() *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:      i.ID,
		AppID:   i.AppID,
		Token:   i.Token,
		GuildID: i.GuildID,
		Type:    discordgo.InteractionApplicationCommand,
	}
}

func fromInteraction(i *discordgo.Interaction) Interaction {
	data := i.ApplicationCommandData()

	options := make(map[string]string)
	for _, opt := range data.Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			options[opt.Name] = opt.StringValue()
		}
	}

	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	}

	in := Interaction{
		ID:      i.ID,
		AppID:   i.AppID,
		Token:   i.Token,
		GuildID: i.GuildID,
		Command: data.Name,
		Options: options,
	}
	if user != nil {
		in.UserID = user.ID
		in.User = user.String()
	}

	return in
}
