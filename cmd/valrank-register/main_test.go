package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	token    string
	appID    string
	guildID  string
	commands []*discordgo.ApplicationCommand
	err      error
}

func (p *fakePublisher) ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	p.appID = appID
	p.guildID = guildID
	p.commands = commands
	return commands, p.err
}

func (p *fakePublisher) dial(token string) (publisher, error) {
	p.token = token
	return p, nil
}

func TestPublish(t *testing.T) {
	t.Run("globally", func(t *testing.T) {
		var out bytes.Buffer
		p := &fakePublisher{}

		err := newApp(p.dial, &out).Run([]string{"valrank-register", "publish", "--token", "t0k3n", "--client-id", "app-1"})
		require.NoError(t, err)

		assert.Equal(t, "t0k3n", p.token)
		assert.Equal(t, "app-1", p.appID)
		assert.Empty(t, p.guildID)
		require.Len(t, p.commands, 2)
		assert.Equal(t, "register", p.commands[0].Name)
		assert.Contains(t, out.String(), "published /register globally")
	})

	t.Run("to a guild", func(t *testing.T) {
		var out bytes.Buffer
		p := &fakePublisher{}

		err := newApp(p.dial, &out).Run([]string{"valrank-register", "publish", "--token", "t", "--client-id", "a", "--guild", "g-1"})
		require.NoError(t, err)

		assert.Equal(t, "g-1", p.guildID)
		assert.Contains(t, out.String(), "published /refresh to guild g-1")
	})

	t.Run("reads credentials from the environment", func(t *testing.T) {
		t.Setenv("VALRANK_DISCORD_TOKEN", "env-token")
		t.Setenv("VALRANK_CLIENT_ID", "env-app")

		var out bytes.Buffer
		p := &fakePublisher{}

		err := newApp(p.dial, &out).Run([]string{"valrank-register", "publish"})
		require.NoError(t, err)

		assert.Equal(t, "env-token", p.token)
		assert.Equal(t, "env-app", p.appID)
	})

	t.Run("reports failures", func(t *testing.T) {
		var out bytes.Buffer
		boom := errors.New("401 Unauthorized")
		p := &fakePublisher{err: boom}

		err := newApp(p.dial, &out).Run([]string{"valrank-register", "publish", "--token", "t", "--client-id", "a"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestShow(t *testing.T) {
	var out bytes.Buffer

	err := newApp(nil, &out).Run([]string{"valrank-register", "show"})
	require.NoError(t, err)

	var commands []struct {
		Name    string `json:"name"`
		Options []struct {
			Name     string `json:"name"`
			Required bool   `json:"required"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &commands))

	require.Len(t, commands, 2)
	assert.Equal(t, "register", commands[0].Name)
	require.Len(t, commands[0].Options, 1)
	assert.Equal(t, "riotid", commands[0].Options[0].Name)
	assert.True(t, commands[0].Options[0].Required)
}
