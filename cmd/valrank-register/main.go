// Command valrank-register publishes the bot's slash commands to Discord.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/connorkuehl/valrank/internal/command"
)

type publisher interface {
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

type dialFunc func(token string) (publisher, error)

func dialDiscord(token string) (publisher, error) {
	return discordgo.New("Bot " + token)
}

func main() {
	if err := newApp(dialDiscord, os.Stdout).Run(os.Args); err != nil {
		log.WithError(err).Fatal("valrank-register")
	}
}

func newApp(dial dialFunc, out io.Writer) *cli.App {
	return &cli.App{
		Name:  "valrank-register",
		Usage: "manage the bot's slash commands",
		Commands: []*cli.Command{
			newPublishCommand(dial, out),
			newShowCommand(out),
		},
	}
}

func newPublishCommand(dial dialFunc, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "publish",
		Usage: "replace the registered slash commands with the current ones",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Usage:    "bot token",
				EnvVars:  []string{"VALRANK_DISCORD_TOKEN"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "client-id",
				Usage:    "application ID",
				EnvVars:  []string{"VALRANK_CLIENT_ID"},
				Required: true,
			},
			&cli.StringFlag{
				Name:  "guild",
				Usage: "publish to a single guild instead of globally",
			},
		},
		Action: func(c *cli.Context) error {
			p, err := dial(c.String("token"))
			if err != nil {
				return fmt.Errorf("discord: %w", err)
			}

			guildID := c.String("guild")
			published, err := p.ApplicationCommandBulkOverwrite(c.String("client-id"), guildID, command.Definitions(), discordgo.WithContext(c.Context))
			if err != nil {
				return fmt.Errorf("publish commands: %w", err)
			}

			scope := "globally"
			if guildID != "" {
				scope = "to guild " + guildID
			}
			for _, cmd := range published {
				fmt.Fprintf(out, "published /%s %s\n", cmd.Name, scope)
			}
			return nil
		},
	}
}

func newShowCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "print the slash command schema as JSON",
		Action: func(c *cli.Context) error {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(command.Definitions())
		},
	}
}
