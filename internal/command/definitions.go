package command

import "github.com/bwmarrin/discordgo"

// Definitions is the slash command schema published to Discord.
func Definitions() []*discordgo.ApplicationCommand {
	dmPermission := false

	return []*discordgo.ApplicationCommand{
		{
			Name:         Register,
			Description:  "Register your Riot ID to get your rank role.",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        OptionRiotID,
					Description: "Your Riot ID (e.g., MazeyJessica#EU)",
					Required:    true,
				},
			},
		},
		{
			Name:         Refresh,
			Description:  "Update your rank roles using your registered Riot ID.",
			DMPermission: &dmPermission,
		},
	}
}
