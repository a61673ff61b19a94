package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/ganttify"
)

// Slash command definitions, registered per guild on join.
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "ping",
		Description: "Replies with Pong!",
	},
	{
		Name:        "addproject",
		Description: "Loads project for bot",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "invite_link",
				Description: "The project invite link",
				Required:    true,
			},
		},
	},
	{
		Name:        "print",
		Description: "prints projects",
	},
	{
		Name:        "remindertime",
		Description: "Sets how long before a task you would like to be reminded",
	},
	{
		Name:        "setchannel",
		Description: "Sets the bot's main messaging channel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Select the channel for bot messages",
				Required:    true,
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildText,
					discordgo.ChannelTypeGuildNews,
				},
			},
		},
	},
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleBucketToggle(s, i)
	}
}

func (b *Bot) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "ping":
		b.reply(s, i, "Pong!")
	case "addproject":
		b.handleAddProject(s, i)
	case "print":
		b.handlePrint(s, i)
	case "remindertime":
		b.handleReminderTime(s, i)
	case "setchannel":
		b.handleSetChannel(s, i)
	}
}

func (b *Bot) handleAddProject(s *discordgo.Session, i *discordgo.InteractionCreate) {
	inviteLink := i.ApplicationCommandData().Options[0].StringValue()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	project, err := b.api.ResolveInvite(ctx, inviteLink)
	switch {
	case errors.Is(err, ganttify.ErrInvalidInvite):
		b.reply(s, i, "That invite link does not look valid, please check it and try again.")
		return
	case errors.Is(err, ganttify.ErrProjectNotFound):
		b.reply(s, i, "No project was found for that invite link.")
		return
	case err != nil:
		b.logger.Error("resolving invite failed",
			slog.String("guild", i.GuildID),
			slog.String("error", err.Error()))
		b.reply(s, i, "Something went wrong reaching Ganttify, please try again later.")
		return
	}

	b.store.SubscribeProject(i.GuildID, project)
	b.reply(s, i, "Thank you, your project has been added!")
}

func (b *Bot) handlePrint(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg := b.store.Snapshot(i.GuildID)
	if len(cfg.Projects) == 0 {
		b.reply(s, i, "No projects added yet. Use /addproject to add one.")
		return
	}
	names := make([]string, 0, len(cfg.Projects))
	for _, p := range cfg.Projects {
		names = append(names, p.Name)
	}
	b.reply(s, i, "Projects:\n"+strings.Join(names, "\n"))
}

func (b *Bot) handleSetChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channel := i.ApplicationCommandData().Options[0].ChannelValue(s)
	if channel == nil || (channel.Type != discordgo.ChannelTypeGuildText && channel.Type != discordgo.ChannelTypeGuildNews) {
		b.reply(s, i, "Please select a valid text or news channel.")
		return
	}

	b.store.SetChannel(i.GuildID, channel.ID)
	b.reply(s, i, "Channel Selected!")
}

func (b *Bot) reply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		b.logger.Error("cannot respond to interaction",
			slog.String("guild", i.GuildID),
			slog.String("error", err.Error()))
	}
}
