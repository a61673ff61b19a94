// Package bot is the Discord-facing layer: it owns the gateway session,
// registers the slash commands, and translates interactions into guild
// configuration changes. The reminder logic itself lives in internal/remind.
package bot

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/ganttify"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/guildstore"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/remind"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/schedule"
)

// Bot ties the discordgo session to the configuration store and the
// reminder dispatcher.
type Bot struct {
	session  *discordgo.Session
	clientID string
	store    *guildstore.Store
	api      *ganttify.Client
	logger   *slog.Logger

	// known tracks guilds this session has already seen. The gateway
	// replays GuildCreate for every guild on each identify, so a
	// GuildCreate alone does not mean the bot was just added.
	mu    sync.Mutex
	known map[string]bool
}

// New builds the bot around an authenticated (not yet opened) session.
func New(token, clientID string, store *guildstore.Store, api *ganttify.Client, logger *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	if logger == nil {
		logger = slog.Default()
	}

	return &Bot{
		session:  session,
		clientID: clientID,
		store:    store,
		api:      api,
		logger:   logger,
		known:    make(map[string]bool),
	}, nil
}

// SendEmbed posts an embed to a channel. This is the dispatcher's Sender.
func (b *Bot) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := b.session.ChannelMessageSendEmbed(channelID, embed)
	return err
}

// Run opens the session, wires the handlers and the daily reminder trigger,
// then blocks until the process is told to stop.
func (b *Bot) Run(reminderHourUTC int) error {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		// Ready lists every guild the bot is already in; the gateway
		// then streams a GuildCreate for each of them. Marking them
		// here keeps that flood from looking like fresh joins.
		for _, g := range r.Guilds {
			b.markKnown(g.ID)
		}
		b.logger.Info("logged in", slog.String("user", r.User.Username))
	})
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handleGuildCreate)
	b.session.AddHandler(b.handleGuildDelete)

	if err := b.session.Open(); err != nil {
		return err
	}
	defer b.session.Close()

	dispatcher := remind.NewDispatcher(b.store, b.api, b, b.logger)
	daily, err := schedule.New(reminderHourUTC, func() {
		dispatcher.RunTick(context.Background())
	}, b.logger)
	if err != nil {
		return err
	}
	daily.Start()
	defer daily.Stop()

	b.logger.Info("bot running")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	b.logger.Info("shutting down")
	return nil
}

// registerCommands refreshes the slash commands for one guild. Commands are
// registered per guild on join so they show up without the global
// propagation delay.
func (b *Bot) registerCommands(guildID string) {
	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.clientID, guildID, cmd); err != nil {
			b.logger.Error("cannot register command",
				slog.String("command", cmd.Name),
				slog.String("guild", guildID),
				slog.String("error", err.Error()))
		}
	}
}

// markKnown records a guild id and reports whether it was new.
func (b *Bot) markKnown(guildID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.known[guildID] {
		return false
	}
	b.known[guildID] = true
	return true
}

func (b *Bot) forgetGuild(guildID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.known, guildID)
}

// recordGuild seeds the store for a guild the gateway delivered and reports
// whether this is a genuine join (welcome message, command registration)
// rather than the identify replay. On a replay the channel is only seeded
// when none is stored, so a /setchannel choice survives reconnects.
func (b *Bot) recordGuild(guildID, channelID string) bool {
	if b.markKnown(guildID) {
		if channelID != "" {
			b.store.SetChannel(guildID, channelID)
		}
		return true
	}
	if channelID != "" && b.store.Snapshot(guildID).ChannelID == "" {
		b.store.SetChannel(guildID, channelID)
	}
	return false
}

// pickWelcomeChannel chooses where guild messages go by default: the system
// channel when it is set, otherwise the first text or news channel the bot
// can send to. Empty when the guild has no usable channel.
func pickWelcomeChannel(g *discordgo.Guild, canSend func(channelID string) bool) string {
	if g.SystemChannelID != "" {
		return g.SystemChannelID
	}
	for _, ch := range g.Channels {
		if ch.Type != discordgo.ChannelTypeGuildText && ch.Type != discordgo.ChannelTypeGuildNews {
			continue
		}
		if canSend(ch.ID) {
			return ch.ID
		}
	}
	return ""
}

func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	channelID := pickWelcomeChannel(g.Guild, func(channelID string) bool {
		perms, err := s.UserChannelPermissions(s.State.User.ID, channelID)
		return err == nil && perms&discordgo.PermissionSendMessages != 0
	})

	if !b.recordGuild(g.ID, channelID) {
		return
	}

	b.registerCommands(g.ID)

	if channelID == "" {
		b.logger.Warn("joined guild with no usable text channel", slog.String("guild", g.ID))
		return
	}
	if err := b.SendEmbed(channelID, welcomeEmbed()); err != nil {
		b.logger.Error("cannot send welcome message",
			slog.String("guild", g.ID),
			slog.String("error", err.Error()))
	}
}

func (b *Bot) handleGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	// Unavailable means an outage, not a removal; keep the config for those.
	if g.Unavailable {
		return
	}
	b.store.RemoveGuild(g.ID)
	b.forgetGuild(g.ID)
	b.logger.Info("removed from guild, cleared stored configuration", slog.String("guild", g.ID))
}
