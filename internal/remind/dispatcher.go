// Package remind runs the scheduled reminder scan: for every configured
// guild, fetch each subscribed project's tasks, bucket them by lead time,
// and post one message per project to the guild's channel. Failures are
// contained at the guild/project boundary so one broken project never
// silences the rest.
package remind

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/classify"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/ganttify"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/guildstore"
)

// Resolver fetches task records for a project's task ids.
type Resolver interface {
	FetchTasks(ctx context.Context, taskIDs []string) ([]ganttify.Task, error)
}

// Sender posts an embed to a channel. Implemented by the discordgo session.
type Sender interface {
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
}

// guilds processed concurrently per tick; keeps us friendly with the API
// and Discord rate limits.
const maxConcurrentGuilds = 4

// per-project budget for the task fetch.
const fetchTimeout = 15 * time.Second

// Dispatcher orchestrates one reminder tick across all known guilds.
type Dispatcher struct {
	store    *guildstore.Store
	resolver Resolver
	sender   Sender
	logger   *slog.Logger
	now      func() time.Time
}

// NewDispatcher wires a dispatcher. now defaults to time.Now and exists so
// tests can pin the reference date.
func NewDispatcher(store *guildstore.Store, resolver Resolver, sender Sender, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		store:    store,
		resolver: resolver,
		sender:   sender,
		logger:   logger,
		now:      time.Now,
	}
}

// SetNow overrides the clock, for tests.
func (d *Dispatcher) SetNow(now func() time.Time) { d.now = now }

// RunTick processes every known guild once. Guilds run concurrently up to a
// bounded worker count; a guild that fails only affects itself.
func (d *Dispatcher) RunTick(ctx context.Context) {
	guildIDs := d.store.GuildIDs()
	if len(guildIDs) == 0 {
		return
	}
	d.logger.Info("reminder tick started", slog.Int("guilds", len(guildIDs)))

	sem := make(chan struct{}, maxConcurrentGuilds)
	var wg sync.WaitGroup
	for _, guildID := range guildIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func(guildID string) {
			defer wg.Done()
			defer func() { <-sem }()
			d.processGuild(ctx, guildID)
		}(guildID)
	}
	wg.Wait()
	d.logger.Info("reminder tick finished")
}

// processGuild handles one guild: skip when unconfigured, otherwise walk its
// projects sequentially so sends to the guild channel never interleave.
func (d *Dispatcher) processGuild(ctx context.Context, guildID string) {
	cfg := d.store.Snapshot(guildID)
	if !cfg.Configured() {
		d.logger.Debug("guild not configured, skipping", slog.String("guild", guildID))
		return
	}

	now := d.now()
	for _, project := range cfg.Projects {
		if ctx.Err() != nil {
			return
		}
		if !d.processProject(ctx, guildID, cfg, project, now) {
			// channel gone or permissions revoked; further sends to it
			// this tick would fail the same way
			return
		}
	}
}

// processProject returns false only when the send itself failed, which tells
// the guild loop to stop posting to that channel for the rest of the tick.
func (d *Dispatcher) processProject(ctx context.Context, guildID string, cfg guildstore.Config, project ganttify.Project, now time.Time) bool {
	logger := d.logger.With(slog.String("guild", guildID), slog.String("project", project.ID))

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	tasks, err := d.resolver.FetchTasks(fetchCtx, project.TaskIDs)
	cancel()
	if err != nil {
		logger.Error("fetching tasks failed, skipping project", slog.String("error", err.Error()))
		return true
	}

	buckets, skipped := classify.Classify(now, tasks, cfg.Buckets)
	for _, s := range skipped {
		logger.Warn("task excluded from reminders", slog.String("task", s.TaskID), slog.String("reason", s.Reason))
	}

	msg := Compose(project, buckets, now)
	if msg.Empty() {
		return true
	}

	if err := d.sender.SendEmbed(cfg.ChannelID, msg.ToEmbed()); err != nil {
		logger.Error("sending reminder failed", slog.String("channel", cfg.ChannelID), slog.String("error", err.Error()))
		return false
	}
	return true
}
