// Package guildstore holds each guild's reminder configuration in memory.
// It replaces the bot's former per-concern global maps with a single store
// whose operations are atomic with respect to an in-flight reminder tick.
// Nothing is persisted; the bot starts empty after a restart.
package guildstore

import (
	"sync"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/classify"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/ganttify"
)

// Config is a read-only copy of one guild's configuration.
type Config struct {
	ChannelID string
	Buckets   map[classify.Bucket]bool
	Projects  []ganttify.Project
}

// Configured reports whether the guild can receive reminders at all.
func (c Config) Configured() bool {
	return c.ChannelID != "" && len(c.Buckets) > 0
}

type record struct {
	channelID string
	buckets   map[classify.Bucket]bool
	projects  []ganttify.Project
}

// Store keeps per-guild configuration keyed by guild id.
type Store struct {
	mu     sync.Mutex
	guilds map[string]*record
}

// New returns an empty store.
func New() *Store {
	return &Store{guilds: make(map[string]*record)}
}

// guild returns the record for id, creating it lazily. Callers hold s.mu.
func (s *Store) guild(id string) *record {
	r, ok := s.guilds[id]
	if !ok {
		r = &record{buckets: make(map[classify.Bucket]bool)}
		s.guilds[id] = r
	}
	return r
}

// SetChannel overwrites the guild's notification channel unconditionally.
func (s *Store) SetChannel(guildID, channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guild(guildID).channelID = channelID
}

// AddBucket opts the guild into a lead time. Adding one that is already
// selected is a no-op.
func (s *Store) AddBucket(guildID string, b classify.Bucket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guild(guildID).buckets[b] = true
}

// RemoveBucket opts the guild out of a lead time, no-op if not selected.
func (s *Store) RemoveBucket(guildID string, b classify.Bucket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guild(guildID).buckets, b)
}

// ToggleBucket flips a lead time and reports whether it is now selected.
func (s *Store) ToggleBucket(guildID string, b classify.Bucket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.guild(guildID)
	if r.buckets[b] {
		delete(r.buckets, b)
		return false
	}
	r.buckets[b] = true
	return true
}

// SubscribeProject adds a project snapshot to the guild. Subscriptions are
// unique by project id: re-adding a project replaces the stored snapshot
// instead of producing a duplicate reminder.
func (s *Store) SubscribeProject(guildID string, p ganttify.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.guild(guildID)
	for i, existing := range r.projects {
		if existing.ID == p.ID {
			r.projects[i] = p
			return
		}
	}
	r.projects = append(r.projects, p)
}

// UnsubscribeProject removes a project by id, no-op if absent.
func (s *Store) UnsubscribeProject(guildID, projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.guilds[guildID]
	if !ok {
		return
	}
	for i, p := range r.projects {
		if p.ID == projectID {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return
		}
	}
}

// RemoveGuild drops everything stored for a guild, called when the bot is
// removed from it.
func (s *Store) RemoveGuild(guildID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guilds, guildID)
}

// Snapshot returns a copy of the guild's configuration that is safe to read
// while interaction handlers keep mutating the store.
func (s *Store) Snapshot(guildID string) Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.guilds[guildID]
	if !ok {
		return Config{Buckets: map[classify.Bucket]bool{}}
	}
	cfg := Config{
		ChannelID: r.channelID,
		Buckets:   make(map[classify.Bucket]bool, len(r.buckets)),
		Projects:  make([]ganttify.Project, len(r.projects)),
	}
	for b := range r.buckets {
		cfg.Buckets[b] = true
	}
	copy(cfg.Projects, r.projects)
	return cfg
}

// GuildIDs lists every guild the store knows about, for the dispatcher sweep.
func (s *Store) GuildIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.guilds))
	for id := range s.guilds {
		ids = append(ids, id)
	}
	return ids
}
