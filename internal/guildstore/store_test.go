package guildstore

import (
	"testing"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/classify"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/ganttify"
)

const guild = "guild-1"

func TestAddBucketIsIdempotent(t *testing.T) {
	s := New()
	s.AddBucket(guild, classify.SevenDays)
	s.AddBucket(guild, classify.SevenDays)

	cfg := s.Snapshot(guild)
	if len(cfg.Buckets) != 1 || !cfg.Buckets[classify.SevenDays] {
		t.Fatalf("want exactly {7 days}, got %v", cfg.Buckets)
	}

	s.RemoveBucket(guild, classify.SevenDays)
	s.RemoveBucket(guild, classify.SevenDays)
	if len(s.Snapshot(guild).Buckets) != 0 {
		t.Fatal("remove should leave no buckets")
	}
}

func TestToggleBucket(t *testing.T) {
	s := New()
	if on := s.ToggleBucket(guild, classify.OneDay); !on {
		t.Fatal("first toggle should select the bucket")
	}
	if on := s.ToggleBucket(guild, classify.OneDay); on {
		t.Fatal("second toggle should deselect the bucket")
	}
	if len(s.Snapshot(guild).Buckets) != 0 {
		t.Fatal("bucket still selected after toggling off")
	}
}

func TestSubscribeProjectDedupesByID(t *testing.T) {
	s := New()
	s.SubscribeProject(guild, ganttify.Project{ID: "p1", Name: "Ganttify", TaskIDs: []string{"a"}})
	// same project fetched again, fresher snapshot
	s.SubscribeProject(guild, ganttify.Project{ID: "p1", Name: "Ganttify", TaskIDs: []string{"a", "b"}})

	cfg := s.Snapshot(guild)
	if len(cfg.Projects) != 1 {
		t.Fatalf("want one subscription, got %d", len(cfg.Projects))
	}
	if len(cfg.Projects[0].TaskIDs) != 2 {
		t.Fatal("re-subscribing should replace the stored snapshot")
	}
}

func TestUnsubscribeProject(t *testing.T) {
	s := New()
	s.SubscribeProject(guild, ganttify.Project{ID: "p1"})
	s.SubscribeProject(guild, ganttify.Project{ID: "p2"})

	s.UnsubscribeProject(guild, "p1")
	s.UnsubscribeProject(guild, "missing")
	s.UnsubscribeProject("other-guild", "p2")

	cfg := s.Snapshot(guild)
	if len(cfg.Projects) != 1 || cfg.Projects[0].ID != "p2" {
		t.Fatalf("want only p2 left, got %v", cfg.Projects)
	}
}

func TestRemoveGuildDropsEverything(t *testing.T) {
	s := New()
	s.SetChannel(guild, "chan-1")
	s.AddBucket(guild, classify.ThreeDays)
	s.SubscribeProject(guild, ganttify.Project{ID: "p1"})

	s.RemoveGuild(guild)

	cfg := s.Snapshot(guild)
	if cfg.ChannelID != "" || len(cfg.Buckets) != 0 || len(cfg.Projects) != 0 {
		t.Fatalf("guild config survived removal: %+v", cfg)
	}
	if len(s.GuildIDs()) != 0 {
		t.Fatal("removed guild still listed")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.SetChannel(guild, "chan-1")
	s.AddBucket(guild, classify.SevenDays)

	cfg := s.Snapshot(guild)
	cfg.Buckets[classify.OneDay] = true

	if s.Snapshot(guild).Buckets[classify.OneDay] {
		t.Fatal("mutating a snapshot leaked into the store")
	}
}

func TestConfigured(t *testing.T) {
	s := New()
	if s.Snapshot(guild).Configured() {
		t.Fatal("empty guild should not be configured")
	}
	s.SetChannel(guild, "chan-1")
	if s.Snapshot(guild).Configured() {
		t.Fatal("guild with no buckets should not be configured")
	}
	s.AddBucket(guild, classify.SevenDays)
	if !s.Snapshot(guild).Configured() {
		t.Fatal("guild with channel and bucket should be configured")
	}
}
