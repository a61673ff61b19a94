// Package config reads the bot's environment configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the process needs from the environment.
type Config struct {
	// DiscordToken authenticates the gateway session. Required.
	DiscordToken string
	// ClientID is the bot's application id, used to register slash
	// commands. Required.
	ClientID string
	// APIBaseURL is where the Ganttify HTTP API lives.
	APIBaseURL string
	// Port is the keepalive server's listen port.
	Port string
	// ReminderHourUTC is the hour of day (UTC) the reminder scan runs.
	ReminderHourUTC int
}

// FromEnv reads configuration from the environment. Missing required keys
// make startup fail; everything else has a default.
func FromEnv() (Config, error) {
	cfg := Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		ClientID:     os.Getenv("CLIENT_ID"),
		APIBaseURL:   envOrDefault("API_BASE_URL", "http://localhost:3000/"),
		Port:         envOrDefault("PORT", "3000"),
	}

	if cfg.DiscordToken == "" {
		return Config{}, fmt.Errorf("DISCORD_TOKEN is not set")
	}
	if cfg.ClientID == "" {
		return Config{}, fmt.Errorf("CLIENT_ID is not set")
	}

	hourRaw := envOrDefault("REMINDER_HOUR_UTC", "10")
	hour, err := strconv.Atoi(hourRaw)
	if err != nil || hour < 0 || hour > 23 {
		return Config{}, fmt.Errorf("REMINDER_HOUR_UTC %q is not an hour (0-23)", hourRaw)
	}
	cfg.ReminderHourUTC = hour

	return cfg, nil
}

// envOrDefault returns the environment variable value or fallback when it is
// empty.
func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
