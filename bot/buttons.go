package bot

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/classify"
)

// bucketRows builds one button row per reminder lead time, with a checkbox
// prefix showing the guild's current selection. The button customID is the
// bucket label itself, which is what the toggle handler gets back.
func bucketRows(selected map[classify.Bucket]bool) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, len(classify.All))
	for _, bucket := range classify.All {
		checkbox := "⬜️"
		if selected[bucket] {
			checkbox = "☑️"
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    checkbox + bucket.Label(),
					Style:    discordgo.PrimaryButton,
					CustomID: bucket.Label(),
				},
			},
		})
	}
	return rows
}

// selectionSummary renders the guild's current lead-time choices for the
// toggle message, in display order.
func selectionSummary(selected map[classify.Bucket]bool) string {
	var labels []string
	for _, bucket := range classify.All {
		if selected[bucket] {
			labels = append(labels, bucket.Label())
		}
	}
	if len(labels) == 0 {
		return "None"
	}
	return strings.Join(labels, ", ")
}

// handleReminderTime opens the lead-time toggle UI.
func (b *Bot) handleReminderTime(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg := b.store.Snapshot(i.GuildID)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    "Select your reminder options:",
			Components: bucketRows(cfg.Buckets),
		},
	})
	if err != nil {
		b.logger.Error("cannot open remindertime menu",
			slog.String("guild", i.GuildID),
			slog.String("error", err.Error()))
	}
}

// handleBucketToggle flips the pressed bucket and updates the menu in place.
func (b *Bot) handleBucketToggle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	bucket, ok := classify.FromLabel(i.MessageComponentData().CustomID)
	if !ok {
		return
	}

	b.store.ToggleBucket(i.GuildID, bucket)
	cfg := b.store.Snapshot(i.GuildID)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "Your current selections: " + selectionSummary(cfg.Buckets),
			Components: bucketRows(cfg.Buckets),
		},
	})
	if err != nil {
		b.logger.Error("cannot update remindertime menu",
			slog.String("guild", i.GuildID),
			slog.String("error", err.Error()))
	}
}
