package remind

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/classify"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/ganttify"
)

const embedColor = 0xFDDC87

// TaskLine is one task entry inside a reminder section.
type TaskLine struct {
	Title       string
	Description string
	DueSuffix   string
}

// Section groups the tasks of one lead-time bucket.
type Section struct {
	Heading string
	Lines   []TaskLine
}

// Message is a fully composed reminder for one project. It is built in full
// and only converted to the transport's embed format at the send boundary.
type Message struct {
	ProjectName string
	Timestamp   time.Time
	Sections    []Section
}

// Empty reports whether the message has nothing to say. Empty messages are
// never sent.
func (m Message) Empty() bool {
	return len(m.Sections) == 0
}

// Compose builds the reminder message for one project from classified tasks.
// Buckets are walked in display order (7, 5, 3, 1); buckets with no tasks
// produce no section at all.
func Compose(project ganttify.Project, buckets map[classify.Bucket][]ganttify.Task, now time.Time) Message {
	msg := Message{ProjectName: project.Name, Timestamp: now}
	for _, b := range classify.All {
		tasks := buckets[b]
		if len(tasks) == 0 {
			continue
		}
		section := Section{Heading: b.Heading()}
		for _, task := range tasks {
			desc := task.Description
			if desc == "" {
				desc = "No Task Description"
			}
			section.Lines = append(section.Lines, TaskLine{
				Title:       task.Title,
				Description: desc,
				DueSuffix:   b.DueSuffix(),
			})
		}
		msg.Sections = append(msg.Sections, section)
	}
	return msg
}

// ToEmbed serializes the message into a Discord embed.
func (m Message) ToEmbed() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: "# 📢 **Daily Reminder**\n__## Project: " + m.ProjectName + "__",
		Color:       embedColor,
		Timestamp:   m.Timestamp.UTC().Format(time.RFC3339),
	}
	for _, section := range m.Sections {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "__**" + section.Heading + "**__",
			Value: " ",
		})
		for _, line := range section.Lines {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Task: " + line.Title,
				Value: line.Description + "\n" + line.DueSuffix,
			})
		}
	}
	return embed
}
