package bot

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

const welcomeText = "Thank you for using the Ganttify Discord Companion Bot, " +
	"please read the following to make sure you get the best out of our Discord Bot.\n\n" +
	"This bot requires you to set the channel which you would like to receive messages in. " +
	"You can set the preferred channel by using the /setchannel command.\n\n" +
	"Next, this bot allows you to set the preferred amount of time for upcoming task due dates " +
	"which the bot will remind you of by using the /remindertime command.\n\n" +
	"Lastly, in order to be reminded about upcoming due dates for tasks, you must add which " +
	"projects you wish to be reminded about. In order to do this, you can use the /addproject " +
	"command. This command requires you to provide the bot with the invitation link for the " +
	"specific project. This link can be found in the invite members page within said project.\n" +
	"Thank you,\n\t-Ganttify Team"

// welcomeEmbed is the message posted when the bot joins a guild.
func welcomeEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Hello!",
		Description: welcomeText,
		Color:       0xFDDC87,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Have a great day!"},
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}
