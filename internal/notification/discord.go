package notification

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/chelstats/chelstats/internal/usecase"
)

// discordSession is the slice of the discordgo session the announcer uses,
// kept as an interface so tests can stub the network.
type discordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ discordSession = (*discordgo.Session)(nil)

var _ usecase.ImportAnnouncer = (*DiscordAnnouncer)(nil)

// DiscordAnnouncer posts final scores to a league channel after imports.
type DiscordAnnouncer struct {
	session   discordSession
	channelID string
}

// NewDiscordAnnouncer opens a bot session for the given token. The session is
// used for plain channel messages only, so no gateway connection is opened.
func NewDiscordAnnouncer(botToken, channelID string) (*DiscordAnnouncer, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &DiscordAnnouncer{session: session, channelID: channelID}, nil
}

func (a *DiscordAnnouncer) AnnounceImport(ctx context.Context, item usecase.Announcement) error {
	_, err := a.session.ChannelMessageSend(a.channelID, formatAnnouncement(item), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send import announcement: %w", err)
	}
	return nil
}

func formatAnnouncement(item usecase.Announcement) string {
	suffix := ""
	if item.IsCombined {
		suffix = " (combined totals)"
	}
	return fmt.Sprintf("🏒 Final: %s %d - %d %s%s",
		item.HomeTeam, item.HomeScore, item.AwayScore, item.AwayTeam, suffix)
}
