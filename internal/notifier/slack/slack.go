package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-tracker/internal/metrics"
	"github.com/mauv0809/padel-tracker/internal/notifier"
	"github.com/mauv0809/padel-tracker/internal/padel"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. Without a token the notifier still
// formats slash command responses but skips posting to the channel.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	n := &Notifier{
		channelID: channelID,
		metrics:   metrics,
	}
	if token != "" {
		n.api = slack.New(token)
	}
	return n
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", nil
	}
	if s.api == nil {
		log.Warn("Slack is not configured. Skipping notification.", "channel", s.channelID)
		return "", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return timestamp, nil
}

// SendRating posts a logged self rating.
func (s *Notifier) SendRating(entry padel.RatingEntry, mode padel.UpsertMode, dryRun bool) (string, error) {
	return s.sendMessage(s.formatRating(entry, mode), dryRun)
}

// SendTournamentResult posts a logged result, or a scheduled tournament when
// the entry has no result yet.
func (s *Notifier) SendTournamentResult(entry padel.TournamentResultEntry, mode padel.UpsertMode, dryRun bool) (string, error) {
	return s.sendMessage(s.formatTournamentResult(entry, mode), dryRun)
}

// FormatRatingSummaryResponse formats a rating summary for a slash command response.
func (s *Notifier) FormatRatingSummaryResponse(player string, window padel.DateWindow, summary *padel.RatingSummary) (any, error) {
	return s.formatRatingSummary(player, window, summary), nil
}

// FormatUpcomingResponse formats the upcoming tournaments of a player for a slash command response.
func (s *Notifier) FormatUpcomingResponse(player string, upcoming []padel.TournamentResultEntry) (any, error) {
	return s.formatUpcoming(player, upcoming), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

func (s *Notifier) formatRating(entry padel.RatingEntry, mode padel.UpsertMode) slack.Message {
	blocks := make([]slack.Block, 0)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "🎾 Rating logged 🎾", true, false)))

	gameType := entry.Type
	if gameType == "" {
		gameType = padel.GameTypePractice
	}
	details := fmt.Sprintf("Player: %s\nDate: %s\nRating: %d/5\nType: %s", entry.Player, displayDate(entry.Date), entry.Rating, gameType)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", details, true, false), nil, nil))

	if mode == padel.ModeReplace {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", "✏️ Replaces the earlier rating for this date", true, false),
		))
	}

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatTournamentResult(entry padel.TournamentResultEntry, mode padel.UpsertMode) slack.Message {
	blocks := make([]slack.Block, 0)

	header := "🏆 Tournament result logged 🏆"
	if !entry.Played() {
		header = "📅 Tournament scheduled 📅"
	}
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", header, true, false)))

	details := fmt.Sprintf("Player: %s\nTournament: %s\nDate: %s", entry.Player, entry.TournamentName, displayDate(entry.Date))
	if entry.Played() {
		rank, err := padel.MapResultToRank(*entry.Result)
		if err == nil {
			details += fmt.Sprintf("\nResult: %s (%d/%d)", *entry.Result, rank, len(padel.Results))
		} else {
			details += fmt.Sprintf("\nResult: %s", *entry.Result)
		}
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", details, true, false), nil, nil))

	if mode == padel.ModeReplace {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", "✏️ Replaces the earlier entry for this date", true, false),
		))
	}

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatRatingSummary(player string, window padel.DateWindow, summary *padel.RatingSummary) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("🎾 Ratings for %s 🎾", player)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	if summary == nil {
		text := fmt.Sprintf("No data available for *%s*.", player)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var text string
	switch summary.Policy {
	case padel.PolicyRoundedScore:
		score := 0
		if summary.Score != nil {
			score = *summary.Score
		}
		text = fmt.Sprintf("> *Score*: %d/5\n> *Ratings*: %d", score, summary.Count)
	default:
		text = fmt.Sprintf("> *Min*: %d\n> *Max*: %d\n> *Avg*: %s\n> *Ratings*: %d", summary.Min, summary.Max, summary.Avg, summary.Count)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))

	if window.MinDate != "" || window.MaxDate != "" {
		span := fmt.Sprintf("%s – %s", displayDate(window.MinDate), displayDate(window.MaxDate))
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", span, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatUpcoming(player string, upcoming []padel.TournamentResultEntry) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("📅 Upcoming tournaments for %s 📅", player)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	if len(upcoming) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Nothing scheduled yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, len(upcoming))
	for _, e := range upcoming {
		lines = append(lines, fmt.Sprintf("• %s: %s", displayDate(e.Date), e.TournamentName))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for a name missing from the roster.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player named *%s*. Names are case-sensitive.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

// displayDate renders an ISO date as "Mon 02 Jan 2006", falling back to the
// raw value when it does not parse.
func displayDate(date string) string {
	d, err := padel.ParseDate(date)
	if err != nil {
		return date
	}
	return d.Format("Mon 02 Jan 2006")
}
