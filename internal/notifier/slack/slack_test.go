package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/padel-tracker/internal/metrics"
	"github.com/mauv0809/padel-tracker/internal/padel"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func resultPtr(r padel.Result) *padel.Result { return &r }

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	ts, err := notifier.sendMessage(slackapi.NewBlockMessage(), true)
	require.NoError(t, err)
	assert.Equal(t, "dry-run-ts", ts)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_NotConfigured(t *testing.T) {
	metrics := metrics.NewMock()
	notifier := NewNotifier("", "C123", metrics)

	ts, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)
	require.NoError(t, err)
	assert.Empty(t, ts)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	ts, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.Equal(t, "ts123", ts)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	_, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendTournamentResult_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}
	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	entry := padel.TournamentResultEntry{Player: "Ana", TournamentName: "Spring Open", Date: "2025-03-01", Result: resultPtr(padel.ResultWinner)}
	_, err := notifier.SendTournamentResult(entry, padel.ModeCreate, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled)
}

func TestFormatRating(t *testing.T) {
	client := &Notifier{channelID: "C123"}

	msg := client.formatRating(padel.RatingEntry{Player: "Ana", Date: "2025-06-05", Rating: 4, Type: padel.GameTypeFriendlyGame}, padel.ModeCreate)
	require.Len(t, msg.Blocks.BlockSet, 2)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Equal(t, "🎾 Rating logged 🎾", header.Text.Text)

	details, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "Player: Ana\nDate: Thu 05 Jun 2025\nRating: 4/5\nType: Friendly Game", details.Text.Text)

	msg = client.formatRating(padel.RatingEntry{Player: "Ana", Date: "2025-06-05", Rating: 2}, padel.ModeReplace)
	require.Len(t, msg.Blocks.BlockSet, 3)
	details, ok = msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, details.Text.Text, "Type: Practice")
}

func TestSendRating_DryRun(t *testing.T) {
	m := metrics.NewMock()
	client := NewNotifierWithAPI(nil, "C123", m)

	ts, err := client.SendRating(padel.RatingEntry{Player: "Ana", Date: "2025-06-05", Rating: 4}, padel.ModeCreate, true)
	require.NoError(t, err)
	assert.Equal(t, "dry-run-ts", ts)
	assert.Equal(t, 0, m.SlackNotifSent())
}

func TestFormatTournamentResult_Played(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	entry := padel.TournamentResultEntry{Player: "Ana", TournamentName: "Spring Open", Date: "2025-03-01", Result: resultPtr(padel.ResultSemifinals)}

	msg := client.formatTournamentResult(entry, padel.ModeCreate)
	require.Len(t, msg.Blocks.BlockSet, 2)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "First block should be a HeaderBlock")
	assert.Equal(t, "🏆 Tournament result logged 🏆", header.Text.Text)

	details, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "Player: Ana\nTournament: Spring Open\nDate: Sat 01 Mar 2025\nResult: Semifinals (5/7)", details.Text.Text)
}

func TestFormatTournamentResult_ScheduledReplace(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	entry := padel.TournamentResultEntry{Player: "Ana", TournamentName: "Autumn Cup", Date: "2099-10-04"}

	msg := client.formatTournamentResult(entry, padel.ModeReplace)
	require.Len(t, msg.Blocks.BlockSet, 3)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Equal(t, "📅 Tournament scheduled 📅", header.Text.Text)

	details, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.NotContains(t, details.Text.Text, "Result:")

	_, ok = msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	assert.True(t, ok, "Replacements carry a context note")
}

func TestFormatRatingSummary(t *testing.T) {
	client := &Notifier{}
	window := padel.DateWindow{MinDate: "2025-01-01", MaxDate: "2025-01-31"}

	t.Run("minmaxavg", func(t *testing.T) {
		summary := &padel.RatingSummary{Policy: padel.PolicyMinMaxAvg, Count: 3, Min: 2, Max: 5, Avg: "3.67"}
		msg := client.formatRatingSummary("Ana", window, summary)
		require.Len(t, msg.Blocks.BlockSet, 3)

		stats, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Equal(t, "> *Min*: 2\n> *Max*: 5\n> *Avg*: 3.67\n> *Ratings*: 3", stats.Text.Text)
	})

	t.Run("roundedScore", func(t *testing.T) {
		score := 4
		summary := &padel.RatingSummary{Policy: padel.PolicyRoundedScore, Count: 2, Score: &score}
		msg := client.formatRatingSummary("Ana", padel.DateWindow{}, summary)
		require.Len(t, msg.Blocks.BlockSet, 2)

		stats, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Equal(t, "> *Score*: 4/5\n> *Ratings*: 2", stats.Text.Text)
	})

	t.Run("no data", func(t *testing.T) {
		msg := client.formatRatingSummary("Ana", window, nil)
		require.Len(t, msg.Blocks.BlockSet, 2)

		section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Equal(t, "No data available for *Ana*.", section.Text.Text)
	})
}

func TestFormatUpcoming(t *testing.T) {
	client := &Notifier{}
	upcoming := []padel.TournamentResultEntry{
		{Player: "Ana", TournamentName: "Autumn Cup", Date: "2099-10-04"},
		{Player: "Ana", TournamentName: "Winter Cup", Date: "2099-12-06"},
	}

	msg := client.formatUpcoming("Ana", upcoming)
	require.Len(t, msg.Blocks.BlockSet, 2)

	list, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "• Sun 04 Oct 2099: Autumn Cup\n• Sun 06 Dec 2099: Winter Cup", list.Text.Text)

	empty := client.formatUpcoming("Ana", nil)
	section, ok := empty.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "Nothing scheduled yet.", section.Text.Text)
}

func TestFormatPlayerNotFound(t *testing.T) {
	client := &Notifier{}
	resp, err := client.FormatPlayerNotFoundResponse("bob")
	require.NoError(t, err)

	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	require.Len(t, msg.Blocks.BlockSet, 1)
	section, ok := msg.Blocks.BlockSet[0].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "*bob*")
}
