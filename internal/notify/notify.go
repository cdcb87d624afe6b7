// Package notify sends a Telegram alert when the countdown to the
// target sidereal time first enters the configured window.
//
// A background job re-evaluates the pipeline once a minute. The alert
// is latched: it fires once when the countdown crosses into the window
// and re-arms only after the peak has passed and the countdown has
// wrapped back out, so a running clock does not spam one message per
// check while inside the window.
package notify

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ryan-winkler/transitwatch/internal/sidereal"
)

// Sender delivers one alert message. Satisfied by the Telegram bot in
// production and by fakes in tests.
type Sender interface {
	Send(text string) error
}

// telegramSender sends MarkdownV2 messages to a fixed chat.
type telegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func (t telegramSender) Send(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, "`"+tgbotapi.EscapeText("MarkdownV2", text)+"`")
	msg.ParseMode = "MarkdownV2"
	_, err := t.bot.Send(msg)
	return err
}

// NewTelegramSender authorizes the bot and binds it to the chat ID.
func NewTelegramSender(token, chatID string) (Sender, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse chat ID %q: %w", chatID, err)
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorize telegram bot: %w", err)
	}
	return telegramSender{bot: bot, chatID: id}, nil
}

// Notifier watches the countdown and alerts once per approach.
type Notifier struct {
	sender   Sender
	window   time.Duration
	logger   *slog.Logger
	observer func() sidereal.Observer

	scheduler *gocron.Scheduler
	armed     bool
}

// New creates a Notifier. observer is called on every check so live-reloaded
// coordinates are picked up; window is how far ahead of the peak the
// alert fires.
func New(sender Sender, window time.Duration, logger *slog.Logger, observer func() sidereal.Observer) *Notifier {
	return &Notifier{
		sender:   sender,
		window:   window,
		logger:   logger,
		observer: observer,
		armed:    true,
	}
}

// Start schedules the background check. Call Stop to shut it down.
func (n *Notifier) Start() error {
	s := gocron.NewScheduler(time.UTC)
	if _, err := s.Every(1).Minute().Do(func() {
		n.Check(time.Now().UTC())
	}); err != nil {
		return fmt.Errorf("schedule alert job: %w", err)
	}
	n.scheduler = s
	s.StartAsync()
	n.logger.Info("peak alert job started", "window", n.window)
	return nil
}

// Stop halts the background job.
func (n *Notifier) Stop() {
	if n.scheduler != nil {
		n.scheduler.Stop()
	}
}

// Check evaluates the countdown at the given instant and fires or
// re-arms the alert latch as needed.
func (n *Notifier) Check(now time.Time) {
	obs := n.observer()
	report, err := sidereal.Evaluate(now, obs)
	if err != nil {
		n.logger.Error("alert evaluation failed", "error", err)
		return
	}

	inWindow := report.Countdown <= n.window
	switch {
	case inWindow && n.armed:
		text := fmt.Sprintf("Sidereal %s in %s (LMST %s)",
			obs.Target.String(), report.Countdown.Round(time.Second), report.LMST.String())
		if err := n.sender.Send(text); err != nil {
			// Leave the latch armed so the next check retries.
			n.logger.Error("alert send failed", "error", err)
			return
		}
		n.logger.Info("peak alert sent", "countdown", report.Countdown.Round(time.Second))
		n.armed = false
	case !inWindow && !n.armed:
		n.armed = true
	}
}
