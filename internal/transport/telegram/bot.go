// Package telegram connects the conversation machine to the Telegram Bot
// API through long polling.
package telegram

import (
	"context"
	"io"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/alexanderramin/savecnt/internal/conversation"
	"github.com/alexanderramin/savecnt/internal/transport"
)

// DefaultPollTimeout is the long-poll timeout in seconds.
const DefaultPollTimeout = 60

// API is the subset of *tgbotapi.BotAPI the bot uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	SendMediaGroup(c tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error)
	GetUpdatesChan(c tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Handler is implemented by *conversation.Machine.
type Handler interface {
	Handle(ctx context.Context, userID int64, in conversation.Input) (conversation.Reply, error)
	TrackMessage(ctx context.Context, userID int64, kind conversation.RefKind, messageID int) error
}

// Bot polls updates and answers them.
type Bot struct {
	api         API
	handler     Handler
	logger      *slog.Logger
	pollTimeout int
}

// Option configures a Bot.
type Option func(*Bot)

// WithPollTimeout sets the long-poll timeout in seconds.
func WithPollTimeout(seconds int) Option {
	return func(b *Bot) {
		if seconds > 0 {
			b.pollTimeout = seconds
		}
	}
}

// WithLogger sets the logger for delivery failures.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) {
		if l != nil {
			b.logger = l
		}
	}
}

// New returns a Bot. Use Connect to build the API from a token.
func New(api API, handler Handler, opts ...Option) *Bot {
	b := &Bot{
		api:         api,
		handler:     handler,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		pollTimeout: DefaultPollTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Connect authenticates token against the Bot API.
func Connect(token string) (*tgbotapi.BotAPI, error) {
	return tgbotapi.NewBotAPI(token)
}

// Run registers the command menu and handles updates until ctx is done or
// the update channel closes. Queued updates finish before Run returns.
func (b *Bot) Run(ctx context.Context) error {
	b.registerCommands(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	d := transport.NewDispatcher(ctx, b.logger)
	defer d.Close()

	b.logger.InfoContext(ctx, "bot_started", "poll_timeout", b.pollTimeout)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.InfoContext(ctx, "bot_stopped")
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			ev, ok := parseUpdate(upd)
			if !ok {
				continue
			}
			d.Submit(ev.userID, func(ctx context.Context) { b.process(ctx, ev) })
		}
	}
}

func (b *Bot) registerCommands(ctx context.Context) {
	cmds := make([]tgbotapi.BotCommand, 0, len(conversation.Commands()))
	for _, c := range conversation.Commands() {
		cmds = append(cmds, tgbotapi.BotCommand{Command: c.Name, Description: c.Description})
	}
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(cmds...)); err != nil {
		b.logger.WarnContext(ctx, "set_commands_failed", "error", err.Error())
	}
}

// event is the part of an update the bot acts on.
type event struct {
	userID     int64
	chatID     int64
	input      conversation.Input
	sourceID   int    // message holding the pressed button
	callbackID string // non-empty for button presses
}

func parseUpdate(u tgbotapi.Update) (event, bool) {
	switch {
	case u.CallbackQuery != nil:
		q := u.CallbackQuery
		if q.From == nil || q.Message == nil || q.Message.Chat == nil {
			return event{}, false
		}
		return event{
			userID:     q.From.ID,
			chatID:     q.Message.Chat.ID,
			input:      conversation.TagInput(q.Data),
			sourceID:   q.Message.MessageID,
			callbackID: q.ID,
		}, true

	case u.Message != nil:
		m := u.Message
		if m.From == nil || m.Chat == nil {
			return event{}, false
		}
		ev := event{userID: m.From.ID, chatID: m.Chat.ID}
		if m.IsCommand() {
			a, ok := conversation.CommandAction("/" + m.Command())
			if !ok {
				return event{}, false
			}
			ev.input = conversation.ActionInput(a)
			return ev, true
		}
		if m.Text == "" {
			return event{}, false
		}
		ev.input = conversation.TextInput(m.Text)
		return ev, true
	}
	return event{}, false
}

func (b *Bot) process(ctx context.Context, ev event) {
	if ev.callbackID != "" {
		if _, err := b.api.Request(tgbotapi.NewCallback(ev.callbackID, "")); err != nil {
			b.logger.WarnContext(ctx, "answer_callback_failed", "user_id", ev.userID, "error", err.Error())
		}
	}
	reply, err := b.handler.Handle(ctx, ev.userID, ev.input)
	if err != nil {
		b.logger.ErrorContext(ctx, "handle_failed", "user_id", ev.userID, "error", err.Error())
		return
	}
	b.deliver(ctx, ev, reply)
}
