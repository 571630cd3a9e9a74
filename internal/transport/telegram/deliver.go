package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/alexanderramin/savecnt/internal/conversation"
	"github.com/alexanderramin/savecnt/internal/export"
)

// deliver sends every message of reply in order. A failed message is logged
// and the rest are still attempted.
func (b *Bot) deliver(ctx context.Context, ev event, reply conversation.Reply) {
	for _, m := range reply.Messages {
		id, err := b.send(ev, m)
		if err != nil {
			b.logger.ErrorContext(ctx, "send_failed", "user_id", ev.userID, "error", err.Error())
			continue
		}
		if m.Track != conversation.RefNone && id != 0 {
			if err := b.handler.TrackMessage(ctx, ev.userID, m.Track, id); err != nil {
				b.logger.WarnContext(ctx, "track_message_failed", "user_id", ev.userID, "error", err.Error())
			}
		}
	}
	if reply.DeleteSource && ev.sourceID != 0 {
		if _, err := b.api.Request(tgbotapi.NewDeleteMessage(ev.chatID, ev.sourceID)); err != nil {
			b.logger.WarnContext(ctx, "delete_message_failed", "user_id", ev.userID, "error", err.Error())
		}
	}
}

// send returns the id of the message now showing m.
func (b *Bot) send(ev event, m conversation.Message) (int, error) {
	switch {
	case len(m.Documents) == 1:
		cfg := tgbotapi.NewDocument(ev.chatID, fileOf(m.Documents[0]))
		cfg.Caption = m.Text
		sent, err := b.api.Send(cfg)
		return sent.MessageID, err

	case len(m.Documents) > 1:
		media := make([]interface{}, len(m.Documents))
		for i, d := range m.Documents {
			media[i] = tgbotapi.NewInputMediaDocument(fileOf(d))
		}
		sent, err := b.api.SendMediaGroup(tgbotapi.NewMediaGroup(ev.chatID, media))
		if err != nil || len(sent) == 0 {
			return 0, err
		}
		return sent[0].MessageID, nil

	case m.Edit && ev.sourceID != 0:
		cfg := tgbotapi.NewEditMessageText(ev.chatID, ev.sourceID, m.Text)
		if kb := keyboard(m.Keyboard); kb != nil {
			cfg.ReplyMarkup = kb
		}
		if m.Markdown {
			cfg.ParseMode = tgbotapi.ModeMarkdown
		}
		_, err := b.api.Request(cfg)
		return ev.sourceID, err
	}

	cfg := tgbotapi.NewMessage(ev.chatID, m.Text)
	if kb := keyboard(m.Keyboard); kb != nil {
		cfg.ReplyMarkup = *kb
	}
	if m.Markdown {
		cfg.ParseMode = tgbotapi.ModeMarkdown
	}
	sent, err := b.api.Send(cfg)
	return sent.MessageID, err
}

func fileOf(d export.Document) tgbotapi.FileBytes {
	return tgbotapi.FileBytes{Name: d.FileName, Bytes: d.Data}
}

func keyboard(rows [][]conversation.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}
	out := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, r := range rows {
		if len(r) == 0 {
			continue
		}
		btns := make([]tgbotapi.InlineKeyboardButton, len(r))
		for i, b := range r {
			btns[i] = tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Tag)
		}
		out = append(out, btns)
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(out...)
	return &kb
}
