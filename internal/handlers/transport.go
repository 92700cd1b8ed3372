package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/priyansh563/studybot/internal/messages"
)

// BotTransport adapts *bot.Bot to the Transport and redemption.Notifier
// interfaces.
type BotTransport struct {
	b *bot.Bot
}

func NewBotTransport(b *bot.Bot) *BotTransport {
	return &BotTransport{b: b}
}

func (t *BotTransport) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := t.b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: messages.ParseModeHTML,
	})
	return err
}

func (t *BotTransport) SendDocument(ctx context.Context, chatID int64, fileID, caption string) error {
	_, err := t.b.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:   chatID,
		Document: &models.InputFileString{Data: fileID},
		Caption:  caption,
	})
	return err
}

func (t *BotTransport) UploadAction(ctx context.Context, chatID int64) {
	_, _ = t.b.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionUploadDocument,
	})
}

func (t *BotTransport) Notify(ctx context.Context, tgID int64, text string) error {
	return t.SendMessage(ctx, tgID, text)
}
