package handlers

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/priyansh563/studybot/internal/ingest"
	"github.com/priyansh563/studybot/internal/messages"
	"github.com/priyansh563/studybot/types"
)

// HandleDocument ingests admin uploads. The caption carries the full
// catalog path; the document's file id is the handle we later replay to
// deliver the item. Documents from non-admins are ignored.
func (bh *Handlers) HandleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Document == nil {
		return
	}
	if !bh.cfg.IsAdmin(getUserIDFromUpdate(update)) {
		return
	}
	chatID := update.Message.Chat.ID

	if update.Message.Caption == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.UploadNeedsCaption(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	caption, err := ingest.ParseCaption(update.Message.Caption)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.UploadInvalidCaption(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	_, err = bh.catalog.AddItem(types.ContentItem{
		Grade:    caption.Grade,
		Category: caption.Category,
		Subject:  caption.Subject,
		Chapter:  caption.Chapter,
		Title:    caption.Title,
		FileID:   update.Message.Document.FileID,
		Premium:  caption.Premium,
	})
	if err != nil {
		log.Printf("Error storing content item %q: %v", caption.Title, err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.ErrorDefault(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      messages.UploadSaved(caption.Title),
		ParseMode: messages.ParseModeHTML,
	})
}
