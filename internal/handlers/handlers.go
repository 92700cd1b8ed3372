package handlers

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/priyansh563/studybot/internal/config"
	"github.com/priyansh563/studybot/internal/contextkeys"
	"github.com/priyansh563/studybot/internal/messages"
	"github.com/priyansh563/studybot/internal/payment"
	"github.com/priyansh563/studybot/internal/redemption"
	"github.com/priyansh563/studybot/types"
)

// Transport is the slice of the bot API the delivery paths use. Keeping it
// behind an interface lets the batch send logic run against a fake.
type Transport interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, fileID, caption string) error
	UploadAction(ctx context.Context, chatID int64)
}

type Handlers struct {
	users    types.UserStore
	catalog  types.CatalogStore
	stats    types.StatsStore
	queue    *redemption.Queue
	provider payment.Provider
	cfg      *config.Config
	sender   Transport
}

func NewHandlers(users types.UserStore, catalog types.CatalogStore, stats types.StatsStore, queue *redemption.Queue, provider payment.Provider, cfg *config.Config, sender Transport) *Handlers {
	return &Handlers{
		users:    users,
		catalog:  catalog,
		stats:    stats,
		queue:    queue,
		provider: provider,
		cfg:      cfg,
		sender:   sender,
	}
}

func (bh *Handlers) MainHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := getChatIDFromUpdate(update)
	messageType, _ := contextkeys.GetMessageType(ctx)

	switch messageType {
	case contextkeys.MessageTypeCommand:
		bh.HandleCommand(ctx, b, update)
	case contextkeys.MessageTypeDocument:
		bh.HandleDocument(ctx, b, update)
	case contextkeys.MessageTypeClickButton:
		bh.HandleCallback(ctx, b, update)
	case contextkeys.MessageTypeText:
		if chatID != 0 {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:    chatID,
				Text:      messages.TextHint(),
				ParseMode: messages.ParseModeHTML,
			})
		}
	default:
	}
}

func getChatIDFromUpdate(update *models.Update) int64 {
	if update == nil {
		return 0
	}
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil {
		if update.CallbackQuery.Message.Message != nil {
			return update.CallbackQuery.Message.Message.Chat.ID
		}
		if update.CallbackQuery.Message.InaccessibleMessage != nil {
			return update.CallbackQuery.Message.InaccessibleMessage.Chat.ID
		}
	}
	return 0
}

func getUserIDFromUpdate(update *models.Update) int64 {
	if update == nil {
		return 0
	}
	if update.Message != nil && update.Message.From != nil {
		return update.Message.From.ID
	}
	if update.CallbackQuery != nil {
		return update.CallbackQuery.From.ID
	}
	return 0
}

func getUserNameFromUpdate(update *models.Update) string {
	var from *models.User
	switch {
	case update == nil:
		return ""
	case update.Message != nil && update.Message.From != nil:
		from = update.Message.From
	case update.CallbackQuery != nil:
		from = &update.CallbackQuery.From
	default:
		return ""
	}
	name := from.FirstName
	if from.LastName != "" {
		name += " " + from.LastName
	}
	return name
}

func (bh *Handlers) answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	if err != nil {
		log.Printf("Error answering callback: %v", err)
	}
}

// checkPremium wraps the store call so render paths degrade to the free
// view instead of failing when the store misbehaves.
func (bh *Handlers) checkPremium(tgID int64) bool {
	premium, err := bh.users.CheckPremium(tgID)
	if err != nil {
		log.Printf("Error checking premium for %d: %v", tgID, err)
		return false
	}
	return premium
}
