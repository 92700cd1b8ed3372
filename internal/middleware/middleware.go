package middleware

import (
	"context"
	"log"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/priyansh563/studybot/internal/contextkeys"
	"github.com/priyansh563/studybot/types"
)

type Middlewares struct {
	users types.UserStore
}

func NewMessageAnalyzer(users types.UserStore) *Middlewares {
	return &Middlewares{
		users: users,
	}
}

// RegisterUserMiddleware records the sender on first contact. The insert
// is idempotent; a returning user is left untouched. Registration failure
// is logged but never blocks handling.
func (m *Middlewares) RegisterUserMiddleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		var from *models.User
		switch {
		case update.Message != nil && update.Message.From != nil:
			from = update.Message.From
		case update.CallbackQuery != nil:
			from = &update.CallbackQuery.From
		}

		if from != nil && from.ID != 0 {
			name := strings.TrimSpace(from.FirstName + " " + from.LastName)
			if err := m.users.CreateUser(from.ID, name); err != nil {
				log.Printf("Error registering user %d: %v", from.ID, err)
			}
		}

		next(ctx, b, update)
	}
}

func (m *Middlewares) AnalyzeMessageMiddleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		var newCtx context.Context

		switch {
		case update.CallbackQuery != nil && update.CallbackQuery.Data != "":
			newCtx = contextkeys.WithMessageType(ctx, contextkeys.MessageTypeClickButton)
			newCtx = contextkeys.WithCallbackData(newCtx, update.CallbackQuery.Data)
		case update.Message != nil && update.Message.Document != nil:
			newCtx = contextkeys.WithMessageType(ctx, contextkeys.MessageTypeDocument)
		case update.Message != nil && strings.HasPrefix(update.Message.Text, "/"):
			newCtx = contextkeys.WithMessageType(ctx, contextkeys.MessageTypeCommand)
		case update.Message != nil && update.Message.Text != "":
			newCtx = contextkeys.WithMessageType(ctx, contextkeys.MessageTypeText)
		default:
			newCtx = contextkeys.WithMessageType(ctx, contextkeys.MessageTypeUnknown)
		}

		next(newCtx, b, update)
	}
}
