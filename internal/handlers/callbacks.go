package handlers

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/priyansh563/studybot/internal/contextkeys"
	"github.com/priyansh563/studybot/internal/messages"
	"github.com/priyansh563/studybot/internal/nav"
	"github.com/priyansh563/studybot/internal/pricing"
)

// HandleCallback decodes the button token and renders the state it names.
// Every screen is derived from the token alone, so stale buttons keep
// working after a restart.
func (bh *Handlers) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	chatID := getChatIDFromUpdate(update)
	userID := getUserIDFromUpdate(update)

	data, _ := contextkeys.GetCallbackData(ctx)
	if data == "" {
		data = update.CallbackQuery.Data
	}

	action, err := nav.Decode(data)
	if err != nil {
		log.Printf("Bad callback token from %d: %v", userID, err)
		bh.answerCallback(ctx, b, update.CallbackQuery.ID, messages.ErrorDefault())
		return
	}

	var (
		text     string
		keyboard models.InlineKeyboardMarkup
	)

	switch a := action.(type) {
	case nav.Home:
		text, keyboard = bh.homeView()
	case nav.Class:
		text, keyboard = bh.categoriesView(a.Grade)
	case nav.Category:
		text, keyboard, err = bh.subjectsView(a.Grade, a.Category)
	case nav.Subject:
		text, keyboard, err = bh.chaptersView(a.Grade, a.Category, a.Subject)
	case nav.Chapter:
		text, keyboard, err = bh.itemsView(userID, a.Grade, a.Category, a.Subject, a.Chapter, 0)
	case nav.Page:
		text, keyboard, err = bh.itemsView(userID, a.Grade, a.Category, a.Subject, a.Chapter, a.Index)
	case nav.SendRange:
		// Delivery happens beside the list; the page stays as it is.
		bh.answerCallback(ctx, b, update.CallbackQuery.ID, messages.RangeSent())
		bh.sendRange(ctx, chatID, userID, a)
		return
	case nav.Buy:
		text, keyboard = bh.buyView()
	case nav.Redeem:
		text = messages.RedeemPrompt()
		keyboard = models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{button(messages.BtnBack(), nav.Buy{})},
		}}
	case nav.Plan:
		plan, ok := pricing.Get(a.Key)
		if !ok {
			bh.answerCallback(ctx, b, update.CallbackQuery.ID, messages.ErrorDefault())
			return
		}
		text = bh.provider.PlanText(plan)
		keyboard = models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{button(messages.BtnBack(), nav.Buy{})},
		}}
	}

	if err != nil {
		log.Printf("Error rendering %q: %v", data, err)
		bh.answerCallback(ctx, b, update.CallbackQuery.ID, messages.ErrorDefault())
		return
	}

	bh.answerCallback(ctx, b, update.CallbackQuery.ID, "")

	if update.CallbackQuery.Message.Message == nil {
		return
	}
	msg := update.CallbackQuery.Message.Message
	_, err = b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ParseMode:   messages.ParseModeHTML,
		ReplyMarkup: &keyboard,
	})
	if err != nil {
		log.Printf("Error editing message for %q: %v", data, err)
	}
}
