package handlers

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/priyansh563/studybot/internal/messages"
)

func (bh *Handlers) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	fields := strings.Fields(strings.TrimSpace(update.Message.Text))
	if len(fields) == 0 {
		return
	}
	cmd := fields[0]
	if strings.Contains(cmd, "@") {
		cmd = strings.SplitN(cmd, "@", 2)[0]
	}

	switch cmd {
	case "/start":
		text, keyboard := bh.homeView()
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        messages.StartWelcome() + "\n\n" + text,
			ParseMode:   messages.ParseModeHTML,
			ReplyMarkup: &keyboard,
		})
	case "/buy":
		text, keyboard := bh.buyView()
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        text,
			ParseMode:   messages.ParseModeHTML,
			ReplyMarkup: &keyboard,
		})
	case "/redeem":
		bh.handleRedeem(ctx, b, update, fields)
	case "/make_premium":
		bh.handleMakePremium(ctx, b, update, fields)
	case "/stats":
		bh.handleStats(ctx, b, update)
	default:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.ErrorUnknownCommand(),
			ParseMode: messages.ParseModeHTML,
		})
	}
}

func (bh *Handlers) handleRedeem(ctx context.Context, b *bot.Bot, update *models.Update, fields []string) {
	chatID := update.Message.Chat.ID
	if len(fields) != 2 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.RedeemUsage(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	userID := getUserIDFromUpdate(update)
	name := getUserNameFromUpdate(update)
	if _, err := bh.queue.Submit(ctx, userID, name, fields[1]); err != nil {
		log.Printf("Error recording redemption for %d: %v", userID, err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.ErrorDefault(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      messages.RedeemReceived(),
		ParseMode: messages.ParseModeHTML,
	})
}

// handleMakePremium grants premium by hand after an admin has verified a
// payment. Non-admins get no reply at all.
func (bh *Handlers) handleMakePremium(ctx context.Context, b *bot.Bot, update *models.Update, fields []string) {
	adminID := getUserIDFromUpdate(update)
	if !bh.cfg.IsAdmin(adminID) {
		return
	}
	chatID := update.Message.Chat.ID

	if len(fields) < 2 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.MakePremiumUsage(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	targetID, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.MakePremiumUsage(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	months := 1
	if len(fields) >= 3 {
		if n, err := strconv.Atoi(fields[2]); err == nil && n > 0 {
			months = n
		}
	}

	until, err := bh.users.GrantPremium(targetID, months)
	if err != nil {
		log.Printf("Error granting premium to %d: %v", targetID, err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.ErrorDefault(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      messages.MakePremiumDone(targetID, until),
		ParseMode: messages.ParseModeHTML,
	})

	// Private chat ids equal user ids, so congratulate the user directly.
	if err := bh.sender.SendMessage(ctx, targetID, messages.PremiumGranted(until)); err != nil {
		log.Printf("Could not notify user %d about premium: %v", targetID, err)
	}
}

func (bh *Handlers) handleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !bh.cfg.IsAdmin(getUserIDFromUpdate(update)) {
		return
	}
	chatID := update.Message.Chat.ID

	st, err := bh.stats.GetStats()
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.ErrorDefault(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      messages.StatsText(st),
		ParseMode: messages.ParseModeHTML,
	})
}
