package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/priyansh563/studybot/internal/config"
	"github.com/priyansh563/studybot/internal/handlers"
	"github.com/priyansh563/studybot/internal/middleware"
	"github.com/priyansh563/studybot/internal/payment"
	"github.com/priyansh563/studybot/internal/redemption"
	"github.com/priyansh563/studybot/store"
	"github.com/priyansh563/studybot/types"
)

func main() {
	_ = config.LoadEnvFile("config.env")
	cfg := config.FromEnv()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	pgStore, err := store.NewPostgresStore(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer pgStore.Close()

	redisAddr := fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort)
	rdb, err := store.NewRedisClient(redisAddr, cfg.RedisPassword, cfg.RedisDB, "studybot")
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	var catalogStore types.CatalogStore = store.NewCachedCatalog(pgStore, rdb, cfg.CatalogCacheTTLMinutes)

	botToken := cfg.BotToken
	if botToken == "" {
		botToken = "YOUR_BOT_TOKEN_FROM_BOTFATHER"
		log.Println("Warning: Using default bot token. Set BOT_TOKEN environment variable.")
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Minute,
	}
	pollTimeout := 50 * time.Second

	b, err := bot.New(
		botToken,
		bot.WithHTTPClient(pollTimeout, httpClient),
	)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	var provider payment.Provider = payment.Manual{UPIID: cfg.UPIID, Note: cfg.PaymentNote}
	if cfg.GatewayConfigured() {
		provider = payment.Gateway{Name: "Razorpay"}
	}

	transport := handlers.NewBotTransport(b)
	queue := redemption.NewQueue(pgStore, transport, cfg.AdminIDs)
	h := handlers.NewHandlers(pgStore, catalogStore, pgStore, queue, provider, cfg, transport)

	middlewares := middleware.NewMessageAnalyzer(pgStore)
	handlerChain := middlewares.RegisterUserMiddleware(
		middlewares.AnalyzeMessageMiddleware(
			h.MainHandler,
		),
	)

	b.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.Message != nil
	}, handlerChain)

	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, handlerChain)

	log.Println("Bot started. Press Ctrl+C to stop.")
	b.Start(ctx)
}
