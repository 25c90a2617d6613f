package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nova88bet/telegram-lottery-bot/config"
	"github.com/nova88bet/telegram-lottery-bot/internal/delivery/telegram"
	"github.com/nova88bet/telegram-lottery-bot/internal/infrastructure/gemini"
	"github.com/nova88bet/telegram-lottery-bot/internal/infrastructure/scraper"
	"github.com/nova88bet/telegram-lottery-bot/internal/infrastructure/storage"
	"github.com/nova88bet/telegram-lottery-bot/internal/usecase"
	"github.com/nova88bet/telegram-lottery-bot/pkg/logger"
)

func main() {
	logger.Init()
	logger.InfoLogger.Println("🚀 Starting lottery bot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// 1. Gemini AI client
	aiRepo, err := gemini.NewClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}
	defer aiRepo.Close()
	logger.InfoLogger.Println("✅ Gemini AI client ready (gemini-2.5-flash)")

	// 2. Storage
	gameStore, err := storage.NewGameStoreFromEnv(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to open game store: %v", err)
	}
	languageStore := storage.NewFileLanguageStore(cfg.LanguageDataFile)
	logger.InfoLogger.Println("✅ Storage ready")

	// 3. PGSoft scraper
	fetcher := scraper.New()
	logger.InfoLogger.Println("✅ PGSoft scraper ready")

	// 4. Use cases
	languageUsecase, err := usecase.NewLanguageUsecase(languageStore)
	if err != nil {
		log.Fatalf("❌ Failed to load language preferences: %v", err)
	}
	predictionUsecase := usecase.NewPredictionUsecase(aiRepo)
	slotGameUsecase := usecase.NewSlotGameUsecase(aiRepo, gameStore, fetcher)
	logger.InfoLogger.Println("✅ Use cases ready")

	// 5. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		cfg.AdminChatID,
		languageUsecase,
		predictionUsecase,
		slotGameUsecase,
		gameStore,
	)
	if err != nil {
		log.Fatalf("❌ Failed to create bot handler: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot ready: @%s", botHandler.Username())

	if cfg.WebhookURL != "" {
		if err := botHandler.RegisterWebhook(cfg.WebhookURL); err != nil {
			log.Fatalf("❌ Failed to register webhook: %v", err)
		}
	} else {
		logger.InfoLogger.Println("⚠️ WEBHOOK_URL not set, webhook must be registered manually")
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: botHandler.Router(),
	}

	go func() {
		logger.InfoLogger.Printf("🤖 Bot is running on port %d. Press Ctrl+C to stop.", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorLogger.Fatalf("❌ HTTP server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.InfoLogger.Println("🛑 Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.ErrorLogger.Printf("❌ Shutdown error: %v", err)
	}
	logger.InfoLogger.Println("👋 Bot stopped")
}
