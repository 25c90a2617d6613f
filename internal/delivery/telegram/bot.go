// Package telegram handles bot updates coming in over the webhook and
// turns them into usecase calls.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/repository"
	"github.com/nova88bet/telegram-lottery-bot/internal/usecase"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64

	languages   *usecase.LanguageUsecase
	predictions *usecase.PredictionUsecase
	slotGames   *usecase.SlotGameUsecase
	gameStore   repository.GameRepository
}

// NewBotHandler creates the handler and authenticates against the Bot API.
func NewBotHandler(
	token string,
	adminChatID int64,
	languages *usecase.LanguageUsecase,
	predictions *usecase.PredictionUsecase,
	slotGames *usecase.SlotGameUsecase,
	gameStore repository.GameRepository,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &BotHandler{
		bot:         bot,
		adminChatID: adminChatID,
		languages:   languages,
		predictions: predictions,
		slotGames:   slotGames,
		gameStore:   gameStore,
	}, nil
}

// Username returns the authenticated bot account name.
func (h *BotHandler) Username() string {
	return h.bot.Self.UserName
}
