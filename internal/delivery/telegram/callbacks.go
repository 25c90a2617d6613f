package telegram

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
	"github.com/nova88bet/telegram-lottery-bot/internal/language"
)

func (h *BotHandler) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.From == nil {
		return
	}
	userID := query.From.ID
	data := query.Data
	log.Printf("🔘 Received callback query %q from user %d", data, userID)

	if strings.HasPrefix(data, "lang_") {
		h.handleLanguageCallback(query, userID, strings.TrimPrefix(data, "lang_"))
		return
	}

	// Unknown buttons just get the loading indicator cleared.
	h.answerCallback(query.ID)
}

func (h *BotHandler) handleLanguageCallback(query *tgbotapi.CallbackQuery, userID int64, rawCode string) {
	defer h.answerCallback(query.ID)

	if query.Message == nil || query.Message.Chat == nil {
		return
	}
	chatID := query.Message.Chat.ID

	lang, err := h.languages.SetLanguage(userID, rawCode)
	if err != nil {
		log.Printf("⚠️ Rejected language selection %q for user %d: %v", rawCode, userID, err)
		return
	}
	log.Printf("✅ User %d switched language to %s", userID, lang)

	confirmation := strings.ReplaceAll(
		h.languages.TextIn("language_updated", lang),
		"{language}",
		language.Name(lang),
	)
	if err := h.sendMessage(chatID, confirmation, nil); err != nil {
		log.Printf("❌ Failed to send language confirmation: %v", err)
	}

	keyboard := welcomeKeyboard(lang)
	caption := h.languages.TextIn("welcome_caption", lang)
	welcome := h.languages.TextIn("welcome_message", lang)

	if err := h.sendPhoto(chatID, constants.WelcomeBannerURL, caption, keyboard); err != nil {
		log.Printf("⚠️ Failed to send welcome photo: %v", err)
	}
	if err := h.sendMessage(chatID, welcome, keyboard); err != nil {
		log.Printf("❌ Failed to send welcome message: %v", err)
	}
}
