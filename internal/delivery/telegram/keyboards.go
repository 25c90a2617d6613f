package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
	"github.com/nova88bet/telegram-lottery-bot/internal/language"
)

// promoKeyboard builds the standard promotion row shown under predictions
// and help messages, with button labels in the user's language.
func promoKeyboard(lang entity.LanguageCode) *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(language.Text("promotion_button", lang), constants.SiteURL),
			tgbotapi.NewInlineKeyboardButtonURL(language.Text("bet_now_button", lang), constants.SiteURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(language.Text("slots_rtp_button", lang), constants.SiteURL),
		),
	)
	return &keyboard
}

// welcomeKeyboard is shown after a language is picked, with a jackpot row
// instead of the slots row.
func welcomeKeyboard(lang entity.LanguageCode) *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(language.Text("promotion_button", lang), constants.SiteURL),
			tgbotapi.NewInlineKeyboardButtonURL(language.Text("bet_now_button", lang), constants.SiteURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(language.Text("jackpot_button", lang), constants.SiteURL),
		),
	)
	return &keyboard
}

// languageKeyboard lists the supported languages as callback buttons.
func languageKeyboard() *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇻🇳 Tiếng Việt", "lang_vi"),
			tgbotapi.NewInlineKeyboardButtonData("🇬🇧 English", "lang_en"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇨🇳 中文（简体）", "lang_zh"),
			tgbotapi.NewInlineKeyboardButtonData("🇹🇭 ภาษาไทย", "lang_th"),
		),
	)
	return &keyboard
}
