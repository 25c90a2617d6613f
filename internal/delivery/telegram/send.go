package telegram

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendMessage sends an HTML message with an optional inline keyboard.
func (h *BotHandler) sendMessage(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	if h.bot == nil {
		return fmt.Errorf("telegram bot is nil")
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	if _, err := h.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}

// sendPhoto sends a photo by URL with an HTML caption. Callers fall back to
// plain text when this fails, photo URLs are not always reachable.
func (h *BotHandler) sendPhoto(chatID int64, photoURL, caption string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	if h.bot == nil {
		return fmt.Errorf("telegram bot is nil")
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		photo.ReplyMarkup = keyboard
	}
	if _, err := h.bot.Send(photo); err != nil {
		return fmt.Errorf("failed to send photo to chat %d: %w", chatID, err)
	}
	return nil
}

// answerCallback stops the loading indicator on an inline button press.
func (h *BotHandler) answerCallback(callbackID string) {
	if h.bot == nil || callbackID == "" {
		return
	}
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		log.Printf("⚠️ Failed to answer callback %s: %v", callbackID, err)
	}
}
