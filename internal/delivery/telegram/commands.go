package telegram

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
)

var captionRTPPattern = regexp.MustCompile(`RTP: ([0-9.]+%|N/A)`)

// HandleUpdate routes one incoming update to the right handler.
func (h *BotHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message != nil {
		h.handleMessage(ctx, update.Message)
	}
}

func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil || message.From == nil {
		return
	}
	chatID := message.Chat.ID
	userID := message.From.ID
	text := message.Text

	if strings.HasPrefix(text, "/") {
		h.handleCommand(ctx, chatID, userID, text)
		return
	}

	// Anything that is not a command gets the help text.
	lang := h.languages.ResolveLanguage(userID)
	if err := h.sendMessage(chatID, h.languages.TextIn("help_message", lang), promoKeyboard(lang)); err != nil {
		log.Printf("❌ Failed to send help message: %v", err)
	}
}

func (h *BotHandler) handleCommand(ctx context.Context, chatID, userID int64, command string) {
	lang := h.languages.ResolveLanguage(userID)

	switch {
	case strings.HasPrefix(command, "/start"):
		log.Printf("👋 User %d started the bot", userID)
		if err := h.sendMessage(chatID, h.languages.TextIn("language_selection", lang), languageKeyboard()); err != nil {
			log.Printf("❌ Failed to send language selection: %v", err)
		}

	// Exact match, the longer du_doan variants must not land here.
	case command == "/du_doan":
		h.sendPrediction(ctx, chatID, "vietnam", lang)

	case strings.HasPrefix(command, "/du_doan_4d"):
		h.sendPrediction(ctx, chatID, "4d", lang)

	case strings.HasPrefix(command, "/du_doan_thai"):
		h.sendPrediction(ctx, chatID, "thai", lang)

	case strings.HasPrefix(command, "/du_doan_indo"):
		h.sendPrediction(ctx, chatID, "indo", lang)

	case strings.HasPrefix(command, "/ds_slot"):
		list := h.slotGames.PopularGames(ctx, lang)
		if err := h.sendMessage(chatID, list, promoKeyboard(lang)); err != nil {
			log.Printf("❌ Failed to send game list: %v", err)
		}

	case strings.HasPrefix(command, "/slotgame"):
		h.handleSlotGame(ctx, chatID, command, lang)

	case strings.HasPrefix(command, "/export_games"):
		h.handleExportGames(ctx, chatID)

	case strings.HasPrefix(command, "/help"):
		if err := h.sendMessage(chatID, h.languages.TextIn("help_message", lang), promoKeyboard(lang)); err != nil {
			log.Printf("❌ Failed to send help message: %v", err)
		}

	case strings.HasPrefix(command, "/language"):
		if err := h.sendMessage(chatID, h.languages.TextIn("language_selection", lang), languageKeyboard()); err != nil {
			log.Printf("❌ Failed to send language selection: %v", err)
		}

	default:
		if err := h.sendMessage(chatID, h.languages.TextIn("command_not_recognized", lang), nil); err != nil {
			log.Printf("❌ Failed to send unknown command reply: %v", err)
		}
	}
}

func (h *BotHandler) sendPrediction(ctx context.Context, chatID int64, lotteryType string, lang entity.LanguageCode) {
	log.Printf("🎲 Generating %s lottery prediction", lotteryType)
	prediction := h.predictions.GetDailyPrediction(ctx, lotteryType, string(lang))
	if err := h.sendMessage(chatID, prediction, promoKeyboard(lang)); err != nil {
		log.Printf("❌ Failed to send %s prediction: %v", lotteryType, err)
	}
}

// slotGameArg extracts the game name from a /slotgame command, empty when
// none was given.
func slotGameArg(command string) string {
	parts := strings.SplitN(command, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (h *BotHandler) handleSlotGame(ctx context.Context, chatID int64, command string, lang entity.LanguageCode) {
	gameName := slotGameArg(command)
	if gameName == "" {
		if err := h.sendMessage(chatID, h.languages.TextIn("slot_game_error", lang), nil); err != nil {
			log.Printf("❌ Failed to send slotgame usage: %v", err)
		}
		return
	}

	log.Printf("🎰 Getting slot game info for %q in %s", gameName, lang)
	info := h.slotGames.GetGameInfo(ctx, gameName, lang)

	keyboard := promoKeyboard(lang)
	if info.ImageURL != "" {
		caption := shortCaption(gameName, info.Text)
		if err := h.sendPhoto(chatID, info.ImageURL, caption, keyboard); err != nil {
			log.Printf("⚠️ Failed to send game image, falling back to text: %v", err)
			if err := h.sendMessage(chatID, info.Text, keyboard); err != nil {
				log.Printf("❌ Failed to send game info: %v", err)
			}
			return
		}
	}
	if err := h.sendMessage(chatID, info.Text, keyboard); err != nil {
		log.Printf("❌ Failed to send game info: %v", err)
	}
}

// shortCaption builds a photo caption that stays inside Telegram's caption
// limit: just the game name and the RTP line pulled out of the full text.
func shortCaption(gameName, fullText string) string {
	caption := fmt.Sprintf("<b>%s</b>", gameName)
	if m := captionRTPPattern.FindStringSubmatch(fullText); m != nil {
		caption += "\nRTP: " + m[1]
	}
	if runes := []rune(caption); len(runes) > constants.PhotoCaptionLimit {
		caption = string(runes[:constants.PhotoCaptionLimit])
	}
	return caption
}
