package telegram

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
)

// handleExportGames sends the stored game catalog as an xlsx document.
// Admin only.
func (h *BotHandler) handleExportGames(ctx context.Context, chatID int64) {
	if h.adminChatID == 0 || chatID != h.adminChatID {
		log.Printf("⚠️ Ignoring /export_games from non-admin chat %d", chatID)
		return
	}

	games, err := h.gameStore.List(ctx)
	if err != nil {
		log.Printf("❌ Game export list error: %v", err)
		h.sendMessage(chatID, "❌ Failed to read the game catalog.", nil)
		return
	}

	xlsxBytes, err := buildGameExportXLSX(games)
	if err != nil {
		log.Printf("❌ Game export xlsx error: %v", err)
		h.sendMessage(chatID, "❌ Failed to build the export file.", nil)
		return
	}

	filename := fmt.Sprintf("pgsoft_games_%s.xlsx", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: xlsxBytes})
	doc.Caption = fmt.Sprintf("🎮 PGSoft game export\nTotal: %d", len(games))
	if _, err := h.bot.Send(doc); err != nil {
		log.Printf("❌ Game export send error: %v", err)
		h.sendMessage(chatID, "❌ Failed to send the export file.", nil)
	}
}

func buildGameExportXLSX(games []entity.Game) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Game ID", "Name", "Description", "Image URL", "RTP", "Detail URL", "Last Updated"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, game := range games {
		values := []interface{}{
			game.GameID,
			game.Name,
			game.Description,
			game.ImageURL,
			game.RTP,
			game.DetailURL,
			game.LastUpdated.Format(time.RFC3339),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
