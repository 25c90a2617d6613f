package telegram

import (
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Router builds the HTTP surface: the Telegram webhook endpoint and a
// health probe.
func (h *BotHandler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "bot": h.Username()})
	})

	router.POST("/webhook", func(c *gin.Context) {
		traceID := uuid.NewString()

		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			log.Printf("⚠️ [%s] Invalid webhook payload: %v", traceID, err)
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "trace_id": traceID})
			return
		}

		h.HandleUpdate(c.Request.Context(), update)
		c.JSON(http.StatusOK, gin.H{"status": "success", "trace_id": traceID})
	})

	return router
}

// RegisterWebhook points the Telegram Bot API at webhookURL.
func (h *BotHandler) RegisterWebhook(webhookURL string) error {
	webhook, err := tgbotapi.NewWebhook(webhookURL + "/webhook")
	if err != nil {
		return err
	}
	if _, err := h.bot.Request(webhook); err != nil {
		return err
	}

	info, err := h.bot.GetWebhookInfo()
	if err != nil {
		return err
	}
	if info.LastErrorDate != 0 {
		log.Printf("⚠️ Telegram webhook last error: %s", info.LastErrorMessage)
	}
	log.Printf("✅ Webhook registered at %s/webhook", webhookURL)
	return nil
}
