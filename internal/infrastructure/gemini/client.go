package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/repository"
)

type geminiClient struct {
	client *genai.Client
}

// NewClient creates a Gemini AI client.
func NewClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiClient{client: client}, nil
}

// GenerateText sends a system/user instruction pair. Each call gets its own
// model so the system instruction and output budget never leak between the
// prediction and slot-game paths.
func (g *geminiClient) GenerateText(ctx context.Context, system, prompt string, maxTokens int32) (string, error) {
	model := g.client.GenerativeModel(constants.GeminiModelName)
	model.SetTemperature(constants.AITemperature)
	model.SetMaxOutputTokens(maxTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	var lastErr error
	for attempt := 1; attempt <= constants.MaxRetries; attempt++ {
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			log.Printf("❌ Gemini attempt %d/%d failed: %v", attempt, constants.MaxRetries, err)
			if !waitForRetry(ctx, attempt) {
				return "", ctx.Err()
			}
			continue
		}

		if len(resp.Candidates) == 0 {
			lastErr = fmt.Errorf("no response candidates")
			log.Printf("⚠️ Gemini attempt %d/%d: no candidates", attempt, constants.MaxRetries)
			if !waitForRetry(ctx, attempt) {
				return "", ctx.Err()
			}
			continue
		}

		text := extractText(resp)
		if strings.TrimSpace(text) == "" {
			lastErr = fmt.Errorf("empty response")
			log.Printf("⚠️ Gemini attempt %d/%d: empty response", attempt, constants.MaxRetries)
			if !waitForRetry(ctx, attempt) {
				return "", ctx.Err()
			}
			continue
		}

		return text, nil
	}

	return "", fmt.Errorf("generation failed after %d attempts: %w", constants.MaxRetries, lastErr)
}

// waitForRetry sleeps between attempts; false means the context expired.
// The final attempt falls through without waiting.
func waitForRetry(ctx context.Context, attempt int) bool {
	if attempt >= constants.MaxRetries {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(constants.RetryDelay * time.Second):
		return true
	}
}

func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

// Close releases the underlying client.
func (g *geminiClient) Close() error {
	return g.client.Close()
}
