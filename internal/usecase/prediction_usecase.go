package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/repository"
)

type predictionKey struct {
	lottery  entity.LotteryType
	language entity.LanguageCode
}

type cachedPrediction struct {
	text string
	date string
}

// PredictionUsecase generates daily lottery predictions and caches one per
// lottery type and language for the current calendar date.
type PredictionUsecase struct {
	ai  repository.AIRepository
	now func() time.Time

	mu    sync.RWMutex
	cache map[predictionKey]cachedPrediction
}

// NewPredictionUsecase creates the service with an empty cache.
func NewPredictionUsecase(ai repository.AIRepository) *PredictionUsecase {
	return &PredictionUsecase{
		ai:    ai,
		now:   time.Now,
		cache: make(map[predictionKey]cachedPrediction),
	}
}

// GetDailyPrediction returns today's prediction for the given lottery type
// and language, generating and caching a new one when none exists for the
// current date. Unknown lottery types and language codes fall back to the
// defaults. On generation failure a localized apology embedding the error
// is returned and nothing is cached, so the next request retries.
func (u *PredictionUsecase) GetDailyPrediction(ctx context.Context, rawType, rawLang string) string {
	lottery, ok := entity.ParseLotteryType(rawType)
	if !ok {
		log.Printf("⚠️ Unknown prediction type %q, defaulting to %s", rawType, entity.DefaultLottery)
		lottery = entity.DefaultLottery
	}
	lang, ok := entity.ParseLanguage(rawLang)
	if !ok {
		log.Printf("⚠️ Invalid language code %q, defaulting to %s", rawLang, entity.DefaultLanguage)
		lang = entity.DefaultLanguage
	}

	key := predictionKey{lottery: lottery, language: lang}
	today := u.now().Format("2006-01-02")

	u.mu.RLock()
	entry, hit := u.cache[key]
	u.mu.RUnlock()
	if hit && entry.date == today {
		log.Printf("✅ Using cached %s prediction in %s for %s", lottery, lang, today)
		return entry.text
	}

	log.Printf("🎲 Generating new %s prediction in %s for %s", lottery, lang, today)
	prompts := predictionPrompts[lottery][lang]
	text, err := u.generate(ctx, prompts)
	if err != nil {
		log.Printf("❌ Failed to generate %s prediction in %s: %v", lottery, lang, err)
		return fmt.Sprintf(prompts.apology, err)
	}

	u.mu.Lock()
	u.cache[key] = cachedPrediction{text: text, date: today}
	u.mu.Unlock()
	return text
}

func (u *PredictionUsecase) generate(ctx context.Context, prompts promptSet) (string, error) {
	date := u.now().Format("02/01/2006")
	userPrompt := fmt.Sprintf(prompts.user, date)

	body, err := u.ai.GenerateText(ctx, prompts.system, userPrompt, constants.PredictionMaxTokens)
	if err != nil {
		return "", fmt.Errorf("prediction generation failed: %w", err)
	}

	header := fmt.Sprintf(prompts.header, date)
	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n", header, body, prompts.footer), nil
}
