package usecase

import (
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/repository"
	"github.com/nova88bet/telegram-lottery-bot/internal/language"
)

// LanguageUsecase tracks per-user language preferences and resolves
// translated message templates.
type LanguageUsecase struct {
	store repository.LanguagePrefRepository

	mu    sync.RWMutex
	prefs map[string]entity.LanguageCode
}

// NewLanguageUsecase loads existing preferences from the store. A missing
// preference file is not an error, users simply start on the default.
func NewLanguageUsecase(store repository.LanguagePrefRepository) (*LanguageUsecase, error) {
	prefs, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load language preferences: %w", err)
	}
	if prefs == nil {
		prefs = make(map[string]entity.LanguageCode)
	}
	return &LanguageUsecase{store: store, prefs: prefs}, nil
}

// ResolveLanguage returns the stored preference for userID, falling back to
// the default language when nothing is stored.
func (u *LanguageUsecase) ResolveLanguage(userID int64) entity.LanguageCode {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if code, ok := u.prefs[strconv.FormatInt(userID, 10)]; ok {
		return code
	}
	return entity.DefaultLanguage
}

// SetLanguage stores a new preference for userID. Unsupported codes are
// rejected and the stored preference is left unchanged.
func (u *LanguageUsecase) SetLanguage(userID int64, raw string) (entity.LanguageCode, error) {
	code, ok := entity.ParseLanguage(raw)
	if !ok {
		return "", fmt.Errorf("unsupported language code %q", raw)
	}

	u.mu.Lock()
	u.prefs[strconv.FormatInt(userID, 10)] = code
	snapshot := make(map[string]entity.LanguageCode, len(u.prefs))
	for k, v := range u.prefs {
		snapshot[k] = v
	}
	u.mu.Unlock()

	if err := u.store.Save(snapshot); err != nil {
		log.Printf("⚠️ Failed to persist language preferences: %v", err)
	}
	return code, nil
}

// Text resolves a message template for the user's language.
func (u *LanguageUsecase) Text(key string, userID int64) string {
	return language.Text(key, u.ResolveLanguage(userID))
}

// TextIn resolves a message template for an explicit language.
func (u *LanguageUsecase) TextIn(key string, code entity.LanguageCode) string {
	return language.Text(key, code)
}
