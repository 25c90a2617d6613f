package repository

import "github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"

// LanguagePrefRepository persists user language preferences. The whole map
// is rewritten on every save; Load tolerates a missing backing file.
type LanguagePrefRepository interface {
	Load() (map[string]entity.LanguageCode, error)
	Save(prefs map[string]entity.LanguageCode) error
}
