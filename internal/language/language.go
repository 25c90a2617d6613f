// Package language holds the static translation tables and the fallback
// lookup used everywhere a user-visible string is produced.
package language

import (
	"log"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
)

var tables = map[entity.LanguageCode]map[string]string{
	entity.Vietnamese: vi,
	entity.English:    en,
	entity.Thai:       th,
	entity.Chinese:    zh,
}

// Text resolves key in code's table. Fallback order: requested language,
// default language, then the key itself verbatim. Never returns empty for a
// non-empty key; callers rely on that.
func Text(key string, code entity.LanguageCode) string {
	if table, ok := tables[code]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if code != entity.DefaultLanguage {
		log.Printf("⚠️ Translation key %q not found in %s, trying default language", key, code)
		if value, ok := tables[entity.DefaultLanguage][key]; ok {
			return value
		}
	}
	log.Printf("⚠️ Translation key %q not found in any language", key)
	return key
}

// Name returns the display name of a language code, "Unknown" for
// anything unrecognized.
func Name(code entity.LanguageCode) string {
	switch code {
	case entity.Vietnamese:
		return "Tiếng Việt"
	case entity.English:
		return "English"
	case entity.Thai:
		return "ภาษาไทย"
	case entity.Chinese:
		return "简体中文"
	}
	return "Unknown"
}
