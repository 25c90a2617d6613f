package entity

// LanguageCode identifies a supported bot language.
type LanguageCode string

const (
	Vietnamese LanguageCode = "vi"
	English    LanguageCode = "en"
	Thai       LanguageCode = "th"
	Chinese    LanguageCode = "zh"
)

// DefaultLanguage is used for unknown users and unrecognized codes.
const DefaultLanguage = Vietnamese

// SupportedLanguages in keyboard display order.
func SupportedLanguages() []LanguageCode {
	return []LanguageCode{Vietnamese, English, Chinese, Thai}
}

// ParseLanguage validates a raw code. The boolean is false for anything
// outside the supported set.
func ParseLanguage(raw string) (LanguageCode, bool) {
	switch LanguageCode(raw) {
	case Vietnamese, English, Thai, Chinese:
		return LanguageCode(raw), true
	}
	return DefaultLanguage, false
}
