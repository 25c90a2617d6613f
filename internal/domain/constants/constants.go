package constants

import "time"

// AI model constants
const (
	// GeminiModelName is the generation model used for all text synthesis
	GeminiModelName = "gemini-2.5-flash"

	// AITemperature keeps the "predictions" loose enough to look random
	AITemperature = 0.9

	// PredictionMaxTokens output budget for a daily lottery prediction
	PredictionMaxTokens = 1000

	// GameInfoMaxTokens output budget for a slot game write-up
	GameInfoMaxTokens = 500

	// MaxRetries for generation calls
	MaxRetries = 3

	// RetryDelay between generation attempts (seconds)
	RetryDelay = 10
)

// Game catalog constants
const (
	// CatalogBaseURL is the PGSoft game catalog root
	CatalogBaseURL = "https://www.pgsoft.com/en/games/"

	// GameIDPrefix namespaces identifiers derived from display names
	GameIDPrefix = "pg-soft-"

	// GameFreshnessWindow is how long a stored game record is trusted
	GameFreshnessWindow = 30 * 24 * time.Hour

	// FetchTimeout bounds a single catalog page fetch
	FetchTimeout = 10 * time.Second

	// DefaultGameImageURL is the generic fallback artwork
	DefaultGameImageURL = "https://www.pgslot9999.com/wp-content/uploads/2020/02/pgslot99-01.jpg"
)

// Promotion constants
const (
	// SiteURL is the promoted betting site
	SiteURL = "https://nova88bet.top"

	// WelcomeBannerURL promo banner sent after language selection
	WelcomeBannerURL = "https://nova88bet.top/wp-content/uploads/2025/05/photo_2025-05-08_15-19-02.jpg"
)

// Telegram constants
const (
	// PhotoCaptionLimit is Telegram's caption length ceiling
	PhotoCaptionLimit = 1024
)
