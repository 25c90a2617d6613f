package entity

import (
	"time"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
)

// Game is one PGSoft catalog record, keyed by GameID.
type Game struct {
	GameID      string    `json:"game_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	RTP         string    `json:"rtp"`
	DetailURL   string    `json:"detail_url"`
	LastUpdated time.Time `json:"last_updated"`
}

// Fresh reports whether the record is still inside the freshness window.
// Staleness triggers a re-fetch, not deletion.
func (g Game) Fresh(now time.Time) bool {
	if g.LastUpdated.IsZero() {
		return false
	}
	return now.Sub(g.LastUpdated) < constants.GameFreshnessWindow
}

// GameInfo is the composed reply for a slot game request. ImageURL may be
// empty when no artwork could be resolved.
type GameInfo struct {
	Text     string
	ImageURL string
}
