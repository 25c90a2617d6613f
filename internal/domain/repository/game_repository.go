package repository

import (
	"context"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
)

// GameRepository stores catalog records, one row per game identifier.
type GameRepository interface {
	Get(ctx context.Context, gameID string) (entity.Game, bool, error)
	Upsert(ctx context.Context, game entity.Game) error
	List(ctx context.Context) ([]entity.Game, error)
}

// GameFetcher retrieves catalog data from the external site.
type GameFetcher interface {
	// FetchGameDetails returns the detail-page record for gameID. On a
	// failed fetch it returns a placeholder record together with the error,
	// so the caller can still persist something for the freshness window.
	FetchGameDetails(ctx context.Context, gameID string) (entity.Game, error)

	// FetchGameList returns the catalog index (best effort, may be empty).
	FetchGameList(ctx context.Context) ([]entity.Game, error)
}
