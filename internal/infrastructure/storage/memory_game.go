package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/repository"
)

// memoryGameStore keeps game records for the lifetime of the process. Used
// when no database is configured.
type memoryGameStore struct {
	mu   sync.RWMutex
	data map[string]entity.Game
}

// NewMemoryGameStore creates an in-memory GameRepository.
func NewMemoryGameStore() repository.GameRepository {
	return &memoryGameStore{data: make(map[string]entity.Game)}
}

func (m *memoryGameStore) Get(_ context.Context, gameID string) (entity.Game, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	game, ok := m.data[gameID]
	return game, ok, nil
}

func (m *memoryGameStore) Upsert(_ context.Context, game entity.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[game.GameID] = game
	return nil
}

func (m *memoryGameStore) List(_ context.Context) ([]entity.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	games := make([]entity.Game, 0, len(m.data))
	for _, game := range m.data {
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].GameID < games[j].GameID })
	return games, nil
}
