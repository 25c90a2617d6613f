package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
)

func TestDeriveGameID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Mahjong Ways 2", "pg-soft-mahjong-ways-2"},
		{"mahjong ways 2", "pg-soft-mahjong-ways-2"},
		{"  Lucky Neko  ", "pg-soft-lucky-neko"},
		{"Totally Unknown Game", "pg-soft-totally-unknown-game"},
		{"Caishen Wins!", "pg-soft-caishen-wins-"},
	}
	for _, tt := range tests {
		if got := DeriveGameID(tt.name); got != tt.want {
			t.Errorf("DeriveGameID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDeriveGameIDDeterministic(t *testing.T) {
	a := DeriveGameID("Dragon Hatch")
	b := DeriveGameID("dragon hatch")
	if a != b {
		t.Errorf("same name must map to same ID: %q vs %q", a, b)
	}
}

type fakeGameStore struct {
	games   map[string]entity.Game
	upserts int
}

func newFakeGameStore() *fakeGameStore {
	return &fakeGameStore{games: make(map[string]entity.Game)}
}

func (s *fakeGameStore) Get(_ context.Context, gameID string) (entity.Game, bool, error) {
	game, ok := s.games[gameID]
	return game, ok, nil
}

func (s *fakeGameStore) Upsert(_ context.Context, game entity.Game) error {
	s.upserts++
	s.games[game.GameID] = game
	return nil
}

func (s *fakeGameStore) List(_ context.Context) ([]entity.Game, error) {
	var out []entity.Game
	for _, g := range s.games {
		out = append(out, g)
	}
	return out, nil
}

type fakeFetcher struct {
	detailCalls int
	failDetails bool
	listGames   []entity.Game
	listErr     error
}

func (f *fakeFetcher) FetchGameDetails(_ context.Context, gameID string) (entity.Game, error) {
	f.detailCalls++
	game := entity.Game{
		GameID:      gameID,
		Name:        "Fetched Game",
		Description: "A fetched description",
		ImageURL:    "https://example.com/game.jpg",
		RTP:         "96.95%",
		DetailURL:   "https://www.pgsoft.com/en/games/" + gameID + "/",
		LastUpdated: time.Now().UTC(),
	}
	if f.failDetails {
		game.Name = "Placeholder"
		game.ImageURL = ""
		game.RTP = "N/A"
		return game, errors.New("fetch failed")
	}
	return game, nil
}

func (f *fakeFetcher) FetchGameList(_ context.Context) ([]entity.Game, error) {
	return f.listGames, f.listErr
}

func TestGetGameInfoUsesFreshStoredRecord(t *testing.T) {
	ai := &fakeAI{response: "an overview"}
	store := newFakeGameStore()
	fetcher := &fakeFetcher{}
	u := NewSlotGameUsecase(ai, store, fetcher)

	store.games["pg-soft-lucky-neko"] = entity.Game{
		GameID:      "pg-soft-lucky-neko",
		Name:        "Lucky Neko",
		RTP:         "96.73%",
		ImageURL:    "https://example.com/neko.jpg",
		LastUpdated: time.Now().UTC(),
	}

	info := u.GetGameInfo(context.Background(), "Lucky Neko", entity.English)

	if fetcher.detailCalls != 0 {
		t.Errorf("fresh stored record must not trigger a fetch, got %d", fetcher.detailCalls)
	}
	if !strings.Contains(info.Text, "LUCKY NEKO") {
		t.Errorf("missing game header: %q", info.Text)
	}
	if !strings.Contains(info.Text, "RTP: 96.73%") {
		t.Errorf("missing RTP label: %q", info.Text)
	}
	if info.ImageURL != "https://example.com/neko.jpg" {
		t.Errorf("unexpected image URL %q", info.ImageURL)
	}
}

func TestGetGameInfoRefetchesStaleRecord(t *testing.T) {
	ai := &fakeAI{response: "an overview"}
	store := newFakeGameStore()
	fetcher := &fakeFetcher{}
	u := NewSlotGameUsecase(ai, store, fetcher)

	store.games["pg-soft-dragon-hatch"] = entity.Game{
		GameID:      "pg-soft-dragon-hatch",
		Name:        "Dragon Hatch",
		LastUpdated: time.Now().UTC().Add(-31 * 24 * time.Hour),
	}

	u.GetGameInfo(context.Background(), "Dragon Hatch", entity.English)

	if fetcher.detailCalls != 1 {
		t.Errorf("stale record must be refetched, got %d calls", fetcher.detailCalls)
	}
	if store.upserts != 1 {
		t.Errorf("refetched record must be stored, got %d upserts", store.upserts)
	}
}

func TestGetGameInfoFetchFailureFallsBackToGeneric(t *testing.T) {
	ai := &fakeAI{response: "a generic overview"}
	store := newFakeGameStore()
	fetcher := &fakeFetcher{failDetails: true}
	u := NewSlotGameUsecase(ai, store, fetcher)

	info := u.GetGameInfo(context.Background(), "Wild Bandito", entity.English)

	if !strings.Contains(info.Text, "a generic overview") {
		t.Errorf("expected generic overview, got %q", info.Text)
	}
	// The generic framing has no RTP line.
	if strings.Contains(info.Text, "🔍 RTP:") {
		t.Errorf("generic info should not carry an RTP label: %q", info.Text)
	}
	if info.ImageURL == "" {
		t.Errorf("expected a fallback image for a known title")
	}
	if store.upserts != 1 {
		t.Errorf("failed fetch must still persist the placeholder, got %d upserts", store.upserts)
	}
}

func TestGetGameInfoAIFailureReturnsLocalizedError(t *testing.T) {
	ai := &fakeAI{err: errors.New("quota")}
	store := newFakeGameStore()
	fetcher := &fakeFetcher{}
	u := NewSlotGameUsecase(ai, store, fetcher)

	info := u.GetGameInfo(context.Background(), "Piggy Gold", entity.English)
	if !strings.Contains(info.Text, "Piggy Gold") || !strings.Contains(info.Text, "❌") {
		t.Errorf("expected localized error naming the game, got %q", info.Text)
	}
}

func TestPopularGamesStaticFallback(t *testing.T) {
	ai := &fakeAI{}
	store := newFakeGameStore()
	fetcher := &fakeFetcher{listErr: errors.New("site down")}
	u := NewSlotGameUsecase(ai, store, fetcher)

	list := u.PopularGames(context.Background(), entity.English)

	if !strings.Contains(list, "Mahjong Ways") {
		t.Errorf("static fallback list missing known title: %q", list)
	}
	if !strings.Contains(list, "/slotgame") {
		t.Errorf("usage hint missing: %q", list)
	}
}

func TestPopularGamesPrefersStoredRecords(t *testing.T) {
	ai := &fakeAI{}
	store := newFakeGameStore()
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		store.games[name] = entity.Game{GameID: name, Name: "Stored " + name}
	}
	fetcher := &fakeFetcher{listErr: errors.New("should not be called")}
	u := NewSlotGameUsecase(ai, store, fetcher)

	list := u.PopularGames(context.Background(), entity.English)
	if !strings.Contains(list, "Stored A") {
		t.Errorf("stored names missing from list: %q", list)
	}
}
