package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
)

func TestMemoryGameStoreRoundTrip(t *testing.T) {
	store := NewMemoryGameStore()
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "pg-soft-lucky-neko"); err != nil || found {
		t.Fatalf("expected miss on empty store, found=%v err=%v", found, err)
	}

	game := entity.Game{
		GameID:      "pg-soft-lucky-neko",
		Name:        "Lucky Neko",
		RTP:         "96.73%",
		LastUpdated: time.Now().UTC(),
	}
	if err := store.Upsert(ctx, game); err != nil {
		t.Fatal(err)
	}

	got, found, err := store.Get(ctx, "pg-soft-lucky-neko")
	if err != nil || !found {
		t.Fatalf("expected hit, found=%v err=%v", found, err)
	}
	if got.Name != "Lucky Neko" {
		t.Errorf("got %q", got.Name)
	}

	// Upsert replaces, never duplicates.
	game.RTP = "96.90%"
	if err := store.Upsert(ctx, game); err != nil {
		t.Fatal(err)
	}
	games, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].RTP != "96.90%" {
		t.Errorf("upsert did not replace, RTP=%q", games[0].RTP)
	}
}

func TestMemoryGameStoreListSorted(t *testing.T) {
	store := NewMemoryGameStore()
	ctx := context.Background()

	for _, id := range []string{"pg-soft-c", "pg-soft-a", "pg-soft-b"} {
		store.Upsert(ctx, entity.Game{GameID: id, Name: id})
	}
	games, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].GameID > games[i].GameID {
			t.Fatalf("list not sorted: %v before %v", games[i-1].GameID, games[i].GameID)
		}
	}
}

func TestGameFreshness(t *testing.T) {
	now := time.Now().UTC()
	tests := []struct {
		name string
		game entity.Game
		want bool
	}{
		{"just updated", entity.Game{LastUpdated: now}, true},
		{"29 days old", entity.Game{LastUpdated: now.Add(-29 * 24 * time.Hour)}, true},
		{"31 days old", entity.Game{LastUpdated: now.Add(-31 * 24 * time.Hour)}, false},
		{"never updated", entity.Game{}, false},
	}
	for _, tt := range tests {
		if got := tt.game.Fresh(now); got != tt.want {
			t.Errorf("%s: Fresh = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFileLanguageStoreMissingFile(t *testing.T) {
	store := NewFileLanguageStore(filepath.Join(t.TempDir(), "missing.json"))
	prefs, err := store.Load()
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(prefs) != 0 {
		t.Errorf("expected empty preferences, got %v", prefs)
	}
}

func TestFileLanguageStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_languages.json")
	store := NewFileLanguageStore(path)

	want := map[string]entity.LanguageCode{
		"42": entity.Thai,
		"7":  entity.English,
	}
	if err := store.Save(want); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("key %s: got %s, want %s", k, got[k], v)
		}
	}
}
