package usecase

import (
	"testing"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
)

type fakeLanguageStore struct {
	prefs map[string]entity.LanguageCode
	saves int
}

func (s *fakeLanguageStore) Load() (map[string]entity.LanguageCode, error) {
	return s.prefs, nil
}

func (s *fakeLanguageStore) Save(prefs map[string]entity.LanguageCode) error {
	s.saves++
	s.prefs = prefs
	return nil
}

func TestResolveLanguageDefault(t *testing.T) {
	u, err := NewLanguageUsecase(&fakeLanguageStore{})
	if err != nil {
		t.Fatal(err)
	}
	if got := u.ResolveLanguage(42); got != entity.DefaultLanguage {
		t.Errorf("expected default language for unknown user, got %s", got)
	}
}

func TestSetLanguagePersists(t *testing.T) {
	store := &fakeLanguageStore{}
	u, err := NewLanguageUsecase(store)
	if err != nil {
		t.Fatal(err)
	}

	code, err := u.SetLanguage(42, "th")
	if err != nil {
		t.Fatal(err)
	}
	if code != entity.Thai {
		t.Errorf("expected th, got %s", code)
	}
	if got := u.ResolveLanguage(42); got != entity.Thai {
		t.Errorf("expected stored preference, got %s", got)
	}
	if store.saves != 1 {
		t.Errorf("expected one save, got %d", store.saves)
	}
	if store.prefs["42"] != entity.Thai {
		t.Errorf("expected persisted preference keyed by user ID, got %v", store.prefs)
	}
}

func TestSetLanguageRejectsUnsupported(t *testing.T) {
	store := &fakeLanguageStore{}
	u, err := NewLanguageUsecase(store)
	if err != nil {
		t.Fatal(err)
	}

	u.SetLanguage(42, "en")
	if _, err := u.SetLanguage(42, "fr"); err == nil {
		t.Fatal("expected error for unsupported code")
	}
	if got := u.ResolveLanguage(42); got != entity.English {
		t.Errorf("rejected code must not change the preference, got %s", got)
	}
}

func TestLoadedPreferencesSurviveRestart(t *testing.T) {
	store := &fakeLanguageStore{prefs: map[string]entity.LanguageCode{"7": entity.Chinese}}
	u, err := NewLanguageUsecase(store)
	if err != nil {
		t.Fatal(err)
	}
	if got := u.ResolveLanguage(7); got != entity.Chinese {
		t.Errorf("expected loaded preference, got %s", got)
	}
}
