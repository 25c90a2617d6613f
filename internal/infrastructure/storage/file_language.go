package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/repository"
)

// fileLanguageStore persists user language preferences as a flat JSON
// key→value file, fully rewritten on every save.
type fileLanguageStore struct {
	mu   sync.Mutex
	path string
}

// NewFileLanguageStore creates a file-backed LanguagePrefRepository.
func NewFileLanguageStore(path string) repository.LanguagePrefRepository {
	return &fileLanguageStore{path: path}
}

func (s *fileLanguageStore) Load() (map[string]entity.LanguageCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]entity.LanguageCode), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	prefs := make(map[string]entity.LanguageCode)
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return prefs, nil
}

func (s *fileLanguageStore) Save(prefs map[string]entity.LanguageCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode language preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
