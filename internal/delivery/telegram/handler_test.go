package telegram

import (
	"context"
	"strings"
	"testing"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
	"github.com/nova88bet/telegram-lottery-bot/internal/usecase"
)

func TestShortCaption(t *testing.T) {
	fullText := `
<b>🎮 GAME INFORMATION: LUCKY NEKO 🎮</b>

Some long overview text that would blow past the photo caption limit.

<b>🔍 RTP: 96.73%</b>
`
	caption := shortCaption("Lucky Neko", fullText)
	if !strings.Contains(caption, "<b>Lucky Neko</b>") {
		t.Errorf("caption missing bold game name: %q", caption)
	}
	if !strings.Contains(caption, "RTP: 96.73%") {
		t.Errorf("caption missing RTP: %q", caption)
	}
}

func TestShortCaptionNA(t *testing.T) {
	caption := shortCaption("Mystery Game", "header\n<b>🔍 RTP: N/A</b>\nfooter")
	if !strings.Contains(caption, "RTP: N/A") {
		t.Errorf("caption should carry N/A RTP: %q", caption)
	}
}

func TestShortCaptionWithoutRTP(t *testing.T) {
	caption := shortCaption("Mystery Game", "no rtp anywhere")
	if caption != "<b>Mystery Game</b>" {
		t.Errorf("caption should be just the name, got %q", caption)
	}
}

func TestShortCaptionRespectsLimit(t *testing.T) {
	caption := shortCaption(strings.Repeat("x", 3000), "")
	if got := len([]rune(caption)); got > constants.PhotoCaptionLimit {
		t.Errorf("caption length %d exceeds limit %d", got, constants.PhotoCaptionLimit)
	}
}

func TestSlotGameArg(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"/slotgame", ""},
		{"/slotgame   ", ""},
		{"/slotgame Mahjong Ways 2", "Mahjong Ways 2"},
		{"/slotgame  Lucky Neko ", "Lucky Neko"},
	}
	for _, tt := range tests {
		if got := slotGameArg(tt.command); got != tt.want {
			t.Errorf("slotGameArg(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}

type stubAI struct{ calls int }

func (s *stubAI) GenerateText(context.Context, string, string, int32) (string, error) {
	s.calls++
	return "text", nil
}

func (s *stubAI) Close() error { return nil }

type stubGameStore struct{ gets int }

func (s *stubGameStore) Get(context.Context, string) (entity.Game, bool, error) {
	s.gets++
	return entity.Game{}, false, nil
}

func (s *stubGameStore) Upsert(context.Context, entity.Game) error { return nil }

func (s *stubGameStore) List(context.Context) ([]entity.Game, error) { return nil, nil }

type stubFetcher struct{ calls int }

func (s *stubFetcher) FetchGameDetails(_ context.Context, gameID string) (entity.Game, error) {
	s.calls++
	return entity.Game{GameID: gameID}, nil
}

func (s *stubFetcher) FetchGameList(context.Context) ([]entity.Game, error) {
	s.calls++
	return nil, nil
}

type stubLangStore struct{}

func (stubLangStore) Load() (map[string]entity.LanguageCode, error) { return nil, nil }

func (stubLangStore) Save(map[string]entity.LanguageCode) error { return nil }

func TestBareSlotGameCommandSkipsResolver(t *testing.T) {
	ai := &stubAI{}
	store := &stubGameStore{}
	fetcher := &stubFetcher{}
	languages, err := usecase.NewLanguageUsecase(stubLangStore{})
	if err != nil {
		t.Fatal(err)
	}

	h := &BotHandler{
		languages: languages,
		slotGames: usecase.NewSlotGameUsecase(ai, store, fetcher),
	}

	h.handleSlotGame(context.Background(), 1, "/slotgame", entity.English)
	h.handleSlotGame(context.Background(), 1, "/slotgame   ", entity.English)

	if ai.calls != 0 || store.gets != 0 || fetcher.calls != 0 {
		t.Errorf("bare /slotgame must not touch the resolver: ai=%d store=%d fetcher=%d",
			ai.calls, store.gets, fetcher.calls)
	}
}

func TestLanguageKeyboardCoversAllLanguages(t *testing.T) {
	keyboard := languageKeyboard()
	var datas []string
	for _, row := range keyboard.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData != nil {
				datas = append(datas, *btn.CallbackData)
			}
		}
	}
	joined := strings.Join(datas, " ")
	for _, want := range []string{"lang_vi", "lang_en", "lang_zh", "lang_th"} {
		if !strings.Contains(joined, want) {
			t.Errorf("language keyboard missing %s: %v", want, datas)
		}
	}
}
