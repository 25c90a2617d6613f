package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
)

type fakeAI struct {
	calls    int
	response string
	err      error
}

func (f *fakeAI) GenerateText(_ context.Context, _, _ string, _ int32) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.response != "" {
		return f.response, nil
	}
	return fmt.Sprintf("generated-%d", f.calls), nil
}

func (f *fakeAI) Close() error { return nil }

func TestDailyPredictionCachedSameDay(t *testing.T) {
	ai := &fakeAI{}
	u := NewPredictionUsecase(ai)

	first := u.GetDailyPrediction(context.Background(), "vietnam", "vi")
	second := u.GetDailyPrediction(context.Background(), "vietnam", "vi")

	if ai.calls != 1 {
		t.Fatalf("expected 1 generation, got %d", ai.calls)
	}
	if first != second {
		t.Errorf("expected identical cached prediction, got %q and %q", first, second)
	}
}

func TestDailyPredictionRegeneratedNextDay(t *testing.T) {
	ai := &fakeAI{}
	u := NewPredictionUsecase(ai)

	day := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	u.now = func() time.Time { return day }
	first := u.GetDailyPrediction(context.Background(), "thai", "en")

	u.now = func() time.Time { return day.Add(2 * time.Hour) }
	second := u.GetDailyPrediction(context.Background(), "thai", "en")

	if ai.calls != 2 {
		t.Fatalf("expected regeneration after midnight, got %d calls", ai.calls)
	}
	if first == second {
		t.Errorf("expected a new prediction for the new date")
	}
}

func TestDailyPredictionPerTypeAndLanguage(t *testing.T) {
	ai := &fakeAI{}
	u := NewPredictionUsecase(ai)

	u.GetDailyPrediction(context.Background(), "vietnam", "vi")
	u.GetDailyPrediction(context.Background(), "vietnam", "en")
	u.GetDailyPrediction(context.Background(), "4d", "vi")

	if ai.calls != 3 {
		t.Errorf("expected separate cache slots per type and language, got %d calls", ai.calls)
	}
}

func TestDailyPredictionFailureNotCached(t *testing.T) {
	ai := &fakeAI{err: errors.New("upstream down")}
	u := NewPredictionUsecase(ai)

	got := u.GetDailyPrediction(context.Background(), "vietnam", "en")
	if !strings.Contains(got, "error occurred") {
		t.Errorf("expected English apology, got %q", got)
	}
	if !strings.Contains(got, "upstream down") {
		t.Errorf("apology must embed the error detail, got %q", got)
	}

	ai.err = nil
	recovered := u.GetDailyPrediction(context.Background(), "vietnam", "en")
	if ai.calls != 2 {
		t.Fatalf("expected retry after failure, got %d calls", ai.calls)
	}
	if strings.Contains(recovered, "error occurred") {
		t.Errorf("apology must not be cached, got %q", recovered)
	}
}

func TestDailyPredictionApologyEmbedsErrorPerLanguage(t *testing.T) {
	ai := &fakeAI{err: errors.New("quota exhausted")}
	u := NewPredictionUsecase(ai)

	for _, lang := range []string{"vi", "en", "th", "zh"} {
		got := u.GetDailyPrediction(context.Background(), "4d", lang)
		if !strings.Contains(got, "quota exhausted") {
			t.Errorf("%s apology missing error detail: %q", lang, got)
		}
	}
}

func TestDailyPredictionDefaultsSubstituted(t *testing.T) {
	ai := &fakeAI{}
	u := NewPredictionUsecase(ai)

	u.GetDailyPrediction(context.Background(), "powerball", "xx")
	u.GetDailyPrediction(context.Background(), string(entity.DefaultLottery), string(entity.DefaultLanguage))

	if ai.calls != 1 {
		t.Errorf("unknown type and language should share the default cache slot, got %d calls", ai.calls)
	}
}

func TestDailyPredictionContainsHeaderAndFooter(t *testing.T) {
	ai := &fakeAI{response: "lucky numbers"}
	u := NewPredictionUsecase(ai)
	u.now = func() time.Time { return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) }

	got := u.GetDailyPrediction(context.Background(), "vietnam", "en")

	if !strings.Contains(got, "VIETNAM LOTTERY PREDICTION FOR 15/03/2025") {
		t.Errorf("missing dated header: %q", got)
	}
	if !strings.Contains(got, "lucky numbers") {
		t.Errorf("missing generated body: %q", got)
	}
	if !strings.Contains(got, "bet responsibly") {
		t.Errorf("missing footer: %q", got)
	}
}
