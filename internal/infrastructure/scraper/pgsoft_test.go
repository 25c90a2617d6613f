package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/constants"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractRTPFromInfoSection(t *testing.T) {
	doc := mustDoc(t, `
		<div class="game-info-item">Volatility: high</div>
		<div class="game-info-item">RTP rate is 96.95% overall</div>
	`)
	if got := extractRTP(doc); got != "96.95%" {
		t.Errorf("extractRTP = %q, want 96.95%%", got)
	}
}

func TestExtractRTPFromDescription(t *testing.T) {
	doc := mustDoc(t, `
		<div class="game-description">This slot has an RTP of 96.75% and great bonuses.</div>
	`)
	if got := extractRTP(doc); got != "96.75%" {
		t.Errorf("extractRTP = %q, want 96.75%%", got)
	}
}

func TestExtractRTPFromFeatureBlock(t *testing.T) {
	doc := mustDoc(t, `
		<div class="game-feature">Return to player of 96.50% with cascading wins</div>
	`)
	if got := extractRTP(doc); got != "96.50%" {
		t.Errorf("extractRTP = %q, want 96.50%%", got)
	}
}

func TestExtractRTPNotFound(t *testing.T) {
	doc := mustDoc(t, `<div class="game-description">No numbers here.</div>`)
	if got := extractRTP(doc); got != "N/A" {
		t.Errorf("extractRTP = %q, want N/A", got)
	}
}

func TestExtractGameID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.pgsoft.com/en/games/pg-soft-mahjong-ways/", "pg-soft-mahjong-ways"},
		{"/games/pg-soft-lucky-neko", "pg-soft-lucky-neko"},
		{"https://www.pgsoft.com/en/about/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractGameID(tt.url); got != tt.want {
			t.Errorf("ExtractGameID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestFormatGameName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"pg-soft-mahjong-ways-2", "Mahjong Ways 2"},
		{"pg-soft-lucky-neko", "Lucky Neko"},
		{"", "Unknown Game"},
	}
	for _, tt := range tests {
		if got := FormatGameName(tt.id); got != tt.want {
			t.Errorf("FormatGameName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFallbackImageURL(t *testing.T) {
	if got := FallbackImageURL("pg-soft-lucky-neko"); !strings.Contains(got, "lucky-neko") {
		t.Errorf("expected known artwork, got %q", got)
	}
	if got := FallbackImageURL("pg-soft-nothing"); got != constants.DefaultGameImageURL {
		t.Errorf("expected default image, got %q", got)
	}
}
