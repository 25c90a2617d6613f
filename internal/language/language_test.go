package language

import (
	"testing"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
)

func TestTextResolvesEveryKeyInEveryLanguage(t *testing.T) {
	keys := []string{
		"help_message",
		"welcome_caption",
		"welcome_message",
		"language_selection",
		"language_updated",
		"command_not_recognized",
		"slot_game_error",
		"promotion_button",
		"bet_now_button",
		"slots_rtp_button",
		"jackpot_button",
	}
	for _, code := range entity.SupportedLanguages() {
		for _, key := range keys {
			got := Text(key, code)
			if got == "" || got == key {
				t.Errorf("Text(%q, %s) fell through to %q", key, code, got)
			}
		}
	}
}

func TestTextFallsBackToDefaultLanguage(t *testing.T) {
	// An unsupported code must still produce the default-language text.
	got := Text("help_message", entity.LanguageCode("fr"))
	if got != Text("help_message", entity.DefaultLanguage) {
		t.Errorf("expected default-language fallback, got %q", got)
	}
}

func TestTextReturnsKeyWhenMissingEverywhere(t *testing.T) {
	if got := Text("no_such_key", entity.English); got != "no_such_key" {
		t.Errorf("expected key verbatim, got %q", got)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		code entity.LanguageCode
		want string
	}{
		{entity.Vietnamese, "Tiếng Việt"},
		{entity.English, "English"},
		{entity.Thai, "ภาษาไทย"},
		{entity.Chinese, "简体中文"},
		{entity.LanguageCode("xx"), "Unknown"},
	}
	for _, tt := range tests {
		if got := Name(tt.code); got != tt.want {
			t.Errorf("Name(%s) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
