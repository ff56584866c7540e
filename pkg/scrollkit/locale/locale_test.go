package locale_test

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/locale"
)

func TestEnglish(t *testing.T) {
	l, err := locale.New("en-US")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if l.Tag() != language.English {
		t.Errorf("expected English, got %v", l.Tag())
	}

	tests := []struct {
		got  string
		want string
	}{
		{l.ItemLabel(0), "Item 1"},
		{l.ItemLabel(41), "Item 42"},
		{l.ListSummary(1), "1 item"},
		{l.ListSummary(7), "7 items"},
		{l.VisibleRange(0, 4, 20), "Showing 1-5 of 20"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, tt.got)
		}
	}
}

func TestJapanese(t *testing.T) {
	l, err := locale.New("ja")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if l.Tag() != language.Japanese {
		t.Errorf("expected Japanese, got %v", l.Tag())
	}
	if got := l.ItemLabel(2); got != "項目 3" {
		t.Errorf("expected %q, got %q", "項目 3", got)
	}
	if got := l.ListSummary(1); got != "1 件" {
		t.Errorf("expected %q, got %q", "1 件", got)
	}
}

func TestFallback(t *testing.T) {
	for _, lang := range []string{"fr", "not a tag!"} {
		l, err := locale.New(lang)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", lang, err)
		}
		if l.Tag() != language.English {
			t.Errorf("New(%q): expected English fallback, got %v", lang, l.Tag())
		}
		if got := l.ItemLabel(0); got != "Item 1" {
			t.Errorf("New(%q): expected %q, got %q", lang, "Item 1", got)
		}
	}
}
