// Package locale provides translated labels for list screens.
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/internal"
)

//go:embed translations/*.toml
var translations embed.FS

var supported = []string{"active.en.toml", "active.ja.toml"}

// Localizer formats list strings for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New returns a localizer for lang, a BCP 47 tag such as "en" or "ja-JP".
// Unknown or malformed tags fall back to English.
func New(lang string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, name := range supported {
		data, err := translations.ReadFile("translations/" + name)
		if err != nil {
			return nil, fmt.Errorf("locale: %w", err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("locale: parse %s: %w", name, err)
		}
	}

	tag, err := language.Parse(lang)
	if err != nil {
		internal.GetInternalLogger().Warn("Unknown language; using English", "language", lang, "error", err)
		tag = language.English
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	_, index, _ := matcher.Match(tag)
	matched := bundle.LanguageTags()[index]

	return &Localizer{
		tag:       matched,
		localizer: i18n.NewLocalizer(bundle, matched.String()),
	}, nil
}

// Tag returns the language actually used.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// ItemLabel returns the label for the row at a zero-based index.
func (l *Localizer) ItemLabel(index int) string {
	return l.localize("ItemLabel", map[string]any{"Number": index + 1}, nil)
}

// ListSummary describes how many items a list holds.
func (l *Localizer) ListSummary(count int) string {
	return l.localize("ListSummary", map[string]any{"Count": count}, count)
}

// VisibleRange describes the zero-based, inclusive range [first, last] of count rows.
func (l *Localizer) VisibleRange(first, last, count int) string {
	return l.localize("VisibleRange", map[string]any{
		"First": first + 1,
		"Last":  last + 1,
		"Count": count,
	}, nil)
}

func (l *Localizer) localize(id string, data map[string]any, pluralCount any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  pluralCount,
	})
	if err != nil {
		internal.GetInternalLogger().Error("Failed to localize message", "id", id, "error", err)
		return id
	}
	return msg
}
