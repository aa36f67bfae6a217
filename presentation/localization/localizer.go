package localization

import (
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"netprio/domain/adapter"
)

const (
	English = "en"
	Korean  = "ko"
)

var Supported = []string{English, Korean}

// Localizer renders UI and status strings in the current language.
// A missing message renders as its ID rather than failing.
type Localizer struct {
	bundle    *i18n.Bundle
	lang      string
	localizer *i18n.Localizer
}

func NewLocalizer(lang string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, english...); err != nil {
		return nil, fmt.Errorf("failed to register english messages: %w", err)
	}
	if err := bundle.AddMessages(language.Korean, korean...); err != nil {
		return nil, fmt.Errorf("failed to register korean messages: %w", err)
	}
	l := &Localizer{bundle: bundle}
	if err := l.SetLanguage(lang); err != nil {
		return nil, err
	}
	return l, nil
}

func IsSupported(lang string) bool {
	lang = normalize(lang)
	for _, s := range Supported {
		if s == lang {
			return true
		}
	}
	return false
}

func (l *Localizer) Language() string {
	return l.lang
}

func (l *Localizer) SetLanguage(lang string) error {
	lang = normalize(lang)
	if lang == "" {
		lang = English
	}
	if !IsSupported(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	l.lang = lang
	l.localizer = i18n.NewLocalizer(l.bundle, lang)
	return nil
}

// Toggle switches between English and Korean and returns the new language.
func (l *Localizer) Toggle() string {
	next := Korean
	if l.lang == Korean {
		next = English
	}
	_ = l.SetLanguage(next)
	return next
}

func (l *Localizer) T(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

func (l *Localizer) KindLabel(kind adapter.Kind) string {
	switch kind {
	case adapter.Wired:
		return l.T(MsgAdapterTypeWired, nil)
	case adapter.Wireless:
		return l.T(MsgAdapterTypeWireless, nil)
	default:
		return l.T(MsgAdapterTypeUnknown, nil)
	}
}

func (l *Localizer) AdaptersFound(n int) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    MsgStatusAdaptersFound,
		TemplateData: map[string]any{"Count": n},
		PluralCount:  n,
	})
	if err != nil {
		return MsgStatusAdaptersFound
	}
	return msg
}

func (l *Localizer) NoAdapters() string {
	return l.T(MsgStatusNoAdapters, nil)
}

func (l *Localizer) NoHeader() string {
	return l.T(MsgStatusNoHeader, nil)
}

func (l *Localizer) Error(detail string) string {
	return l.T(MsgStatusError, map[string]any{"Detail": detail})
}

func (l *Localizer) PriorityChanged() string {
	return l.T(MsgStatusPriorityChanged, nil)
}

func (l *Localizer) PriorityFailed(detail string) string {
	return l.T(MsgStatusPriorityFailed, map[string]any{"Detail": detail})
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
