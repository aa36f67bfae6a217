package localization

import (
	"strings"
	"testing"

	"netprio/domain/adapter"
)

func mustLocalizer(t *testing.T, lang string) *Localizer {
	t.Helper()
	l, err := NewLocalizer(lang)
	if err != nil {
		t.Fatalf("NewLocalizer(%q): %v", lang, err)
	}
	return l
}

func TestLocalizer_English(t *testing.T) {
	l := mustLocalizer(t, "en")
	if got := l.AdaptersFound(1); got != "Found 1 connected adapter." {
		t.Fatalf("unexpected singular: %q", got)
	}
	if got := l.AdaptersFound(3); got != "Found 3 connected adapters." {
		t.Fatalf("unexpected plural: %q", got)
	}
	if got := l.Error(l.NoHeader()); got != "Error occurred: Could not find header." {
		t.Fatalf("unexpected error message: %q", got)
	}
	if got := l.PriorityFailed("boom"); got != "Failed to change priority: boom" {
		t.Fatalf("unexpected failure message: %q", got)
	}
}

func TestLocalizer_Korean(t *testing.T) {
	l := mustLocalizer(t, "ko")
	if got := l.AdaptersFound(2); got != "총 2개의 연결된 어댑터를 찾았습니다." {
		t.Fatalf("unexpected korean count: %q", got)
	}
	if got := l.KindLabel(adapter.Wireless); got != "무선" {
		t.Fatalf("unexpected kind label: %q", got)
	}
	if got := l.NoAdapters(); got != "연결된 네트워크 어댑터가 없습니다." {
		t.Fatalf("unexpected no-adapters: %q", got)
	}
}

func TestLocalizer_Toggle(t *testing.T) {
	l := mustLocalizer(t, "")
	if l.Language() != English {
		t.Fatalf("expected default english, got %s", l.Language())
	}
	if l.Toggle() != Korean || l.Language() != Korean {
		t.Fatal("expected toggle to korean")
	}
	if !strings.Contains(l.PriorityChanged(), "우선순위") {
		t.Fatalf("expected korean message, got %q", l.PriorityChanged())
	}
	if l.Toggle() != English {
		t.Fatal("expected toggle back to english")
	}
}

func TestLocalizer_UnsupportedLanguage(t *testing.T) {
	if _, err := NewLocalizer("de"); err == nil {
		t.Fatal("expected error for unsupported language")
	}
	l := mustLocalizer(t, "EN ")
	if err := l.SetLanguage("fr"); err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if l.Language() != English {
		t.Fatal("failed SetLanguage must keep the previous language")
	}
}

func TestLocalizer_MissingMessageFallsBackToID(t *testing.T) {
	l := mustLocalizer(t, "en")
	if got := l.T("no_such_message", nil); got != "no_such_message" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestLocalizer_KindLabels(t *testing.T) {
	l := mustLocalizer(t, "en")
	cases := map[adapter.Kind]string{
		adapter.Wired:    "Wired",
		adapter.Wireless: "Wireless",
		adapter.Unknown:  "Unknown",
	}
	for kind, want := range cases {
		if got := l.KindLabel(kind); got != want {
			t.Errorf("KindLabel(%v) = %q, want %q", kind, got, want)
		}
	}
}
