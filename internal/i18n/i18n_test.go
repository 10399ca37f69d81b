package i18n

import "testing"

func TestResolveHonorsQValues(t *testing.T) {
	b, err := Load("../../locales", "en", []string{"en", "hi"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := b.Resolve("en;q=0.8, hi;q=0.9")
	if got != "hi" {
		t.Fatalf("expected hi, got %s", got)
	}
}

func TestResolveFallsBack(t *testing.T) {
	b, err := Load("../../locales", "en", []string{"en", "hi"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, header := range []string{"", "fr-FR", "not a header;;;"} {
		if got := b.Resolve(header); got != "en" {
			t.Errorf("Resolve(%q) = %s, want en", header, got)
		}
	}
	if got := b.Resolve("hi-IN,hi;q=0.9"); got != "hi" {
		t.Errorf("regional tag should match base, got %s", got)
	}
}

func TestTranslateFallsBackToDefaultThenKey(t *testing.T) {
	b, err := Load("../../locales", "en", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := b.T("en", "list.show_more"); got != "Show more" {
		t.Fatalf("T(en) = %q", got)
	}
	if got := b.T("hi", "footer.rights"); got == "footer.rights" {
		t.Fatalf("expected hi translation for footer.rights")
	}
	if got := b.T("hi", "missing.key"); got != "missing.key" {
		t.Fatalf("missing key should echo, got %q", got)
	}
}
