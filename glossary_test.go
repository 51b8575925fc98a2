package bhasha

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGlossary(t *testing.T) {
	g := DefaultGlossary()

	terms := g.Terms()
	want := []string{"GST", "FSSAI", "PAN", "MSME"}
	if len(terms) != len(want) {
		t.Fatalf("expected %d terms, got %v", len(want), terms)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("term %d = %q, want %q", i, terms[i], want[i])
		}
	}

	if got := g.Gloss("GST", "hi"); got != "वस्तु एवं सेवा कर (GST)" {
		t.Errorf("unexpected Hindi gloss for GST: %q", got)
	}
}

func TestGlossary_GlossFallback(t *testing.T) {
	g := DefaultGlossary()

	// Telugu has no gloss: bare acronym, nothing appended
	if got := g.Gloss("MSME", "te"); got != "MSME" {
		t.Errorf("Gloss(MSME, te) = %q, want bare acronym", got)
	}
	if got := g.Gloss("UNKNOWN", "hi"); got != "UNKNOWN" {
		t.Errorf("Gloss for unknown term = %q", got)
	}
}

func TestGlossary_Mask(t *testing.T) {
	g := DefaultGlossary()

	masked, p := g.Mask("Register for GST and get PAN", "hi")

	if strings.Contains(masked, "GST") || strings.Contains(masked, "PAN") {
		t.Errorf("acronyms should be masked, got %q", masked)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 placeholders, got %d", p.Len())
	}
	if masked != "Register for [[GL0]] and get [[GL1]]" {
		t.Errorf("unexpected masked text: %q", masked)
	}

	restored := p.Restore(masked)
	if restored != "Register for वस्तु एवं सेवा कर (GST) and get स्थायी खाता संख्या (PAN)" {
		t.Errorf("unexpected restored text: %q", restored)
	}
}

func TestGlossary_MaskDuplicatesCollapse(t *testing.T) {
	g := DefaultGlossary()

	masked, p := g.Mask("MSME loans for MSME owners", "bn")

	if p.Len() != 1 {
		t.Fatalf("duplicate acronym should share one placeholder, got %d", p.Len())
	}
	if strings.Count(masked, p.Tokens()[0]) != 2 {
		t.Errorf("both occurrences should use the same token: %q", masked)
	}
}

func TestGlossary_MaskSubstringWithoutWordBoundary(t *testing.T) {
	g := DefaultGlossary()

	// "PAN" inside "COMPANY" is masked too: substring matching is the documented behavior.
	masked, p := g.Mask("COMPANY", "hi")
	if p.Len() != 1 || masked != "COM[[GL0]]Y" {
		t.Errorf("unexpected masking: %q (%d placeholders)", masked, p.Len())
	}
}

func TestGlossary_MaskCaseSensitive(t *testing.T) {
	g := DefaultGlossary()

	masked, p := g.Mask("gst is lowercase", "hi")
	if p.Len() != 0 || masked != "gst is lowercase" {
		t.Errorf("lowercase acronym should not match: %q", masked)
	}
}

func TestGlossary_TokenAvoidsSourceCollision(t *testing.T) {
	g := DefaultGlossary()

	text := "literal [[GL0]] then GST"
	masked, p := g.Mask(text, "hi")

	if p.Tokens()[0] != "[[GL1]]" {
		t.Fatalf("token should skip the one already in the text, got %q", p.Tokens()[0])
	}
	restored := p.Restore(masked)
	if !strings.Contains(restored, "literal [[GL0]]") {
		t.Errorf("source token must survive restore: %q", restored)
	}
}

func TestGlossary_MaskTermInsideToken(t *testing.T) {
	g := NewGlossary(
		GlossaryEntry{Term: "GST", Glosses: map[string]string{"hi": "वस्तु एवं सेवा कर (GST)"}},
		GlossaryEntry{Term: "GL", Glosses: map[string]string{"hi": "सामान्य खाता (GL)"}},
	)

	masked, p := g.Mask("GST and GL", "hi")
	if masked != "[[GL0]] and [[GL1]]" {
		t.Fatalf("issued tokens must not be rewritten, got %q", masked)
	}

	restored := p.Restore(masked)
	if restored != "वस्तु एवं सेवा कर (GST) and सामान्य खाता (GL)" {
		t.Errorf("unexpected restored text: %q", restored)
	}
}

func TestPlaceholders_RestoreDroppedToken(t *testing.T) {
	g := DefaultGlossary()
	_, p := g.Mask("Apply for FSSAI", "ta")

	// Backend dropped the token entirely: no error, gloss simply absent
	if got := p.Restore("விண்ணப்பிக்கவும்"); got != "விண்ணப்பிக்கவும்" {
		t.Errorf("unexpected restore: %q", got)
	}
}

func TestPlaceholders_ZeroValue(t *testing.T) {
	var p Placeholders
	if p.Restore("unchanged") != "unchanged" {
		t.Error("zero Placeholders should not modify text")
	}
}

func TestLoadGlossary(t *testing.T) {
	data := []byte(`
[[term]]
acronym = "UDYAM"

[term.glosses]
hi = "उद्यम पंजीकरण (UDYAM)"
`)
	g, err := LoadGlossary(data)
	if err != nil {
		t.Fatalf("LoadGlossary failed: %v", err)
	}
	if g.Len() != 1 || g.Gloss("UDYAM", "hi") != "उद्यम पंजीकरण (UDYAM)" {
		t.Errorf("unexpected glossary: %v", g.Terms())
	}
}

func TestLoadGlossary_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid toml", "[[term"},
		{"empty acronym", "[[term]]\nacronym = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGlossary([]byte(tt.data))
			var gErr *GlossaryError
			if !errors.As(err, &gErr) {
				t.Errorf("expected *GlossaryError, got %v", err)
			}
		})
	}
}

func TestLoadGlossaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glossary.toml")
	if err := os.WriteFile(path, []byte("[[term]]\nacronym = \"KYC\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g, err := LoadGlossaryFile(path)
	if err != nil {
		t.Fatalf("LoadGlossaryFile failed: %v", err)
	}
	if g.Gloss("KYC", "hi") != "KYC" {
		t.Error("term without glosses should fall back to the acronym")
	}

	if _, err := LoadGlossaryFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
