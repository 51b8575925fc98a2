package bhasha

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"hi", "hi"},
		{"as", "as"},
		{"en", "en"},
		{"mr-IN", "mr"},
		{"gu-IN", "gu"},
		{"hi-IN", "en"}, // only the two known aliases are mapped
		{"fr", "en"},
		{"", "en"},
		{"HI", "en"}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			result := NormalizeLanguage(tt.code)
			if result != tt.expected {
				t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.code, result, tt.expected)
			}
		})
	}
}

func TestGetLanguageName(t *testing.T) {
	if got := GetLanguageName("or"); got != "Odia" {
		t.Errorf("GetLanguageName(or) = %q, want Odia", got)
	}
	if got := GetLanguageName("xx"); got != "xx" {
		t.Errorf("GetLanguageName(xx) = %q, want fallback to code", got)
	}
}

func TestSupportedLanguages(t *testing.T) {
	codes := SupportedLanguages()
	if len(codes) != 12 {
		t.Fatalf("expected 12 supported languages, got %d", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("codes not sorted: %v", codes)
		}
	}
	for _, code := range codes {
		if _, ok := NativeLanguageNames[code]; !ok {
			t.Errorf("missing native name for %q", code)
		}
	}
}

func TestScriptLanguage(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		lang   string
		detect bool
	}{
		{"devanagari", "नमस्ते दुनिया", "hi", true},
		{"tamil", "வணக்கம்", "ta", true},
		{"gurmukhi", "ਸਤ ਸ੍ਰੀ ਅਕਾਲ", "pa", true},
		{"odia", "ନମସ୍କାର", "or", true},
		{"dominant script wins", "MSME வணக்கம் नम", "ta", true},
		{"latin only", "Hello world", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := ScriptLanguage(tt.text)
			if ok != tt.detect || lang != tt.lang {
				t.Errorf("ScriptLanguage(%q) = (%q, %v), want (%q, %v)", tt.text, lang, ok, tt.lang, tt.detect)
			}
		})
	}
}
