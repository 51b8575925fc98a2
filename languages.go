package bhasha

import (
	"sort"
	"unicode"
)

// DefaultLanguage is the canonical storage language and the fallback for
// anything outside the supported set.
const DefaultLanguage = "en"

// LanguageNames maps supported language codes to English names for prompts and logs.
var LanguageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"bn": "Bengali",
	"te": "Telugu",
	"ta": "Tamil",
	"mr": "Marathi",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"pa": "Punjabi",
	"or": "Odia",
	"as": "Assamese",
}

// NativeLanguageNames maps supported language codes to names shown to end users.
var NativeLanguageNames = map[string]string{
	"en": "English",
	"hi": "हिन्दी (Hindi)",
	"bn": "বাংলা (Bengali)",
	"te": "తెలుగు (Telugu)",
	"mr": "मराठी (Marathi)",
	"ta": "தமிழ் (Tamil)",
	"gu": "ગુજરાતી (Gujarati)",
	"kn": "ಕನ್ನಡ (Kannada)",
	"ml": "മലയാളം (Malayalam)",
	"pa": "ਪੰਜਾਬੀ (Punjabi)",
	"or": "ଓଡିଆ (Odia)",
	"as": "অসমীয়া (Assamese)",
}

// languageAliases maps region-tagged codes some detectors emit to their base code.
var languageAliases = map[string]string{
	"mr-IN": "mr",
	"gu-IN": "gu",
}

// scriptLanguages lists the Unicode scripts of the supported Indic languages.
// Scripts shared by several languages resolve to the first one listed
// (Devanagari → Hindi, Bengali → Bengali).
var scriptLanguages = []struct {
	table *unicode.RangeTable
	lang  string
}{
	{unicode.Devanagari, "hi"},
	{unicode.Bengali, "bn"},
	{unicode.Telugu, "te"},
	{unicode.Tamil, "ta"},
	{unicode.Gujarati, "gu"},
	{unicode.Kannada, "kn"},
	{unicode.Malayalam, "ml"},
	{unicode.Gurmukhi, "pa"},
	{unicode.Oriya, "or"},
}

// IsSupported reports whether code is in the supported set (exact match).
func IsSupported(code string) bool {
	_, ok := LanguageNames[code]
	return ok
}

// NormalizeLanguage maps a detector or caller supplied code onto the supported set.
// Supported codes are returned as-is, the known region aliases map to their
// base code, and everything else falls back to DefaultLanguage.
func NormalizeLanguage(code string) string {
	if IsSupported(code) {
		return code
	}
	if base, ok := languageAliases[code]; ok {
		return base
	}
	return DefaultLanguage
}

// GetLanguageName returns the English name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(code string) string {
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	return code
}

// SupportedLanguages returns the supported codes in sorted order.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(LanguageNames))
	for code := range LanguageNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ScriptLanguage guesses a language from the dominant Indic script in text.
// Returns false when no supported script is present.
func ScriptLanguage(text string) (string, bool) {
	counts := make([]int, len(scriptLanguages))
	for _, r := range text {
		for i, s := range scriptLanguages {
			if unicode.Is(s.table, r) {
				counts[i]++
				break
			}
		}
	}

	best := -1
	for i, n := range counts {
		if n > 0 && (best < 0 || n > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return scriptLanguages[best].lang, true
}
