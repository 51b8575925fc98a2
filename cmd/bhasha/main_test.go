package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZaguanLabs/bhasha"
)

// runJSON runs the CLI and decodes its single JSON object.
func runJSON(t *testing.T, args ...string) map[string]any {
	t.Helper()

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if n := strings.Count(stdout.String(), "\n"); n != 1 {
		t.Fatalf("expected exactly one JSON line, got %d: %q", n, stdout.String())
	}

	var out map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("stdout is not JSON: %v: %q", err, stdout.String())
	}
	return out
}

func offlineEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BHASHA_PROVIDER", "offline")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("GLOSSARY_FILE", "")
	t.Setenv("RATE_LIMIT_RPM", "0")
	t.Setenv("DETECT_MIN_CONFIDENCE", "0")
	t.Setenv("BATCH_CONCURRENCY", "2")
}

func TestRun_Version(t *testing.T) {
	out := runJSON(t, "--version")

	if out["name"] != "bhasha" {
		t.Errorf("expected version output, got: %v", out)
	}
	if out["version"] != bhasha.Version {
		t.Errorf("unstamped build should report %s, got %v", bhasha.Version, out["version"])
	}
	if _, ok := out["built"]; ok {
		t.Errorf("unstamped build should omit the build date: %v", out)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	offlineEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no action", nil, "missing action"},
		{"unknown action", []string{"summarize"}, "unknown action"},
		{"unknown flag", []string{"-bogus", "detect", "x"}, "flag provided but not defined"},
		{"detect without text", []string{"detect"}, "detect requires"},
		{"translate without target", []string{"translate", "Hello"}, "translate requires"},
		{"batch without texts", []string{"batch", "hi"}, "batch requires"},
		{"bad format", []string{"-format", "yaml", "translate", "x", "hi"}, "unknown format"},
		{"bad provider", []string{"-provider", "deepl", "detect", "x"}, "unknown provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runJSON(t, tt.args...)

			msg, ok := out["error"].(string)
			if !ok {
				t.Fatalf("expected error object, got %v", out)
			}
			if !strings.Contains(msg, tt.want) {
				t.Errorf("expected %q in error, got %q", tt.want, msg)
			}
		})
	}
}

func TestRun_Languages(t *testing.T) {
	out := runJSON(t, "languages")

	langs, ok := out["languages"].(map[string]any)
	if !ok {
		t.Fatalf("expected languages object, got %v", out)
	}
	if len(langs) != 12 {
		t.Errorf("expected 12 languages, got %d", len(langs))
	}
	if langs["hi"] != "हिन्दी (Hindi)" {
		t.Errorf("unexpected Hindi name: %v", langs["hi"])
	}
}

func TestRun_Detect(t *testing.T) {
	offlineEnv(t)

	out := runJSON(t, "detect", "வணக்கம்! இந்தியாவில் வணிக அமைப்பில் நான் உங்களுக்கு உதவ முடியும்")
	if out["language"] != "ta" {
		t.Errorf("expected ta, got %v", out)
	}

	out = runJSON(t, "detect", "")
	if out["language"] != "en" {
		t.Errorf("expected en for empty text, got %v", out)
	}
}

func TestRun_TranslateFailsOpen(t *testing.T) {
	offlineEnv(t)

	out := runJSON(t, "translate", "Register for GST", "hi")
	if out["translated"] != "Register for GST" {
		t.Errorf("expected original text, got %v", out)
	}

	html := `<p>Hello & welcome</p>`
	out = runJSON(t, "-format", "html", "translate", html, "ta")
	if out["translated"] != html {
		t.Errorf("expected unescaped original HTML, got %v", out)
	}
}

func TestRun_Welcome(t *testing.T) {
	offlineEnv(t)

	out := runJSON(t, "welcome")
	welcome, _ := out["welcome"].(string)
	if !strings.HasPrefix(welcome, "Hello! I can help you with MSME business setup in India.") {
		t.Errorf("unexpected English welcome: %q", welcome)
	}

	out = runJSON(t, "welcome", "hi")
	welcome, _ = out["welcome"].(string)
	if !strings.HasPrefix(welcome, "नमस्ते!") {
		t.Errorf("expected Hindi greeting, got %q", welcome)
	}
	for _, label := range []string{"**व्यवसाय खोज**", "**अनुपालन और लाइसेंसिंग**", "**दस्तावेज़ विश्लेषण**"} {
		if !strings.Contains(welcome, label) {
			t.Errorf("expected offline Hindi label %s in %q", label, welcome)
		}
	}
	// Bullet descriptions have no offline strings
	if !strings.Contains(welcome, "Find the right business structure") {
		t.Errorf("descriptions should stay English offline: %q", welcome)
	}
}

func TestRun_Batch(t *testing.T) {
	offlineEnv(t)

	out := runJSON(t, "batch", "bn", "Hello", "setup help", "GST")

	list, ok := out["translated"].([]any)
	if !ok || len(list) != 3 {
		t.Fatalf("expected 3 results, got %v", out)
	}
	if list[0] != "Hello" || list[1] != "setup help" || list[2] != "GST" {
		t.Errorf("expected originals in order, got %v", list)
	}
}

func TestRun_OpenAIProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"choices": []map[string]any{{
				"index":   0,
				"message": map[string]string{"role": "assistant", "content": `{"translation": "व्यवसाय"}`},
			}},
		})
	}))
	defer srv.Close()

	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OPENAI_API_KEY", "test")
	t.Setenv("OPENAI_BASE_URL", srv.URL+"/v1")
	t.Setenv("GLOSSARY_FILE", "")
	t.Setenv("RATE_LIMIT_RPM", "600")

	out := runJSON(t, "-provider", "openai", "translate", "Business", "hi")
	if out["translated"] != "व्यवसाय" {
		t.Errorf("expected translated text, got %v", out)
	}
}

func TestRun_OpenAIWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	out := runJSON(t, "-provider", "openai", "detect", "Hello")
	if msg, _ := out["error"].(string); !strings.Contains(msg, "OPENAI_API_KEY") {
		t.Errorf("expected API key error, got %v", out)
	}
}

func TestRun_GlossaryFile(t *testing.T) {
	offlineEnv(t)

	path := filepath.Join(t.TempDir(), "glossary.toml")
	t.Setenv("GLOSSARY_FILE", path)

	out := runJSON(t, "translate", "Hello", "hi")
	if _, ok := out["error"]; !ok {
		t.Errorf("expected error for missing glossary file, got %v", out)
	}

	data := "[[term]]\nacronym = \"UPI\"\n\n[term.glosses]\nhi = \"यूपीआई\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	out = runJSON(t, "translate", "Hello", "hi")
	if out["translated"] != "Hello" {
		t.Errorf("expected fail-open translation, got %v", out)
	}
}
