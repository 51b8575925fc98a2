// Command bhasha detects languages and translates assistant replies.
//
// Every invocation writes exactly one JSON object to stdout; logs go to stderr.
//
//	bhasha detect "नमस्ते"
//	bhasha translate "Register for GST" hi
//	bhasha welcome ta
//	bhasha languages
//	bhasha batch hi "Hello" "setup help"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/ZaguanLabs/bhasha"
	"github.com/ZaguanLabs/bhasha/processor"
	"github.com/ZaguanLabs/bhasha/provider"
)

const usage = "usage: bhasha [-provider google|openai|offline] [-format message|html] <detect|translate|welcome|languages|batch> [args]"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one CLI invocation. The only error it returns is a failure to
// write the JSON result; every other problem becomes an {"error": ...} object.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return writeJSON(stdout, dispatch(ctx, args, stderr))
}

func dispatch(ctx context.Context, args []string, stderr io.Writer) (result any) {
	defer func() {
		if r := recover(); r != nil {
			result = errorResult(fmt.Errorf("internal error: %v", r))
		}
	}()

	fs := flag.NewFlagSet("bhasha", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	providerName := fs.String("provider", "", "Translation backend: google, openai or offline (default: BHASHA_PROVIDER)")
	format := fs.String("format", bhasha.ContentTypeMessage, "Content format for translate and batch: message or html")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return errorResult(fmt.Errorf("%w; %s", err, usage))
	}

	if *showVersion {
		out := map[string]string{
			"name":    bhasha.Name,
			"version": bhasha.FullVersion(),
		}
		if bhasha.BuildDate != "" {
			out["built"] = bhasha.BuildDate
		}
		return out
	}

	if fs.NArg() == 0 {
		return errorResult(fmt.Errorf("missing action; %s", usage))
	}

	if *format != bhasha.ContentTypeMessage && *format != bhasha.ContentTypeHTML {
		return errorResult(fmt.Errorf("unknown format %q (want message or html)", *format))
	}

	action, rest := fs.Arg(0), fs.Args()[1:]

	// languages needs no backend
	if action == "languages" {
		return map[string]any{"languages": bhasha.NativeLanguageNames}
	}

	cfg, err := loadConfig(*providerName)
	if err != nil {
		return errorResult(err)
	}

	logger := newLogger(cfg, stderr)

	translator, err := newTranslator(cfg, logger)
	if err != nil {
		return errorResult(err)
	}

	logger.DebugContext(ctx, "dispatching", "action", action, "provider", cfg.Provider, "args", len(rest))

	switch action {
	case "detect":
		if len(rest) < 1 {
			return errorResult(fmt.Errorf("detect requires <text>"))
		}
		return map[string]string{"language": translator.DetectLanguage(ctx, rest[0])}

	case "translate":
		if len(rest) < 2 {
			return errorResult(fmt.Errorf("translate requires <text> <target>"))
		}
		return map[string]string{"translated": translator.TranslateContent(ctx, rest[0], *format, rest[1])}

	case "welcome":
		lang := bhasha.DefaultLanguage
		if len(rest) > 0 {
			lang = rest[0]
		}
		return map[string]string{"welcome": translator.WelcomeMessage(ctx, lang)}

	case "batch":
		if len(rest) < 2 {
			return errorResult(fmt.Errorf("batch requires <target> <text>..."))
		}
		target, texts := rest[0], rest[1:]
		if *format == bhasha.ContentTypeHTML {
			out := make([]string, len(texts))
			for i, text := range texts {
				out[i] = translator.TranslateContent(ctx, text, *format, target)
			}
			return map[string][]string{"translated": out}
		}
		return map[string][]string{"translated": translator.TranslateMessages(ctx, texts, target)}

	default:
		return errorResult(fmt.Errorf("unknown action %q; %s", action, usage))
	}
}

// newTranslator builds the translator described by cfg.
func newTranslator(cfg *Config, logger *slog.Logger) (*bhasha.Translator, error) {
	var p bhasha.Provider
	switch cfg.Provider {
	case providerOpenAI:
		p = provider.NewOpenAIProvider(provider.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
	case providerOffline:
		p = provider.NewOfflineProvider()
	default:
		p = provider.NewGoogleProvider()
	}

	if cfg.RateLimitRPM > 0 {
		p = bhasha.NewRateLimitedProvider(p, bhasha.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimitRPM,
			BurstSize:         cfg.RateLimitBurst,
		})
	}

	opts := []bhasha.TranslatorOption{
		bhasha.WithLogger(logger),
		bhasha.WithProcessor(processor.NewHTMLProcessor()),
		bhasha.WithMinConfidence(cfg.DetectMinConfidence),
		bhasha.WithConcurrency(cfg.BatchConcurrency),
	}

	if cfg.GlossaryFile != "" {
		glossary, err := bhasha.LoadGlossaryFile(cfg.GlossaryFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bhasha.WithGlossary(glossary))
	}

	return bhasha.NewTranslator(p, opts...), nil
}

// newLogger returns a tint logger on w. stdout is reserved for the JSON result.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, _ := cfg.level()
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !cfg.LogColored,
	}))
}

func errorResult(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
