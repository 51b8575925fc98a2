package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ZaguanLabs/bhasha"
)

// OpenAIProvider implements Provider and Detector using OpenAI's API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a single text using OpenAI.
func (p *OpenAIProvider) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return req.Text, nil
	}

	content, err := p.complete(ctx, p.buildSystemPrompt(req), req.Text)
	if err != nil {
		return "", err
	}

	var result struct {
		Translation *string `json:"translation"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil || result.Translation == nil {
		return "", &bhasha.ProviderError{
			Message: "invalid translation response from OpenAI",
			Cause:   err,
		}
	}

	return *result.Translation, nil
}

// Detect asks the model for the language of text.
func (p *OpenAIProvider) Detect(ctx context.Context, text string) (Detection, error) {
	content, err := p.complete(ctx, detectSystemPrompt, text)
	if err != nil {
		return Detection{}, err
	}

	var result struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil || result.Language == "" {
		return Detection{}, &bhasha.ProviderError{
			Message: "invalid detection response from OpenAI",
			Cause:   err,
		}
	}

	return Detection{Lang: result.Language, Confidence: result.Confidence}, nil
}

func (p *OpenAIProvider) complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &bhasha.ProviderError{
			Message: "OpenAI API call failed",
			Cause:   err,
		}
	}

	if len(resp.Choices) == 0 {
		return "", &bhasha.ProviderError{Message: "no response from OpenAI"}
	}

	return resp.Choices[0].Message.Content, nil
}

const detectSystemPrompt = `Identify the language of the user's text.
Return a valid JSON object: { "language": "<ISO 639-1 code>", "confidence": <number between 0 and 1> }
- Use "en" when the text is mostly English or the language cannot be determined.
- Do NOT wrap in Markdown code blocks.`

func (p *OpenAIProvider) buildSystemPrompt(req TranslateRequest) string {
	targetName := bhasha.GetLanguageName(req.TargetLang)

	contextText := "The content is a chat reply from an assistant helping small businesses in India."
	if req.Context != "" {
		contextText = fmt.Sprintf("The content is for: %s. Adapt the tone to be appropriate for this context.", req.Context)
	}

	prompt := fmt.Sprintf(`# Role
You are an expert native translator. You translate content to %s with the fluency of a native speaker.

# Context
%s

# Task
Translate the user's text into natural %s.

# Style Guide
- **Natural Flow**: Avoid literal translations. Rephrase to sound natural to a native speaker.
- **Formatting**: Do not add or remove Markdown markers, emoji, or line breaks.
- **Interpolation**: Do NOT translate variables or placeholders (e.g., {{name}}, {count}, %%s, $1).`, targetName, contextText, targetName)

	if len(req.Preserve) > 0 {
		prompt += fmt.Sprintf("\n\n# Placeholders\nCopy these tokens into your output exactly as written, in a grammatically sensible position:\n- %s",
			strings.Join(req.Preserve, "\n- "))
	}

	prompt += `

# Format
Return a valid JSON object with a single key "translation" containing the translated string.
Example: { "translation": "translated text" }
- Do NOT wrap in Markdown code blocks.`

	return prompt
}

// Verify OpenAIProvider implements Provider and Detector
var (
	_ Provider = (*OpenAIProvider)(nil)
	_ Detector = (*OpenAIProvider)(nil)
)
