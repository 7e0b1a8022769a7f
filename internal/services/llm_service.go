package services

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Completer is the LLM capability the chat orchestrator depends on. The
// session id groups a user's turns on the provider side; nothing here
// enforces conversation continuity beyond passing it along.
type Completer interface {
	Complete(ctx context.Context, sessionID, prompt string) (string, error)
}

// dinCharyaSystemPrompt is the fixed assistant persona.
const dinCharyaSystemPrompt = `You are Din Charya AI, a helpful daily life assistant. You help users make smart daily decisions about:
- What to eat (considering time, weather, preferences, health)
- What to wear (based on weather, occasion, season)
- Daily activities and productivity tips
- Routine tracking and habit building
- Weekend planning and entertainment

Always provide practical, personalized suggestions with brief explanations. Be friendly, encouraging, and consider the user's context like weather and time of day. Keep responses concise but helpful.`

// LLMService implements Completer against the Anthropic Messages API.
type LLMService struct {
	client *anthropic.Client
	model  string
}

// NewLLMService creates an LLM service with a static API key.
func NewLLMService(apiKey, model string) *LLMService {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	client := anthropic.NewClient(opts...)

	if model == "" {
		model = "claude-3-7-sonnet-20250219"
	}

	return &LLMService{
		client: &client,
		model:  model,
	}
}

// Complete sends the prompt with the fixed persona and returns the generated
// text. The session id rides along as request metadata. No timeout is imposed
// here beyond the SDK default; callers pass their request context.
func (s *LLMService) Complete(ctx context.Context, sessionID, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		System: []anthropic.TextBlockParam{
			{Text: dinCharyaSystemPrompt},
		},
		Metadata: anthropic.MetadataParam{
			UserID: anthropic.String(sessionID),
		},
	}

	message, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var content string
	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += textBlock.Text
		}
	}
	return content, nil
}
