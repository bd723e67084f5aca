package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/greencure/greencure-cli/common"
)

// AnthropicModel implements the LLM interface using Anthropic's API
type AnthropicModel struct {
	client      anthropic.Client
	modelName   string
	maxTokens   int
	temperature float32
	apiTimeout  time.Duration
}

// NewAnthropic creates a new Anthropic client
func NewAnthropic(apiKey string, opts ...Option) (*AnthropicModel, error) {
	// Same retry transport as the OpenAI-compatible path, so both
	// providers share one backoff budget; the SDK's own retries are
	// disabled to keep it that way.
	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())

	clientOptions := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(retryClient.StandardClient()),
		option.WithMaxRetries(0),
	}
	for _, opt := range opts {
		if opt.Type == BaseURLOption {
			if url, ok := opt.Value.(string); ok {
				clientOptions = append(clientOptions, option.WithBaseURL(url))
			}
		}
	}
	client := anthropic.NewClient(clientOptions...)

	model := &AnthropicModel{
		client:      client,
		modelName:   "claude-3.5-haiku",
		maxTokens:   2048,
		temperature: 0.7,
		apiTimeout:  30 * time.Second,
	}

	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok {
				model.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok {
				model.maxTokens = maxTokens
			}
		case TemperatureOption:
			if temperature, ok := opt.Value.(float32); ok {
				model.temperature = temperature
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(time.Duration); ok {
				model.apiTimeout = timeout
			}
		}
	}

	return model, nil
}

// Prompt sends a request to Anthropic and returns the response
func (a *AnthropicModel) Prompt(ctx context.Context, req Request) Response {
	ctx, cancel := context.WithTimeout(ctx, a.apiTimeout)
	defer cancel()

	messages := []anthropic.MessageParam{
		{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(req.UserPrompt),
			},
		},
	}

	// Convert model name string to anthropic.Model
	var model anthropic.Model
	switch a.modelName {
	case "claude-3.7-sonnet":
		model = anthropic.ModelClaude3_7SonnetLatest
	case "claude-3.5-sonnet":
		model = anthropic.ModelClaude3_5SonnetLatest
	case "claude-3.5-haiku":
		model = anthropic.ModelClaude3_5HaikuLatest
	default:
		model = anthropic.Model(a.modelName)
	}

	messageParams := anthropic.MessageNewParams{
		Model:       model,
		MaxTokens:   int64(a.maxTokens),
		Temperature: anthropic.Float(float64(a.temperature)),
		System: []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		},
		Messages: messages,
	}

	message, err := a.client.Messages.New(ctx, messageParams)
	if err != nil {
		return Response{
			Error: classify(fmt.Errorf("failed to create message: %w", err)),
		}
	}

	var content string
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += b.Text
		}
	}

	return Response{
		Content: content,
		Usage: Usage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
	}
}
