package llm

import (
	"context"
	"errors"
	"time"

	"github.com/greencure/greencure-cli/common"
	"github.com/greencure/greencure-cli/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIModel implements the LLM interface against any endpoint speaking
// the OpenAI chat-completion wire schema, including Groq.
type OpenAIModel struct {
	client      *openai.Client
	modelName   string
	maxTokens   int
	temperature float32
	apiTimeout  time.Duration
}

// NewOpenAI creates a new client for the OpenAI wire schema
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		errMsg := "API key cannot be empty"
		logger.Error(errMsg)
		return nil, &FatalError{Err: errors.New(errMsg)}
	}

	model := &OpenAIModel{
		modelName:   "gpt-4.1-mini",
		maxTokens:   2048,
		temperature: 0.7,
		apiTimeout:  30 * time.Second,
	}

	baseURL := ""
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
		case BaseURLOption:
			if url, ok := opt.Value.(string); ok {
				baseURL = url
			}
		}
	}

	// Retryable HTTP transport carries the backoff budget for transient faults
	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = retryClient.StandardClient()
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	model.client = openai.NewClientWithConfig(config)

	logger.Debugf("Chat-completion client initialized with model: %s, max tokens: %d, timeout: %s",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// NewGroq creates a client for Groq's OpenAI-compatible endpoint. An
// explicit WithBaseURL option still wins over the Groq default.
func NewGroq(apiKey string, opts ...Option) (*OpenAIModel, error) {
	options := append([]Option{WithBaseURL(groqBaseURL)}, opts...)
	return NewOpenAI(apiKey, options...)
}

// Prompt sends a request and returns the completion text verbatim
func (o *OpenAIModel) Prompt(ctx context.Context, req Request) Response {
	logger.Debugf("Sending prompt to model: %s", o.modelName)

	ctx, cancel := context.WithTimeout(ctx, o.apiTimeout)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: req.UserPrompt,
		},
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       o.modelName,
		Messages:    messages,
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	}

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		logger.Errorf("failed to create chat completion: %v", err)
		return Response{
			Error: classify(err),
		}
	}

	if len(resp.Choices) == 0 {
		errMsg := "response contained no choices"
		logger.Error(errMsg)
		return Response{
			Error: &FatalError{Err: errors.New(errMsg)},
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
}
