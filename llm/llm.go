package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/greencure/greencure-cli/logger"
)

// Available providers
const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Groq serves the OpenAI chat-completion wire schema at its own base URL
const groqBaseURL = "https://api.groq.com/openai/v1"

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption   OptionType = "model"
	MaxTokensOption   OptionType = "max_tokens"
	TemperatureOption OptionType = "temperature"
	APITimeoutOption  OptionType = "api_timeout"
	BaseURLOption     OptionType = "base_url"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithTemperature creates an option to set the sampling temperature
func WithTemperature(temperature float32) Option {
	return Option{
		Type:  TemperatureOption,
		Value: temperature,
	}
}

// WithAPITimeout creates an option to set the per-call API timeout
func WithAPITimeout(timeout time.Duration) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to override the provider endpoint
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// Request represents the prompts sent to the LLM
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Usage carries the token accounting returned by the provider
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Usage   Usage
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response.
	// The completion text is returned verbatim; it is never parsed.
	Prompt(ctx context.Context, req Request) Response
}

// Per-provider API key environment variables, in lookup order. The numbered
// Groq slots allow rotating between several keys.
var apiKeyEnvVars = map[string][]string{
	ProviderGroq: {
		"GROQ_API_KEY",
		"GROQ_API_KEY_1",
		"GROQ_API_KEY_2",
		"GROQ_API_KEY_3",
		"GROQ_API_KEY_4",
	},
	ProviderOpenAI:    {"OPENAI_API_KEY"},
	ProviderAnthropic: {"ANTHROPIC_API_KEY"},
}

func getAPIKey(providerName string) (string, error) {
	candidates := append([]string{}, apiKeyEnvVars[providerName]...)
	candidates = append(candidates, "LLM_API_KEY")

	for _, name := range candidates {
		if apiKey := os.Getenv(name); apiKey != "" {
			return apiKey, nil
		}
	}
	return "", &FatalError{Err: fmt.Errorf("no API key set for provider %s (tried %v)", providerName, candidates)}
}

func defaultModel(providerName string) string {
	switch providerName {
	case ProviderGroq:
		return "llama-3.1-8b-instant"
	case ProviderOpenAI:
		return "gpt-4.1-mini"
	case ProviderAnthropic:
		return "claude-3.5-haiku"
	}
	return ""
}

// NewLLM resolves the API key from the environment and builds a client for
// the named provider. Opts override the defaults (30s timeout, temperature
// 0.7, 2048 max tokens).
func NewLLM(providerName, modelName string, opts ...Option) (LLM, error) {
	var llmClient LLM

	apiKey, err := getAPIKey(providerName)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = defaultModel(providerName)
	}

	options := []Option{
		WithModel(modelName),
		WithMaxTokens(2048),
		WithTemperature(0.7),
		WithAPITimeout(30 * time.Second),
	}
	options = append(options, opts...)

	switch providerName {
	case ProviderGroq:
		llmClient, err = NewGroq(apiKey, options...)
	case ProviderOpenAI:
		llmClient, err = NewOpenAI(apiKey, options...)
	case ProviderAnthropic:
		llmClient, err = NewAnthropic(apiKey, options...)
	default:
		err = fmt.Errorf("unsupported provider: %s", providerName)
	}

	if err == nil {
		logger.Infof("Using LLM provider %s with model %s", providerName, modelName)
	}

	return llmClient, err
}
