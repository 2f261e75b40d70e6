package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/domain"
)

// openAIClient is the OpenAI-backed implementation of AIClient.
type openAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a new OpenAI client, requires OPENAI_API_KEY env var.
func NewOpenAIClient() (AIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, domain.NewPipelineError(domain.ErrorKindConfiguration,
			errors.New("OPENAI_API_KEY is not set in the environment"))
	}
	return &openAIClient{client: openai.NewClient(apiKey)}, nil
}

// NewOpenAIClientWithConfig creates a client against a custom endpoint.
// Tests use this to point at a local mock server.
func NewOpenAIClientWithConfig(apiKey, baseURL string) AIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIClient{client: openai.NewClientWithConfig(cfg)}
}

var (
	sharedMu     sync.Mutex
	sharedClient AIClient
)

// SharedClient returns the process-wide OpenAI client, constructing it on
// first successful access and reusing it afterwards. A missing credential
// is returned as a configuration error and is not cached, so a later-fixed
// environment works without restarting the process.
func SharedClient() (AIClient, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedClient != nil {
		return sharedClient, nil
	}
	client, err := NewOpenAIClient()
	if err != nil {
		return nil, err
	}
	sharedClient = client
	return sharedClient, nil
}

// Complete sends one chat completion and returns the first choice's content.
func (c *openAIClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewPipelineError(domain.ErrorKindServer,
			fmt.Errorf("completion response contained no choices"))
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIError maps a go-openai failure onto the pipeline error
// taxonomy so the caller can tell authentication, rate-limit, connection
// and server faults apart.
func classifyOpenAIError(err error) *domain.PipelineError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return domain.NewPipelineError(kindForStatus(apiErr.HTTPStatusCode),
			fmt.Errorf("openai api error: %w", err))
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return domain.NewPipelineError(kindForStatus(reqErr.HTTPStatusCode),
			fmt.Errorf("openai request error: %w", err))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewPipelineError(domain.ErrorKindTimeout,
			fmt.Errorf("openai request timed out: %w", err))
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewPipelineError(domain.ErrorKindTimeout,
			fmt.Errorf("openai request timed out: %w", err))
	}

	return domain.NewPipelineError(domain.ErrorKindConnection,
		fmt.Errorf("openai connection error: %w", err))
}

func kindForStatus(status int) domain.ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrorKindAuthentication
	case status == http.StatusForbidden:
		return domain.ErrorKindPermission
	case status == http.StatusBadRequest:
		return domain.ErrorKindBadRequest
	case status == http.StatusNotFound:
		return domain.ErrorKindNotFound
	case status == http.StatusUnprocessableEntity:
		return domain.ErrorKindUnprocessable
	case status == http.StatusTooManyRequests:
		return domain.ErrorKindRateLimit
	case status >= 500:
		return domain.ErrorKindServer
	default:
		return domain.ErrorKindServer
	}
}
