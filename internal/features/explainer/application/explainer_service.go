package application

import (
	"context"
	"errors"
	"strings"

	configdomain "github.com/iftikharqureshi/plain-english-explainer/internal/features/config/domain"
	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/domain"
	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/infrastructure"
	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/schema"
)

// ErrEmptyParagraph is returned when the input is empty or whitespace-only.
// The check runs before the client is resolved, so no network call is made.
var ErrEmptyParagraph = errors.New("paragraph is empty")

// ClientProvider resolves the AI client for a request. Resolution can fail
// with a configuration error (missing credential); that failure must happen
// before any network traffic.
type ClientProvider func() (infrastructure.AIClient, error)

// ExplainerService defines the interface for the explainer application service.
type ExplainerService interface {
	ExplainParagraph(ctx context.Context, paragraph string, appConfig configdomain.AppConfig) (domain.ExplainerOutput, error)
}

// explainerService is the implementation of ExplainerService. The pipeline
// is strictly linear: build prompt, call model, strip fences, parse and
// validate. Each stage feeds the next; any failure aborts the whole request.
type explainerService struct {
	clientProvider ClientProvider
}

// NewExplainerService creates a new instance of explainerService.
func NewExplainerService(provider ClientProvider) ExplainerService {
	return &explainerService{clientProvider: provider}
}

// ExplainParagraph runs one paragraph through the request-validate pipeline
// and returns the validated output.
func (s *explainerService) ExplainParagraph(ctx context.Context, paragraph string, appConfig configdomain.AppConfig) (domain.ExplainerOutput, error) {
	paragraph = strings.TrimSpace(paragraph)
	if paragraph == "" {
		return domain.ExplainerOutput{}, ErrEmptyParagraph
	}

	client, err := s.clientProvider()
	if err != nil {
		return domain.ExplainerOutput{}, err
	}

	content, err := client.Complete(ctx, infrastructure.ChatRequest{
		Model:       appConfig.Model,
		System:      SystemInstruction,
		User:        BuildUserMessage(paragraph),
		Temperature: float32(appConfig.ModelParams.Temperature),
		MaxTokens:   appConfig.ModelParams.MaxTokens,
	})
	if err != nil {
		return domain.ExplainerOutput{}, err
	}

	candidate := StripFences(content)
	return schema.Validate(candidate, appConfig.StrictSchema)
}
