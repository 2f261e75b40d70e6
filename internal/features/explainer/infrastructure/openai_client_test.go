package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/domain"
)

func TestOpenAIClient_Complete(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantContent   string
		wantErrorKind domain.ErrorKind
	}{
		{
			name: "Success returns first choice content",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				var reqBody struct {
					Model    string `json:"model"`
					Messages []struct {
						Role    string `json:"role"`
						Content string `json:"content"`
					} `json:"messages"`
				}
				err := json.NewDecoder(r.Body).Decode(&reqBody)
				require.NoError(t, err)
				assert.Equal(t, "gpt-test", reqBody.Model)
				require.Len(t, reqBody.Messages, 2)
				assert.Equal(t, "system", reqBody.Messages[0].Role)
				assert.Equal(t, "user", reqBody.Messages[1].Role)

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{
					"id":      "chatcmpl-123",
					"object":  "chat.completion",
					"created": 1677652288,
					"model":   "gpt-test",
					"choices": []map[string]any{
						{
							"index": 0,
							"message": map[string]any{
								"role":    "assistant",
								"content": `{"summary_sentences": []}`,
							},
							"finish_reason": "stop",
						},
					},
				})
			},
			wantContent: `{"summary_sentences": []}`,
		},
		{
			name: "Rate limit maps to rate_limit kind",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, http.StatusTooManyRequests, "Rate limit reached")
			},
			wantErrorKind: domain.ErrorKindRateLimit,
		},
		{
			name: "Unauthorized maps to authentication kind",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, http.StatusUnauthorized, "Incorrect API key provided")
			},
			wantErrorKind: domain.ErrorKindAuthentication,
		},
		{
			name: "Forbidden maps to permission kind",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, http.StatusForbidden, "You do not have access to this model")
			},
			wantErrorKind: domain.ErrorKindPermission,
		},
		{
			name: "Model not found maps to not_found kind",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, http.StatusNotFound, "The model does not exist")
			},
			wantErrorKind: domain.ErrorKindNotFound,
		},
		{
			name: "Server fault maps to server kind",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, http.StatusInternalServerError, "The server had an error")
			},
			wantErrorKind: domain.ErrorKindServer,
		},
		{
			name: "Empty choices maps to server kind",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{
					"id":      "chatcmpl-123",
					"object":  "chat.completion",
					"choices": []any{},
				})
			},
			wantErrorKind: domain.ErrorKindServer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tc.mockServerHandler(t, w, r)
			}))
			defer srv.Close()

			client := NewOpenAIClientWithConfig("test-key", srv.URL+"/v1")
			content, err := client.Complete(context.Background(), ChatRequest{
				Model:  "gpt-test",
				System: "system prompt",
				User:   "user message",
			})

			if tc.wantErrorKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErrorKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantContent, content)
		})
	}
}

func TestOpenAIClient_ConnectionFailure(t *testing.T) {
	// Nothing listens on this address.
	client := NewOpenAIClientWithConfig("test-key", "http://127.0.0.1:1/v1")
	_, err := client.Complete(context.Background(), ChatRequest{Model: "gpt-test"})
	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindConnection, domain.KindOf(err))
}

func TestNewOpenAIClient_MissingCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	client, err := NewOpenAIClient()
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Equal(t, domain.ErrorKindConfiguration, domain.KindOf(err))
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": message,
			"type":    "invalid_request_error",
		},
	})
}
