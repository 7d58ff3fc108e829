package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"github.com/anthropics/anthropic-sdk-go/option"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newTestAnthropicModel(t *testing.T, handler http.HandlerFunc) outbound.LanguageModelPort {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAnthropicLanguageModel(newTestLogger(), &config.AnthropicConfig{
		ApiKey:    "test-key",
		Model:     "claude-3-5-haiku-latest",
		MaxTokens: 1024,
	}, option.WithBaseURL(server.URL+"/"), option.WithMaxRetries(0))
}

func TestAnthropicLanguageModel_Complete(t *testing.T) {
	var received map[string]interface{}
	model := newTestAnthropicModel(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Errorf("Missing api key header")
		}
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",` +
			`"content":[{"type":"text","text":"{\"summary\":\"ok\"}"}],"stop_reason":"end_turn",` +
			`"usage":{"input_tokens":3,"output_tokens":5}}`))
	})

	text, err := model.Complete(context.Background(), outbound.CompletionRequest{
		SystemPrompt: "You are an analyst.",
		UserPrompt:   "Article text",
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, `{"summary":"ok"}`, text)
	assert.Equal(t, "claude-3-5-haiku-latest", received["model"])
	assert.Equal(t, float64(1024), received["max_tokens"])
}

func TestAnthropicLanguageModel_EmptyContent(t *testing.T) {
	model := newTestAnthropicModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"m","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`))
	})

	_, err := model.Complete(context.Background(), outbound.CompletionRequest{UserPrompt: "x"})

	assert.Equal(t, true, errors.Is(err, domain.ErrMalformedResponse))
}

func TestAnthropicLanguageModel_ApiError(t *testing.T) {
	model := newTestAnthropicModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	})

	_, err := model.Complete(context.Background(), outbound.CompletionRequest{UserPrompt: "x"})

	assert.Equal(t, true, errors.Is(err, domain.ErrUpstream))
}
