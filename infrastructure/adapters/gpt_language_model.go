package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"github.com/donovanhide/eventsource"
	"net/http"
	"strings"
)

const DoneSignal = "[DONE]"

var errStreamEnded = errors.New("completion stream ended before " + DoneSignal)

type chatGptRequest struct {
	Stream   bool             `json:"stream"`
	Model    string           `json:"model"`
	Messages []chatGptMessage `json:"messages"`
}

type chatGptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGptChunkBody struct {
	Choices []chatGptResponseChoice `json:"choices"`
}

type chatGptResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

// gptLanguageModel streams a chat completion over server-sent events and
// returns the concatenated deltas once the endpoint signals completion.
type gptLanguageModel struct {
	logger    outbound.LoggerPort
	gptConfig *config.GptConfig
}

func NewGptLanguageModel(logger outbound.LoggerPort, gptConfig *config.GptConfig) outbound.LanguageModelPort {
	return &gptLanguageModel{
		logger:    logger,
		gptConfig: gptConfig,
	}
}

func (g *gptLanguageModel) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	httpReq, err := g.createRequest(newCtx, req)
	if err != nil {
		return "", err
	}

	stream, err := eventsource.SubscribeWithRequest("", httpReq)
	if err != nil {
		g.logger.Error(err, "Failed to subscribe to completion stream")
		return "", fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	var builder strings.Builder
	for {
		select {
		case <-ctx.Done():
			g.release(stream, cancel)
			return "", ctx.Err()
		case ev, ok := <-stream.Events:
			if !ok {
				return "", errStreamEnded
			}
			if ev.Data() == DoneSignal {
				g.release(stream, cancel)
				return builder.String(), nil
			}
			payload, err := g.extractPayload(ev)
			if err != nil {
				g.release(stream, cancel)
				return "", err
			}
			builder.WriteString(payload)
		case err := <-stream.Errors:
			// Never let the stream reconnect: it would replay a consumed body.
			stream.Close()
			if err == nil {
				err = errStreamEnded
			}
			g.logger.Error(err, "Completion stream failed")
			return "", fmt.Errorf("%w: %w", domain.ErrUpstream, err)
		}
	}
}

// release cancels the request and closes the stream only after its reader
// goroutine has reported the resulting error, so nothing sends on a closed
// channel.
func (g *gptLanguageModel) release(stream *eventsource.Stream, cancel context.CancelFunc) {
	cancel()
	go func() {
		for {
			select {
			case _, ok := <-stream.Events:
				if !ok {
					return
				}
			case <-stream.Errors:
				stream.Close()
				return
			}
		}
	}()
}

func (g *gptLanguageModel) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody chatGptChunkBody
	err := json.Unmarshal([]byte(event.Data()), &chunkBody)
	if err != nil {
		g.logger.Error(err, "Failed to unmarshal event data")
		return "", fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}

	return chunkBody.Choices[0].Delta.Content, nil
}

func (g *gptLanguageModel) createRequest(ctx context.Context, req outbound.CompletionRequest) (*http.Request, error) {
	promptReq := chatGptRequest{
		Stream: true,
		Model:  g.gptConfig.Model,
		Messages: []chatGptMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.gptConfig.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
