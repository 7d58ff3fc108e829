package outbound

import "context"

type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
}

type LanguageModelPort interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
