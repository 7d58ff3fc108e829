package inbound

import "context"

type ScriptSynthesizerPort interface {
	Synthesize(ctx context.Context, script string) ([]byte, error)
}
