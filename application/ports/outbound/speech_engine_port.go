package outbound

import (
	"context"
	"github.com/Tejasai37/papercast/domain"
)

type GenerateAudioRequest struct {
	Text    string
	Speaker domain.Speaker
	Quality domain.AudioQuality
}

type SpeechEnginePort interface {
	Generate(ctx context.Context, req GenerateAudioRequest) ([]byte, error)
}
