package mock_generator

import (
	"context"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"time"
)

// speechEngine returns a small tagged payload per segment instead of audio.
type speechEngine struct {
	logger outbound.LoggerPort
	delay  time.Duration
}

func NewSpeechEngine(logger outbound.LoggerPort, delay time.Duration) outbound.SpeechEnginePort {
	return &speechEngine{
		logger: logger,
		delay:  delay,
	}
}

func (s *speechEngine) Generate(ctx context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("[%s/%s] %s\n", req.Speaker, req.Quality, req.Text)), nil
}
