package adapters

import (
	"context"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"
	"io"
)

// PollyMaxChars is the per-request text limit of SynthesizeSpeech.
const PollyMaxChars = 3000

type pollySpeechEngine struct {
	logger      outbound.LoggerPort
	pollySvc    *polly.Polly
	pollyConfig *config.PollyConfig
}

func NewPollySpeechEngine(logger outbound.LoggerPort, pollySvc *polly.Polly, pollyConfig *config.PollyConfig) outbound.SpeechEnginePort {
	return &pollySpeechEngine{
		logger:      logger,
		pollySvc:    pollySvc,
		pollyConfig: pollyConfig,
	}
}

func (p *pollySpeechEngine) Generate(ctx context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	engine := polly.EngineNeural
	if req.Quality == domain.StandardQuality {
		engine = polly.EngineStandard
	}
	voice := p.pollyConfig.HostVoice
	if req.Speaker == domain.ExpertSpeaker {
		voice = p.pollyConfig.ExpertVoice
	}

	out, err := p.pollySvc.SynthesizeSpeechWithContext(ctx, &polly.SynthesizeSpeechInput{
		Engine:       aws.String(engine),
		OutputFormat: aws.String(polly.OutputFormatMp3),
		Text:         aws.String(req.Text),
		VoiceId:      aws.String(voice),
	})
	if err != nil {
		p.logger.ErrorWithFields(err, "Polly synthesis failed", map[string]interface{}{
			"engine": engine,
			"voice":  voice,
			"chars":  len(req.Text),
		})
		return nil, fmt.Errorf("%w: polly: %w", domain.ErrUpstream, err)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		p.logger.Error(err, "Failed to read polly audio stream")
		return nil, err
	}
	return audio, nil
}
