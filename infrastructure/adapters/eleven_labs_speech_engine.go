package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"net/http"
)

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// elevenLabsSpeechEngine maps the high tier to the primary model and the
// standard tier to the fallback model.
type elevenLabsSpeechEngine struct {
	ContentFetcher
	logger           outbound.LoggerPort
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewElevenLabsSpeechEngine(logger outbound.LoggerPort, contentFetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig) outbound.SpeechEnginePort {
	return &elevenLabsSpeechEngine{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (e *elevenLabsSpeechEngine) Generate(ctx context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	httpReq, err := e.getRequest(ctx, req)
	if err != nil {
		e.logger.ErrorWithFields(err, "Failed to construct the HTTP request for audio fetching", map[string]interface{}{
			"speaker": req.Speaker,
			"quality": req.Quality,
		})
		return nil, err
	}

	return e.FetchContent(httpReq)
}

func (e *elevenLabsSpeechEngine) voiceID(speaker domain.Speaker) string {
	if speaker == domain.ExpertSpeaker {
		return e.elevenLabsConfig.ExpertVoiceId
	}
	return e.elevenLabsConfig.HostVoiceId
}

func (e *elevenLabsSpeechEngine) modelID(quality domain.AudioQuality) string {
	if quality == domain.StandardQuality {
		return e.elevenLabsConfig.FallbackModelId
	}
	return e.elevenLabsConfig.ModelId
}

func (e *elevenLabsSpeechEngine) getRequest(ctx context.Context, req outbound.GenerateAudioRequest) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:    req.Text,
		ModelId: e.modelID(req.Quality),
		VoiceSettings: VoiceSettings{
			Stability:       e.elevenLabsConfig.Stability,
			SimilarityBoost: e.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := e.elevenLabsConfig.ApiUrl + "/" + e.voiceID(req.Speaker)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	reqHeaders := map[string]string{
		"Accept":       "audio/mpeg",
		"xi-api-key":   e.elevenLabsConfig.ApiKey,
		"Content-Type": "application/json",
	}
	for key, value := range reqHeaders {
		httpReq.Header.Add(key, value)
	}

	return httpReq, nil
}
