package mock_generator

import (
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"time"
)

// Adapters bundles the offline stand-ins used when USE_REAL_AWS is off.
type Adapters struct {
	Headlines     outbound.HeadlineSourcePort
	LanguageModel outbound.LanguageModelPort
	SpeechEngine  outbound.SpeechEnginePort
}

func Init(logger outbound.LoggerPort, articlesFile string, delay time.Duration) Adapters {
	reader := NewFileArticleReader(logger, articlesFile)
	return Adapters{
		Headlines:     NewHeadlineSource(logger, reader),
		LanguageModel: NewLanguageModel(logger, delay),
		SpeechEngine:  NewSpeechEngine(logger, delay),
	}
}
