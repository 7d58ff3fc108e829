package main

import (
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/application/services"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/infrastructure/adapters"
	mockgenerator "github.com/Tejasai37/papercast/mock"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/panjf2000/ants/v2"
	"net/http"
)

// application holds every wired collaborator shared by the commands.
type application struct {
	logger         outbound.LoggerPort
	workerPool     *ants.Pool
	session        *session.Session
	awsConfig      *config.AwsConfig
	pipelineConfig *config.PipelineConfig
	newsConfig     *config.NewsConfig
	localAudio     *config.LocalAudioConfig

	articleCache outbound.ArticleCachePort
	podcastStore outbound.PodcastStorePort
	discovery    inbound.ArticleDiscoveryPort
	generator    inbound.PodcastGeneratorPort
	admin        inbound.PodcastAdminPort
}

func bootstrap() (*application, error) {
	loggingConfig, err := config.GetLoggingConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get logging config: %w", err)
	}
	zeroLogger := adapters.NewZerologWrapper(loggingConfig)

	awsConfig, err := config.GetAwsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get aws config: %w", err)
	}
	pipelineConfig, err := config.GetPipelineConfig(awsConfig.UseRealAws)
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline config: %w", err)
	}
	newsConfig, err := config.GetNewsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get news config: %w", err)
	}
	mockConfig, err := config.GetMockConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get mock config: %w", err)
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
		Config:            aws.Config{Region: aws.String(awsConfig.Region)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}
	workerPool, err := ants.NewPool(pipelineConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler), ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	app := &application{
		logger:         zeroLogger,
		workerPool:     workerPool,
		session:        sess,
		awsConfig:      awsConfig,
		pipelineConfig: pipelineConfig,
		newsConfig:     newsConfig,
		articleCache:   adapters.NewMemoryArticleCache(),
	}

	mocks := mockgenerator.Init(zeroLogger, mockConfig.ArticlesFile, mockConfig.Delay)

	if err := app.wire(mocks); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (a *application) wire(mocks mockgenerator.Adapters) error {
	podcastStore, err := a.podcastStoreAdapter()
	if err != nil {
		return err
	}
	uploader, err := a.audioUploader()
	if err != nil {
		return err
	}
	languageModel, err := a.languageModel(mocks)
	if err != nil {
		return err
	}
	speechEngine, err := a.speechEngine(mocks)
	if err != nil {
		return err
	}

	newsFetcher := adapters.NewContentFetcher(a.logger, &http.Client{Timeout: a.newsConfig.RequestTimeout})
	newsAPI := adapters.NewNewsAPIClient(a.logger, newsFetcher, a.newsConfig)
	sources := []outbound.HeadlineSourcePort{newsAPI}
	for _, feed := range a.newsConfig.RssFeeds {
		sources = append(sources, adapters.NewRssHeadlineSource(a.logger, feed))
	}
	var searcher outbound.ArticleSearchPort
	if a.newsConfig.ApiKey != "" {
		searcher = newsAPI
	}

	a.podcastStore = podcastStore
	a.discovery = services.NewArticleDiscovery(a.logger, a.articleCache, sources, mocks.Headlines, searcher,
		adapters.NewLinkExtractor(a.logger, newsFetcher), a.workerPool, services.DiscoveryLimits{
			Headlines: a.pipelineConfig.HeadlineLimit,
			Search:    a.pipelineConfig.SearchLimit,
		})

	summarizer := services.NewInsightSummarizer(a.logger, languageModel, a.pipelineConfig.SummarizeTimeout)
	synthesizer := services.NewScriptSynthesizer(a.logger, speechEngine, a.workerPool,
		a.pipelineConfig.SegmentTimeout, a.pipelineConfig.MaxSegmentChars)
	a.generator = services.NewPodcastOrchestrator(a.logger, a.articleCache, podcastStore, summarizer, synthesizer, uploader,
		services.OrchestratorTimeouts{
			Store:      a.pipelineConfig.StoreTimeout,
			Upload:     a.pipelineConfig.UploadTimeout,
			Generation: a.pipelineConfig.GenerationTimeout,
		})
	a.admin = services.NewPodcastAdmin(a.logger, podcastStore)
	return nil
}

func (a *application) podcastStoreAdapter() (outbound.PodcastStorePort, error) {
	storeConfig, err := config.GetStoreConfig(a.awsConfig.UseRealAws)
	if err != nil {
		return nil, fmt.Errorf("failed to get store config: %w", err)
	}

	switch storeConfig.Backend {
	case config.StoreBackendDynamo:
		dynamoConfig, err := config.GetDynamoConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get dynamo config: %w", err)
		}
		return adapters.NewDynamoPodcastStore(a.logger, dynamodb.New(a.session), dynamoConfig), nil
	case config.StoreBackendRedis:
		return adapters.NewRedisPodcastStore(a.logger, adapters.NewRedisClient(storeConfig.RedisUrl)), nil
	default:
		return adapters.NewJsonFilePodcastStore(a.logger, storeConfig.FilePath)
	}
}

func (a *application) audioUploader() (outbound.AudioUploaderPort, error) {
	if a.awsConfig.UseRealAws {
		s3Config, err := config.GetS3Config()
		if err != nil {
			return nil, fmt.Errorf("failed to get s3 config: %w", err)
		}
		return adapters.NewS3AudioUploader(a.logger, s3.New(a.session), s3Config), nil
	}

	localAudio, err := config.GetLocalAudioConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get local audio config: %w", err)
	}
	a.localAudio = localAudio
	return adapters.NewLocalAudioUploader(a.logger, localAudio)
}

func (a *application) languageModel(mocks mockgenerator.Adapters) (outbound.LanguageModelPort, error) {
	switch a.pipelineConfig.LanguageModel {
	case config.LanguageModelBedrock:
		bedrockConfig, err := config.GetBedrockConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get bedrock config: %w", err)
		}
		return adapters.NewBedrockLanguageModel(a.logger, bedrockruntime.New(a.session), bedrockConfig), nil
	case config.LanguageModelGpt:
		gptConfig, err := config.GetGptConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get gpt config: %w", err)
		}
		return adapters.NewGptLanguageModel(a.logger, gptConfig), nil
	case config.LanguageModelAnthropic:
		anthropicConfig, err := config.GetAnthropicConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get anthropic config: %w", err)
		}
		return adapters.NewAnthropicLanguageModel(a.logger, anthropicConfig), nil
	case config.LanguageModelOpenAI:
		openAIConfig, err := config.GetOpenAIConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get openai config: %w", err)
		}
		return adapters.NewOpenAILanguageModel(a.logger, openAIConfig), nil
	case config.LanguageModelMock:
		return mocks.LanguageModel, nil
	default:
		return nil, fmt.Errorf("unknown LANGUAGE_MODEL_PROVIDER %q", a.pipelineConfig.LanguageModel)
	}
}

func (a *application) speechEngine(mocks mockgenerator.Adapters) (outbound.SpeechEnginePort, error) {
	switch a.pipelineConfig.SpeechEngine {
	case config.SpeechEnginePolly:
		pollyConfig, err := config.GetPollyConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get polly config: %w", err)
		}
		a.pipelineConfig.MaxSegmentChars = segmentCharLimit(a.pipelineConfig.MaxSegmentChars, adapters.PollyMaxChars)
		return adapters.NewPollySpeechEngine(a.logger, polly.New(a.session), pollyConfig), nil
	case config.SpeechEngineElevenLabs:
		elevenLabsConfig, err := config.GetElevenLabsConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get eleven labs config: %w", err)
		}
		return adapters.NewElevenLabsSpeechEngine(a.logger, adapters.NewContentFetcher(a.logger, nil), elevenLabsConfig), nil
	case config.SpeechEngineMock:
		return mocks.SpeechEngine, nil
	default:
		return nil, fmt.Errorf("unknown SPEECH_ENGINE %q", a.pipelineConfig.SpeechEngine)
	}
}

// segmentCharLimit caps the configured chunk size at the engine's request limit.
func segmentCharLimit(configured int, engineMax int) int {
	if configured <= 0 || configured > engineMax {
		return engineMax
	}
	return configured
}

func (a *application) Close() {
	a.workerPool.Release()
}
