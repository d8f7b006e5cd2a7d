package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"ai-tutor-be/internal/config"
	"ai-tutor-be/internal/controller"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/repository/memory"
	"ai-tutor-be/internal/repository/unitofwork"
	"ai-tutor-be/internal/service"
	"ai-tutor-be/pkg/embedding"
	"ai-tutor-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	TutorController    controller.ITutorController
	LearningController controller.ILearningController
	SessionController  controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.EmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.Anthropic,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.EmbedTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedTopicName,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	detectionService := service.NewDetectionService(llmProvider, sysLogger)
	guideService := service.NewGuideService(llmProvider, sysLogger)
	retrievalService := service.NewRetrievalService(uowFactory, embeddingProvider, sysLogger)
	solutionService := service.NewSolutionService(
		uowFactory,
		llmProvider,
		retrievalService,
		publisherService,
		sysLogger,
	)
	sessionService := service.NewSessionService(sessionRepo, detectionService, guideService, sysLogger)

	// 5. Controllers
	return &Container{
		TutorController:    controller.NewTutorController(detectionService, guideService),
		LearningController: controller.NewLearningController(solutionService, retrievalService),
		SessionController:  controller.NewSessionController(sessionService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
