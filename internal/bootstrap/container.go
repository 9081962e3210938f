package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/Shravansapate/legislate-voice-aid/internal/config"
	"github.com/Shravansapate/legislate-voice-aid/internal/constant"
	"github.com/Shravansapate/legislate-voice-aid/internal/controller"
	"github.com/Shravansapate/legislate-voice-aid/internal/handler"
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"
	"github.com/Shravansapate/legislate-voice-aid/internal/repository/implementation"
	"github.com/Shravansapate/legislate-voice-aid/internal/repository/memory"
	"github.com/Shravansapate/legislate-voice-aid/internal/repository/preference"
	"github.com/Shravansapate/legislate-voice-aid/internal/service"
	"github.com/Shravansapate/legislate-voice-aid/internal/websocket"
	"github.com/Shravansapate/legislate-voice-aid/pkg/llm/factory"
	"github.com/Shravansapate/legislate-voice-aid/pkg/ocr/ocrspace"
	"github.com/Shravansapate/legislate-voice-aid/pkg/speech/elevenlabs"

	pktNats "github.com/Shravansapate/legislate-voice-aid/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	OcrController      controller.IOcrController
	DocumentController controller.IDocumentController
	NgoController      controller.INgoController
	SettingsController controller.ISettingsController

	// Background Services (Exposed for main.go to run)
	SpeechService       service.ISpeechService
	NotificationService *service.NotificationService

	// WebSockets
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:          cfg.Ai.Provider,
		Model:             cfg.Ai.Model,
		OpenRouterAPIKey:  cfg.Keys.OpenRouter,
		OpenRouterBaseURL: cfg.Ai.OpenRouterBaseURL,
		OpenRouterReferer: cfg.App.ClientURL,
		OllamaBaseURL:     cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	ocrProvider := ocrspace.NewProvider(cfg.Keys.OcrSpace, cfg.Ocr.BaseURL)
	synthesizer := elevenlabs.NewSynthesizer(cfg.Speech.BaseURL, cfg.Speech.VoiceID, cfg.Speech.ModelID)

	// In-memory conversation storage
	conversationRepo := memory.NewConversationRepository()

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, constant.AssistantReplyTopic)

	chatService := service.NewChatService(
		conversationRepo,
		llmProvider,
		publisherService,
		wsHub,
		time.Duration(cfg.Ai.ReplyTimeoutSecs)*time.Second,
		sysLogger,
	)

	// Browser frames (speech_ended, transcript_final) land in the chat
	// service; wire before any client can connect.
	wsHub.SetInboundHandler(chatService.HandleStreamFrame)
	go wsHub.Run()

	speechKeyRepo := preference.NewSpeechKeyRepository(rdb)
	speechService := service.NewSpeechService(
		pubSub,
		constant.AssistantReplyTopic,
		speechKeyRepo,
		synthesizer,
		chatService,
		wsHub,
		sysLogger,
	)

	ocrService := service.NewOcrService(
		ocrProvider,
		[]string{cfg.Ocr.Language},
		natsPub,
		wsHub,
		sysLogger,
	)

	documentService := service.NewDocumentService(natsPub, sysLogger)

	ngoRepo := implementation.NewNgoRepository(db)
	ngoService := service.NewNgoService(ngoRepo, sysLogger)

	settingsService := service.NewSettingsService(speechKeyRepo, sysLogger)

	var notifService *service.NotificationService
	if natsSub != nil {
		notifService = service.NewNotificationService(natsSub, wsHub, wsLogger)
	}

	// Handler
	streamHandler := handler.NewStreamHandler(chatService, wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService),
		OcrController:      controller.NewOcrController(ocrService),
		DocumentController: controller.NewDocumentController(documentService),
		NgoController:      controller.NewNgoController(ngoService),
		SettingsController: controller.NewSettingsController(settingsService),

		SpeechService:       speechService,
		NotificationService: notifService,

		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,
	}
}
