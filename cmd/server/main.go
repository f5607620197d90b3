package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"mailcraft/config"
	"mailcraft/internal/api"
	"mailcraft/internal/db"
	"mailcraft/internal/intent"
	"mailcraft/internal/llm"
	"mailcraft/internal/repository"
	"mailcraft/internal/service"
	"mailcraft/pkg/logger"
	"mailcraft/pkg/ratelimit"
	"mailcraft/pkg/redis"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	zlog := logger.NewLogger()
	defer zlog.Sync()

	// 2. Init DB
	dbConn, err := db.NewConnection(cfg.DB, zlog)
	if err != nil {
		zlog.Fatal("DB initialization failed", zap.Error(err))
	}

	// 3. Init Redis (限流用)
	rdb := redis.NewRedisClient(cfg.Redis)
	limiter := ratelimit.NewLimiter(rdb, cfg.RateLimit.PerMinute, time.Minute, zlog)

	// 4. Init LLM gateway（托管 API 或本地服务，配置切换）
	var gateway llm.Gateway
	switch cfg.LLM.Provider {
	case "openai":
		gateway = llm.NewOpenAIGateway(llm.OpenAIConfig{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.RequestTimeout(),
		})
	case "ollama":
		gateway = llm.NewOllamaGateway(llm.OllamaConfig{
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.RequestTimeout(),
		})
	default:
		log.Fatalf("unknown llm provider: %s", cfg.LLM.Provider)
	}

	// 5. Init intent inferencer（规则或远程分类服务，配置切换）
	var inferencer intent.Inferencer
	switch cfg.Classifier.Strategy {
	case "keyword":
		inferencer = intent.NewKeywordInferencer()
	case "remote":
		if cfg.Classifier.BaseURL == "" {
			log.Fatal("classifier.base_url is required for the remote strategy")
		}
		inferencer = intent.NewRemoteInferencer(cfg.Classifier.BaseURL, cfg.Classifier.Threshold, zlog)
	default:
		log.Fatalf("unknown classifier strategy: %s", cfg.Classifier.Strategy)
	}

	// 6. Init transcriber（与托管后端共用凭证）
	transcriber := llm.NewWhisperTranscriber(llm.WhisperConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.WhisperModel,
		Timeout: cfg.LLM.RequestTimeout(),
	})

	// 7. Init repositories
	userRepo := repository.NewUserRepository(dbConn)
	draftRepo := repository.NewDraftRepository(dbConn)

	// 8. Init services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	generateService := service.NewGenerateService(inferencer, gateway, transcriber, draftRepo, cfg.LLM.Model, zlog)

	// 9. Init handlers
	authHandler := api.NewAuthHandler(authService)
	generateHandler := api.NewGenerateHandler(generateService)
	draftsHandler := api.NewDraftsHandler(draftRepo)

	// 10. Init router
	router := api.NewRouter(authHandler, generateHandler, draftsHandler, limiter, cfg.JWT.Secret, dbConn)

	// 11. Run server
	if err := router.Run(cfg.Server.Port); err != nil {
		zlog.Fatal("server start failed", zap.Error(err))
	}
}
