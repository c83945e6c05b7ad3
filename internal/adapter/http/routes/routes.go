package routes

import (
	"context"
	"fmt"
	"log"

	_ "dealdesk/docs" // swag registration
	"dealdesk/internal/adapter/http/handlers"
	"dealdesk/internal/adapter/persistence/repository"
	"dealdesk/internal/infrastructure/config"
	"dealdesk/internal/infrastructure/database"
	"dealdesk/internal/infrastructure/httpclient"
	"dealdesk/internal/infrastructure/llm"
	"dealdesk/internal/infrastructure/logger"
	"dealdesk/internal/infrastructure/ocr"
	"dealdesk/internal/infrastructure/pdftext"
	"dealdesk/internal/usecase"
	"dealdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the use cases the HTTP layer serves.
type Dependencies struct {
	Deals      usecase.IDealUseCase
	Extraction usecase.IExtractionUseCase
	Log        *zap.Logger
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = zlog.Sync() }()
	gin.SetMode(cfg.Server.Mode)

	ctx := context.Background()
	repo, closeRepo, err := buildDealRepository(ctx, cfg)
	if err != nil {
		zlog.Fatal("[startup] deal repository", zap.String("backend", cfg.Store.Backend), zap.Error(err))
	}
	defer closeRepo()

	extractor, err := buildExtraction(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("[startup] extraction", zap.Error(err))
	}

	router := NewRouter(Dependencies{
		Deals:      usecase.NewDealUseCase(repo, zlog, cfg.Analysis.DeltaWarningPercent),
		Extraction: extractor,
		Log:        zlog,
	})

	zlog.Info("[startup] listening",
		zap.String("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Backend),
		zap.Bool("extraction", extractor.Configured()),
		zap.String("provider", extractor.Provider()))

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter builds the engine with middleware and every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, deps.Log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	dealHandler := handlers.NewDealHandler(deps.Deals, deps.Log)
	extractionHandler := handlers.NewExtractionHandler(deps.Extraction, deps.Log)
	systemHandler := handlers.NewSystemHandler(deps.Extraction)

	v1 := router.Group("/v1")
	addSystemRoutes(v1, systemHandler)
	addDealRoutes(v1, dealHandler)
	addExtractionRoutes(v1, extractionHandler)
	return router
}

func setMiddlewares(router *gin.Engine, zlog *zap.Logger) {
	router.Use(logger.GinMiddleware(zlog))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("[http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}

func buildDealRepository(ctx context.Context, cfg *config.Config) (interfaces.IDealRepository, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewDealRedisRepository(rdb, cfg.Redis.Key), func() { _ = rdb.Close() }, nil
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewDealDynamoRepository(ddb, cfg.DynamoDB.Table), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// buildExtraction wires the CIM pipeline. A missing model credential leaves
// extraction disabled rather than failing startup; OCR is optional.
func buildExtraction(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (*usecase.ExtractionUseCase, error) {
	var ocrClient interfaces.IOCRClient
	if cfg.OCR.APIKey != "" {
		ocrClient = ocr.NewSpaceClient(httpclient.New(zlog, cfg.Retry.MaxRetries, cfg.LLM.Timeout), cfg.OCR.Endpoint, cfg.OCR.APIKey)
	}
	pdfReader := pdftext.NewReader()

	if !cfg.LLM.ExtractionConfigured() {
		zlog.Warn("[startup] no model credential configured, CIM extraction disabled", zap.String("provider", cfg.LLM.Provider))
		return usecase.NewExtractionUseCase(nil, pdfReader, ocrClient, cfg.LLM.Timeout, zlog), nil
	}

	// Model calls retry on capacity errors in RetryingClient; the transport
	// only retries connection failures.
	transport := httpclient.New(zlog, 0, cfg.LLM.Timeout)

	var client interfaces.ILLMClient
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		gc, err := llm.NewGeminiClient(ctx, cfg.LLM.Gemini.APIKey, cfg.LLM.Model, "", transport.StandardClient())
		if err != nil {
			return nil, err
		}
		client = gc
	default:
		client = llm.NewReplicateClient(transport, cfg.LLM.Replicate.BaseURL, cfg.LLM.Replicate.APIToken, cfg.LLM.Model, zlog)
	}

	policy := llm.RetryPolicy{
		MaxRetries:        cfg.Retry.MaxRetries,
		InitialDelay:      cfg.Retry.InitialDelay,
		BackoffMultiplier: cfg.Retry.BackoffMultiplier,
	}
	return usecase.NewExtractionUseCase(llm.WithRetry(client, policy, zlog), pdfReader, ocrClient, cfg.LLM.Timeout, zlog), nil
}
