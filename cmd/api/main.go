package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"newtube-go/internal/api/handler"
	"newtube-go/internal/api/middleware"
	"newtube-go/internal/api/router"
	"newtube-go/internal/config"
	"newtube-go/internal/infra/database"
	infraES "newtube-go/internal/infra/elasticsearch"
	infraKafka "newtube-go/internal/infra/kafka"
	"newtube-go/internal/infra/mediapipe"
	infraMinio "newtube-go/internal/infra/minio"
	infraRedis "newtube-go/internal/infra/redis"
	"newtube-go/internal/model"
	"newtube-go/internal/repository"
	"newtube-go/internal/service"
	"newtube-go/pkg/logger"

	_ "newtube-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title NewTube API
// @version 1.0
// @description 视频托管平台 API 服务

// @contact.name API Support
// @contact.email support@newtube.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Video{},
		&model.VideoView{},
		&model.VideoReaction{},
		&model.Comment{},
		&model.CommentReaction{},
		&model.Subscription{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis（限流计数）
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化媒体管线客户端
	if err := mediapipe.Init(&cfg.Media); err != nil {
		logger.Fatal("Failed to init media pipeline client", zap.Error(err))
	}

	// 初始化Kafka生产者
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	viewRepo := repository.NewVideoViewRepository(db)
	videoReactionRepo := repository.NewVideoReactionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	commentReactionRepo := repository.NewCommentReactionRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	videoService := service.NewVideoService(videoRepo, categoryRepo, viewRepo)
	commentService := service.NewCommentService(commentRepo, videoRepo, userRepo)
	reactionService := service.NewReactionService(videoReactionRepo, commentReactionRepo, videoRepo, commentRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	searchService := service.NewSearchService(videoRepo)

	// 启动 AI 生成结果消费者（后台 goroutine）
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if topic, ok := cfg.Kafka.Topics["enrich_result"]; ok {
		go infraKafka.StartEnrichResultConsumer(
			consumerCtx,
			cfg.Kafka.Brokers,
			topic,
			"newtube-enrich-result",
			videoService.ApplyEnrichResult,
		)
	}

	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)
	reactionHandler := handler.NewReactionHandler(reactionService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	searchHandler := handler.NewSearchHandler(searchService)
	webhookHandler := handler.NewWebhookHandler(userService, videoService)

	// 写操作限流：按用户固定窗口计数，计数器放 Redis
	var rateLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewLimiter(
			middleware.NewRedisCounterStore(infraRedis.Get()),
			cfg.RateLimit.Limit,
			cfg.RateLimit.WindowDuration(),
		)
		rateLimit = middleware.RateLimit(limiter)
	} else {
		rateLimit = func(c *gin.Context) { c.Next() }
	}

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r,
		videoHandler, commentHandler, reactionHandler,
		subscriptionHandler, categoryHandler, searchHandler, webhookHandler,
		userService.ResolveExternalID, rateLimit,
	)

	// 启动HTTP服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
		zap.String("media", cfg.Media.BaseURL),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
