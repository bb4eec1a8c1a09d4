package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"newtube-go/internal/config"
	"newtube-go/internal/enrich"
	"newtube-go/internal/infra/agent"
	infraKafka "newtube-go/internal/infra/kafka"
	"newtube-go/internal/infra/mediapipe"
	infraMinio "newtube-go/internal/infra/minio"
	"newtube-go/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	if err := mediapipe.Init(&cfg.Media); err != nil {
		logger.Fatal("Failed to init media pipeline client", zap.Error(err))
	}

	if err := agent.Init(&cfg.Agent); err != nil {
		logger.Fatal("Failed to init agent client", zap.Error(err))
	}

	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	taskTopic := cfg.Kafka.Topics["enrich_task"]
	groupID := "newtube-enrich-worker"

	logger.Info("Enrich worker started",
		zap.String("topic", taskTopic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartEnrichTaskConsumer(ctx, cfg.Kafka.Brokers, taskTopic, groupID, func(task *infraKafka.EnrichTask) error {
		return enrich.HandleTask(ctx, task)
	})
}
