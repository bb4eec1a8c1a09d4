package kafka

import (
	"context"
	"encoding/json"
	"time"

	"newtube-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// TaskHandler 处理 AI 生成任务的回调函数（Worker 端）
type TaskHandler func(task *EnrichTask) error

// ResultHandler 处理 AI 生成结果的回调函数（API 端）
type ResultHandler func(result *EnrichResult) error

func newReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})
}

// StartEnrichTaskConsumer 启动生成任务消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartEnrichTaskConsumer(ctx context.Context, brokers []string, topic, groupID string, handler TaskHandler) {
	reader := newReader(brokers, topic, groupID)
	defer closeReader(reader, "enrich task")

	logger.Info("Kafka enrich task consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var task EnrichTask
		if err := json.Unmarshal(msg.Value, &task); err != nil {
			logger.Error("Failed to unmarshal enrich task",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		logger.Info("Received enrich task",
			zap.Int64("video_id", task.VideoID),
			zap.String("kind", task.Kind),
		)

		if err := handler(&task); err != nil {
			logger.Error("Failed to handle enrich task",
				zap.Int64("video_id", task.VideoID),
				zap.String("kind", task.Kind),
				zap.Error(err),
			)
		}
	}
}

// StartEnrichResultConsumer 启动生成结果消费者（阻塞，需在 goroutine 中运行）
func StartEnrichResultConsumer(ctx context.Context, brokers []string, topic, groupID string, handler ResultHandler) {
	reader := newReader(brokers, topic, groupID)
	defer closeReader(reader, "enrich result")

	logger.Info("Kafka enrich result consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var result EnrichResult
		if err := json.Unmarshal(msg.Value, &result); err != nil {
			logger.Error("Failed to unmarshal enrich result",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(&result); err != nil {
			logger.Error("Failed to handle enrich result",
				zap.Int64("video_id", result.VideoID),
				zap.String("kind", result.Kind),
				zap.Error(err),
			)
		}
	}
}

func closeReader(reader *kafka.Reader, name string) {
	if err := reader.Close(); err != nil {
		logger.Error("Failed to close kafka consumer", zap.Error(err))
	}
	logger.Info("Kafka consumer stopped", zap.String("consumer", name))
}
