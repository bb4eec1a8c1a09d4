package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"newtube-go/internal/config"
	"newtube-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 生成任务种类
const (
	EnrichKindTitle       = "title"
	EnrichKindDescription = "description"
	EnrichKindThumbnail   = "thumbnail"
)

// 生成结果状态
const (
	EnrichStatusDone   = "done"
	EnrichStatusFailed = "failed"
)

// EnrichTask AI 生成任务消息体。
// Worker 端不连数据库，定位素材所需的播放/字幕标识全部随消息携带
type EnrichTask struct {
	VideoID    int64  `json:"video_id"`
	Kind       string `json:"kind"`
	PlaybackID string `json:"playback_id,omitempty"`
	TrackID    string `json:"track_id,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
}

// EnrichResult AI 生成结果消息体。
// 标题/描述结果放在 Value；封面结果 Value 为对象名、URL 为公开访问地址
type EnrichResult struct {
	VideoID int64  `json:"video_id"`
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Value   string `json:"value,omitempty"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendEnrichTask 发送 AI 生成任务到 Kafka
func SendEnrichTask(ctx context.Context, topic string, task *EnrichTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal enrich task: %w", err)
	}

	// 同一视频的任务落同一分区，结果按提交顺序回放
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("video-%d", task.VideoID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send enrich task: %w", err)
	}

	logger.Info("Enrich task sent",
		zap.Int64("video_id", task.VideoID),
		zap.String("kind", task.Kind),
		zap.String("topic", topic),
	)

	return nil
}

// SendEnrichResult 发送 AI 生成结果到 Kafka（Worker 端调用）
func SendEnrichResult(ctx context.Context, topic string, result *EnrichResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal enrich result: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("video-%d", result.VideoID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send enrich result: %w", err)
	}
	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
