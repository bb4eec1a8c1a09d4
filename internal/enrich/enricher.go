package enrich

import (
	"context"
	"fmt"
	"time"

	"newtube-go/internal/config"
	"newtube-go/internal/infra/agent"
	infraKafka "newtube-go/internal/infra/kafka"
	"newtube-go/internal/infra/mediapipe"
	infraMinio "newtube-go/internal/infra/minio"
	"newtube-go/pkg/logger"

	"go.uber.org/zap"
)

// Worker 进程的任务执行器：消费生成任务，调用 AI 服务，
// 把结果发回结果 topic 由 API 进程回写数据库。Worker 自己不连数据库

const titleSystemPrompt = `You generate a concise, engaging title for a video based on its transcript.
Rules: at most 100 characters, no quotes, no markup, output the title text only.`

const descriptionSystemPrompt = `You summarize a video transcript into a viewer-facing description.
Rules: 3-5 sentences, plain text, highlight the key moments, output the description only.`

// HandleTask 执行一个生成任务并把结果发回结果 topic
func HandleTask(ctx context.Context, task *infraKafka.EnrichTask) error {
	result := &infraKafka.EnrichResult{
		VideoID: task.VideoID,
		Kind:    task.Kind,
		Status:  infraKafka.EnrichStatusDone,
	}

	var err error
	switch task.Kind {
	case infraKafka.EnrichKindTitle:
		result.Value, err = generateFromTranscript(ctx, task, titleSystemPrompt)
	case infraKafka.EnrichKindDescription:
		result.Value, err = generateFromTranscript(ctx, task, descriptionSystemPrompt)
	case infraKafka.EnrichKindThumbnail:
		result.Value, result.URL, err = generateThumbnail(ctx, task)
	default:
		err = fmt.Errorf("unknown enrich kind: %s", task.Kind)
	}

	if err != nil {
		logger.Error("Enrich task execution failed",
			zap.Int64("video_id", task.VideoID),
			zap.String("kind", task.Kind),
			zap.Error(err))
		result.Status = infraKafka.EnrichStatusFailed
		result.Value = ""
		result.URL = ""
		result.Error = err.Error()
	}

	topic := config.GetKafka().Topics["enrich_result"]
	return infraKafka.SendEnrichResult(ctx, topic, result)
}

// generateFromTranscript 拉取字幕文本，交给 AI 生成标题或描述
func generateFromTranscript(ctx context.Context, task *infraKafka.EnrichTask, systemPrompt string) (string, error) {
	if task.PlaybackID == "" || task.TrackID == "" {
		return "", fmt.Errorf("task missing playback or track id")
	}

	transcript, _, err := mediapipe.FetchBytes(ctx, mediapipe.TranscriptURL(task.PlaybackID, task.TrackID))
	if err != nil {
		return "", fmt.Errorf("fetch transcript: %w", err)
	}
	if len(transcript) == 0 {
		return "", fmt.Errorf("transcript is empty")
	}

	text, err := agent.GenerateText(ctx, systemPrompt, string(transcript))
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}
	return text, nil
}

// generateThumbnail 用提示词生成封面并存入对象存储，返回对象名和公开 URL
func generateThumbnail(ctx context.Context, task *infraKafka.EnrichTask) (string, string, error) {
	if task.Prompt == "" {
		return "", "", fmt.Errorf("task missing prompt")
	}

	img, err := agent.GenerateImage(ctx, task.Prompt)
	if err != nil {
		return "", "", fmt.Errorf("generate image: %w", err)
	}

	object := fmt.Sprintf("%d/thumbnail-ai-%d.png", task.VideoID, time.Now().Unix())
	url, err := infraMinio.UploadBytes(ctx, infraMinio.BucketThumbnails, object, img, "image/png")
	if err != nil {
		return "", "", fmt.Errorf("store image: %w", err)
	}
	return object, url, nil
}
