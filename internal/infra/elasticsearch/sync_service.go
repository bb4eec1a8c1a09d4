package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"newtube-go/pkg/logger"

	"go.uber.org/zap"
)

// VideoDoc ES 视频文档结构。
// 索引里只放公开视频，视频转私有或被删时从索引移除
type VideoDoc struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	OwnerName   string `json:"owner_name"`
	CategoryID  *int64 `json:"category_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
	Duration    int    `json:"duration"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// IndexVideo 写入或覆盖单个视频文档
func IndexVideo(ctx context.Context, doc *VideoDoc) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, VideosIndexName(), fmt.Sprintf("%d", doc.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video indexed to ES", zap.Int64("video_id", doc.ID))
	return nil
}

// DeleteVideo 从索引删除视频，文档不存在时视为成功
func DeleteVideo(ctx context.Context, videoID int64) error {
	resp, err := Delete(ctx, VideosIndexName(), fmt.Sprintf("%d", videoID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}
