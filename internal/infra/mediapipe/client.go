package mediapipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"newtube-go/internal/config"
	"newtube-go/pkg/logger"

	"go.uber.org/zap"
)

// 外部媒体管线客户端。视频文件不经过本服务：客户端直传到管线，
// 转码进度通过签名 Webhook 回推，这里只负责创建直传会话和拉取衍生素材

var (
	httpClient *http.Client
	cfg        *config.MediaConfig
)

// Upload 直传会话：客户端拿 URL 直接上传原始视频文件
type Upload struct {
	UploadID  string
	UploadURL string
}

// Init 初始化媒体管线客户端
func Init(c *config.MediaConfig) error {
	if c.BaseURL == "" {
		return fmt.Errorf("media pipeline base_url is empty")
	}
	cfg = c
	httpClient = &http.Client{Timeout: c.TimeoutDuration()}

	logger.Info("Media pipeline client initialized",
		zap.String("base_url", c.BaseURL),
	)
	return nil
}

// CreateUpload 在媒体管线创建一个直传会话
func CreateUpload(ctx context.Context) (*Upload, error) {
	payload := map[string]interface{}{
		"new_asset_settings": map[string]interface{}{
			"playback_policy": []string{"public"},
		},
		"cors_origin": "*",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(cfg.BaseURL, "/")+"/video/v1/uploads", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(cfg.TokenID, cfg.TokenSecret)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("create upload failed: status %d: %s", resp.StatusCode, raw)
	}

	var out struct {
		Data struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if out.Data.ID == "" || out.Data.URL == "" {
		return nil, fmt.Errorf("upload response missing id or url")
	}

	return &Upload{UploadID: out.Data.ID, UploadURL: out.Data.URL}, nil
}

// ThumbnailURL 资产封面帧地址
func ThumbnailURL(playbackID string) string {
	return fmt.Sprintf("%s/%s/thumbnail.jpg", strings.TrimRight(cfg.ImageBaseURL, "/"), playbackID)
}

// PreviewURL 资产动态预览图地址
func PreviewURL(playbackID string) string {
	return fmt.Sprintf("%s/%s/animated.gif", strings.TrimRight(cfg.ImageBaseURL, "/"), playbackID)
}

// TranscriptURL 字幕轨道的纯文本地址
func TranscriptURL(playbackID, trackID string) string {
	return fmt.Sprintf("%s/%s/text/%s.txt", strings.TrimRight(cfg.StreamBaseURL, "/"), playbackID, trackID)
}

// FetchBytes 拉取一个素材，返回内容和 Content-Type
func FetchBytes(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch %s failed: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}
