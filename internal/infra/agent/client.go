package agent

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"newtube-go/internal/config"
	"newtube-go/pkg/logger"

	"go.uber.org/zap"
)

// AI 生成服务客户端（OpenAI 兼容接口），只在 Worker 进程里使用

var (
	httpClient *http.Client
	cfg        *config.AgentConfig
)

// Init 初始化 Agent 客户端
func Init(c *config.AgentConfig) error {
	if c.URL == "" {
		return fmt.Errorf("agent url is empty")
	}
	cfg = c
	httpClient = &http.Client{Timeout: c.TimeoutDuration()}

	logger.Info("Agent client initialized",
		zap.String("url", c.URL),
		zap.String("model", c.Model),
	)
	return nil
}

// GenerateText 根据系统提示词和用户输入生成一段文本
func GenerateText(ctx context.Context, system, prompt string) (string, error) {
	payload := map[string]interface{}{
		"model": cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.7,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	resp, err := post(ctx, "/v1/chat/completions", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("agent chat failed: status %d: %s", resp.StatusCode, raw)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode agent response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("agent returned no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// GenerateImage 根据提示词生成一张图片，返回图片字节
func GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	payload := map[string]interface{}{
		"model":           cfg.Model,
		"prompt":          prompt,
		"n":               1,
		"size":            "1792x1024",
		"response_format": "b64_json",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := post(ctx, "/v1/images/generations", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("agent image generation failed: status %d: %s", resp.StatusCode, raw)
	}

	var out struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode agent image response: %w", err)
	}
	if len(out.Data) == 0 || out.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("agent returned no image")
	}

	img, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return img, nil
}

func post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(cfg.URL, "/")+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return httpClient.Do(req)
}
