package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"newtube-go/internal/config"
	"newtube-go/pkg/logger"

	"go.uber.org/zap"
)

// VideosIndexName 返回 videos 索引名，未配置时使用默认值
func VideosIndexName() string {
	name := config.GetElasticsearch().Index["videos"]
	if name == "" {
		name = "videos"
	}
	return name
}

// videosIndexMapping videos 索引的 mapping。
// 只索引搜索需要的字段，计数类字段不进索引（派生计数永远从数据库算）
func videosIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"user_id": {"type": "long"},
				"owner_name": {"type": "keyword"},
				"category_id": {"type": "long"},
				"title": {
					"type": "text",
					"analyzer": "standard",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 200}}
				},
				"description": {"type": "text", "analyzer": "standard"},
				"visibility": {"type": "keyword"},
				"duration": {"type": "integer"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"},
				"updated_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// EnsureVideosIndex 确保 videos 索引存在，不存在则创建
func EnsureVideosIndex(ctx context.Context) error {
	indexName := VideosIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(videosIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureVideosIndex(ctx)
}
