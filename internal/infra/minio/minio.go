package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"newtube-go/internal/config"
	"newtube-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// 图片对象存储的 Bucket 划分：
// thumbnails 存视频封面（媒体管线抓取的和 AI 生成的），previews 存动态预览图
const (
	BucketThumbnails = "thumbnails"
	BucketPreviews   = "previews"
)

var client *minio.Client

// Init 初始化 MinIO 客户端并确保所有 Bucket 存在
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buckets := cfg.Buckets
	if len(buckets) == 0 {
		buckets = []string{BucketThumbnails, BucketPreviews}
	}

	for _, bucket := range buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
			logger.Info("MinIO bucket created", zap.String("bucket", bucket))
		}

		// 封面和预览图由前端直接加载，需要公开读
		policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucket)
		if err := client.SetBucketPolicy(ctx, bucket, policy); err != nil {
			return fmt.Errorf("failed to set public policy for %s: %w", bucket, err)
		}
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.Int("buckets", len(buckets)),
	)

	return nil
}

// Get 获取 MinIO 客户端实例
func Get() *minio.Client {
	return client
}

// UploadBytes 上传内存中的对象到指定 Bucket，返回公开访问 URL
func UploadBytes(ctx context.Context, bucket, objectName string, data []byte, contentType string) (string, error) {
	_, err := client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}
	return PublicURL(bucket, objectName), nil
}

// RemoveObject 删除对象，对象不存在时也返回 nil
func RemoveObject(ctx context.Context, bucket, objectName string) error {
	return client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

// PublicURL 生成公开访问 URL（Bucket 已在 Init 中设置为 public-read）
func PublicURL(bucket, objectName string) string {
	cfg := config.GetMinIO()
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.Endpoint, bucket, objectName)
}
