package service

import (
	"context"
	"fmt"
	"path/filepath"

	"TripToVideo-server/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStorage 对象存储写入接口，便于测试替换
type ObjectStorage interface {
	UploadFile(ctx context.Context, localPath, objectName string) error
}

// MinioStorage 基于 MinIO 的对象存储实现
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage 初始化连接，在 main.go 中调用一次，worker 并发复用
func NewMinioStorage(cfg *config.Config) (*MinioStorage, error) {
	mc := cfg.MinIO
	client, err := minio.New(mc.Endpoint, &minio.Options{
		Creds:      credentials.NewStaticV4(mc.AccessKey, mc.SecretKey, ""),
		Secure:     mc.UseSSL,
		MaxRetries: 7,
	})
	if err != nil {
		return nil, fmt.Errorf("MinIO 初始化失败: %w", err)
	}
	return &MinioStorage{client: client, bucket: mc.Bucket}, nil
}

// UploadFile 上传本地文件到 objectName，已有对象直接覆盖
func (s *MinioStorage) UploadFile(ctx context.Context, localPath, objectName string) error {
	// 自动创建 Bucket
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("检查 Bucket 失败: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("创建 Bucket 失败: %w", err)
		}
	}

	// 根据文件扩展名确定 ContentType
	contentType := "application/octet-stream"
	switch filepath.Ext(objectName) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}

	_, err = s.client.FPutObject(ctx, s.bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("上传到 MinIO 失败: %w", err)
	}
	return nil
}
