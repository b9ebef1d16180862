package minio

import (
	"Photoshare/internal/api/config"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// UploadObject 上传对象并返回对象名
func UploadObject(ctx context.Context, client *minio.Client, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := client.PutObject(ctx, config.Cfg.MinIO.Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}
	return nil
}

// RemoveObject 删除对象
func RemoveObject(ctx context.Context, client *minio.Client, objectName string) error {
	return client.RemoveObject(ctx, config.Cfg.MinIO.Bucket, objectName, minio.RemoveObjectOptions{})
}

// PresignedGetURL 生成对象的临时访问链接
func PresignedGetURL(ctx context.Context, client *minio.Client, objectName string, expiry time.Duration) (string, error) {
	u, err := client.PresignedGetObject(ctx, config.Cfg.MinIO.Bucket, objectName, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", objectName, err)
	}
	return u.String(), nil
}
