package games

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"game-catalog/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher writes the full catalog as a static JSON document to object storage.
type Publisher struct {
	lister Lister
	client storage.Client
	bucket string
	object string
	logger *zap.Logger
}

// NewPublisher creates a publisher for bucket/object.
func NewPublisher(lister Lister, client storage.Client, bucket, object string, logger *zap.Logger) *Publisher {
	return &Publisher{
		lister: lister,
		client: client,
		bucket: bucket,
		object: object,
		logger: logger,
	}
}

// Publish uploads the catalog, creating the bucket if needed. A failed
// catalog read is returned as an error and nothing is uploaded, so a
// published document never holds an error object.
func (p *Publisher) Publish(ctx context.Context) (minio.UploadInfo, error) {
	result := p.lister.List(ctx, "")
	if err := result.Err(); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to encode catalog: %w", err)
	}

	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		p.logger.Info("Creating bucket", zap.String("bucket", p.bucket))
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return minio.UploadInfo{}, fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
	}

	info, err := p.client.PutObject(ctx, p.bucket, p.object, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s: %w", p.object, err)
	}

	p.logger.Info("Catalog published",
		zap.String("bucket", p.bucket),
		zap.String("object", p.object),
		zap.Int("games", len(result.Games)),
		zap.Int64("bytes", info.Size),
	)

	return info, nil
}
