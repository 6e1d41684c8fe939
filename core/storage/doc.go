// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the catalog can be published as a static
// games.json document to AWS S3 or a self-hosted MinIO bucket, where a CDN or
// the console homebrew client can fetch it without hitting the API.
//
// # Client Interface
//
// The Client interface keeps only the calls the publisher needs, which keeps
// the mock in core/storage/mocks small.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
