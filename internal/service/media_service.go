package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"ignite-backend/internal/config"
)

var ErrMediaStorageUnavailable = errors.New("media storage is not configured")

// MediaService stores uploaded images (profile avatars, project images) and
// returns the public URL that gets persisted on the owning record.
type MediaService interface {
	UploadImage(ctx context.Context, folder, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error)
}

type mediaService struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewMediaService(minioClient *minio.Client, cfg *config.Config) MediaService {
	return &mediaService{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *mediaService) UploadImage(ctx context.Context, folder, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	if s.minioClient == nil {
		return "", ErrMediaStorageUnavailable
	}

	objectPath := fmt.Sprintf("%s/%s/%s", folder, time.Now().Format("2006/01"), uuid.New().String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectPath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return s.publicURL(objectPath), nil
}

func (s *mediaService) publicURL(objectPath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, objectPath)
}
