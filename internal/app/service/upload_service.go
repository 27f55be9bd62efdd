package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ikkim/cart-backend/internal/storage"
	"github.com/ikkim/cart-backend/pkg/logger"
)

var (
	ErrUnsupportedImageType = errors.New("only image files are allowed (JPEG, PNG, GIF, WEBP)")
	ErrUploadsDisabled      = errors.New("image uploads are not configured")
)

// ItemImageFolder is the bucket prefix for cart item images.
const ItemImageFolder = "cart-items"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ImagePresigner is satisfied by *storage.S3Storage.
type ImagePresigner interface {
	PresignPut(ctx context.Context, folder, filename, contentType string) (*storage.PresignedUpload, error)
}

type UploadService interface {
	PresignItemImage(ctx context.Context, filename, contentType string) (*storage.PresignedUpload, error)
}

type uploadService struct {
	presigner ImagePresigner
}

// NewUploadService accepts a nil presigner; every call then fails with ErrUploadsDisabled.
func NewUploadService(presigner ImagePresigner) UploadService {
	return &uploadService{presigner: presigner}
}

func (s *uploadService) PresignItemImage(ctx context.Context, filename, contentType string) (*storage.PresignedUpload, error) {
	log := logger.FromContext(ctx)

	if s.presigner == nil {
		return nil, ErrUploadsDisabled
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !allowedImageTypes[contentType] {
		log.Warn("Rejected item image upload", map[string]interface{}{
			"content_type": contentType,
		})
		return nil, ErrUnsupportedImageType
	}

	upload, err := s.presigner.PresignPut(ctx, ItemImageFolder, filename, contentType)
	if err != nil {
		log.Error("Failed to presign item image upload", err, map[string]interface{}{
			"filename":     filename,
			"content_type": contentType,
		})
		return nil, err
	}

	log.Info("Item image upload presigned", map[string]interface{}{
		"key": upload.Key,
	})
	return upload, nil
}
