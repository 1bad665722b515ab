// Package attachment stores item photos uploaded with a return request.
package attachment

import (
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
)

type Storage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type Image struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Uploader checks an image against the return policy before storing it.
type Uploader struct {
	storage   Storage
	validator *returns.Validator
	logger    *zap.Logger
}

func NewUploader(storage Storage, validator *returns.Validator, logger *zap.Logger) *Uploader {
	return &Uploader{storage: storage, validator: validator, logger: logger}
}

func (u *Uploader) Upload(ctx context.Context, data []byte) (*Image, error) {
	mt := mimetype.Detect(data)
	contentType := mt.String()
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}

	size := int64(len(data))
	if errs := u.validator.ValidateImage(size, contentType); len(errs) > 0 {
		return nil, returns.ValidationFailed("Invalid image", map[string]string{"image": strings.Join(errs, "; ")})
	}

	key := uuid.NewString() + mt.Extension()
	url, err := u.storage.Put(ctx, key, contentType, data)
	if err != nil {
		u.logger.Error("failed to store image", zap.String("key", key), zap.Error(err))
		return nil, returns.CollaboratorFailure("Failed to upload image", err)
	}
	return &Image{URL: url, Key: key, ContentType: contentType, Size: size}, nil
}
