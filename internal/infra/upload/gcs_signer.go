package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// GCSSigner はGCSの署名付きPUT URLを発行する。
type GCSSigner struct {
	bucket     string
	accessID   string
	privateKey []byte
}

// DI
func NewGCSSigner(bucket string, accessID string, privateKey []byte) *GCSSigner {
	return &GCSSigner{
		bucket:     bucket,
		accessID:   accessID,
		privateKey: privateKey,
	}
}

// 署名付きPUT URL。ContentTypeは署名に含むのでクライアントのPUTも一致させること。
func (s *GCSSigner) IssueUploadURL(_ context.Context, key string, contentType string, expiresAt time.Time) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("bucket is empty")
	}
	if s.accessID == "" || len(s.privateKey) == 0 {
		return "", fmt.Errorf("signer credentials missing")
	}

	u, err := storage.SignedURL(s.bucket, key, &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "PUT",
		GoogleAccessID: s.accessID,
		PrivateKey:     s.privateKey,
		ContentType:    contentType,
		Expires:        expiresAt,
	})
	if err != nil {
		return "", fmt.Errorf("sign url: %w", err)
	}
	return u, nil
}

// 公開URL
func (s *GCSSigner) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, strings.TrimLeft(key, "/"))
}
