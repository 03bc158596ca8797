package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// 署名せずにキーを記録するだけのissuer
type fakeIssuer struct {
	lastKey         string
	lastContentType string
	lastExpiresAt   time.Time
	err             error
}

func (f *fakeIssuer) IssueUploadURL(ctx context.Context, key string, contentType string, expiresAt time.Time) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastKey = key
	f.lastContentType = contentType
	f.lastExpiresAt = expiresAt
	return "https://signed.example.com/" + key, nil
}

func (f *fakeIssuer) PublicURL(key string) string {
	return "https://storage.googleapis.com/test-bucket/" + key
}

func newUploadUC(issuer *fakeIssuer) *usecase.UploadUsecase {
	return usecase.NewUploadUsecase(issuer, &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)})
}

func TestUploadUsecase_PresignUpload_Success(t *testing.T) {
	issuer := new(fakeIssuer)
	uc := newUploadUC(issuer)

	out, err := uc.PresignUpload(context.Background(), usecase.PresignUploadInput{
		FileName:    "press.jpg",
		ContentType: "image/jpeg",
		EntityID:    "prod-1",
		Kind:        "image",
	})
	assert.NoError(t, err)

	assert.Equal(t, "prod-1/images/press.jpg", out.Key)
	assert.Equal(t, "press", out.FileName)
	assert.Equal(t, "https://signed.example.com/prod-1/images/press.jpg", out.UploadURL)
	assert.Equal(t, "https://storage.googleapis.com/test-bucket/prod-1/images/press.jpg", out.PublicURL)

	// 署名にContentTypeと1時間の期限が渡る
	assert.Equal(t, "image/jpeg", issuer.lastContentType)
	assert.Equal(t, time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC), issuer.lastExpiresAt)
}

func TestUploadUsecase_PresignUpload_KindFolders(t *testing.T) {
	cases := map[string]string{
		"image":    "images",
		"video":    "videos",
		"document": "documents",
	}

	for kind, folder := range cases {
		issuer := new(fakeIssuer)
		uc := newUploadUC(issuer)

		out, err := uc.PresignUpload(context.Background(), usecase.PresignUploadInput{
			FileName:    "f.bin",
			ContentType: "application/octet-stream",
			EntityID:    "e1",
			Kind:        kind,
		})
		assert.NoError(t, err)
		assert.Equal(t, "e1/"+folder+"/f.bin", out.Key)
	}
}

func TestUploadUsecase_PresignUpload_Validation(t *testing.T) {
	uc := newUploadUC(new(fakeIssuer))
	ctx := context.Background()

	_, err := uc.PresignUpload(ctx, usecase.PresignUploadInput{ContentType: "image/jpeg", EntityID: "e1", Kind: "image"})
	assertHTTPError(t, err, http.StatusBadRequest, usecase.CodeInvalidInput)

	_, err = uc.PresignUpload(ctx, usecase.PresignUploadInput{FileName: "a/b.jpg", ContentType: "image/jpeg", EntityID: "e1", Kind: "image"})
	assertHTTPError(t, err, http.StatusBadRequest, usecase.CodeInvalidInput)

	_, err = uc.PresignUpload(ctx, usecase.PresignUploadInput{FileName: "b.jpg", EntityID: "e1", Kind: "image"})
	assertHTTPError(t, err, http.StatusBadRequest, usecase.CodeInvalidInput)

	_, err = uc.PresignUpload(ctx, usecase.PresignUploadInput{FileName: "b.jpg", ContentType: "image/jpeg", Kind: "image"})
	assertHTTPError(t, err, http.StatusBadRequest, usecase.CodeInvalidInput)

	_, err = uc.PresignUpload(ctx, usecase.PresignUploadInput{FileName: "b.jpg", ContentType: "image/jpeg", EntityID: "e1", Kind: "archive"})
	assertHTTPError(t, err, http.StatusBadRequest, usecase.CodeInvalidInput)
}

func TestUploadUsecase_PresignUpload_SignerFailure(t *testing.T) {
	issuer := &fakeIssuer{err: errors.New("no key")}
	uc := newUploadUC(issuer)

	_, err := uc.PresignUpload(context.Background(), usecase.PresignUploadInput{
		FileName:    "b.jpg",
		ContentType: "image/jpeg",
		EntityID:    "e1",
		Kind:        "image",
	})
	assertHTTPError(t, err, http.StatusInternalServerError, usecase.CodeStorageError)
}
