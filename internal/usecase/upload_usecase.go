package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const uploadURLTTL = time.Hour

// 署名付きアップロードURLを発行する約束（infra/uploadが実装）
type UploadURLIssuer interface {
	IssueUploadURL(ctx context.Context, key string, contentType string, expiresAt time.Time) (string, error)
	PublicURL(key string) string
}

type UploadKind string

const (
	UploadKindImage    UploadKind = "image"
	UploadKindVideo    UploadKind = "video"
	UploadKindDocument UploadKind = "document"
)

// UploadUsecase はファイルの直接アップロード用に署名付きURLを払い出す。
// 実body はクライアントがストレージへPUTする。
type UploadUsecase struct {
	issuer UploadURLIssuer
	clock  Clock
}

// DI
func NewUploadUsecase(issuer UploadURLIssuer, clock Clock) *UploadUsecase {
	return &UploadUsecase{issuer: issuer, clock: clock}
}

type PresignUploadInput struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	EntityID    string `json:"entity_id"`
	Kind        string `json:"kind"`
}

type PresignUploadOutput struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	FileName  string `json:"file_name"`
	PublicURL string `json:"public_url"`
}

// 署名付きPUT URLを発行。キーは {entityID}/{kind}/{fileName}。
func (u *UploadUsecase) PresignUpload(ctx context.Context, in PresignUploadInput) (*PresignUploadOutput, error) {
	in.FileName = strings.TrimSpace(in.FileName)
	in.ContentType = strings.TrimSpace(in.ContentType)
	in.EntityID = strings.TrimSpace(in.EntityID)

	if in.FileName == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "file_name is required")
	}
	if strings.Contains(in.FileName, "/") {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "file_name must not contain '/'")
	}
	if in.ContentType == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "content_type is required")
	}
	if in.EntityID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "entity_id is required")
	}

	folder, err := kindFolder(UploadKind(in.Kind))
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid kind")
	}

	key := fmt.Sprintf("%s/%s/%s", in.EntityID, folder, in.FileName)
	expiresAt := u.clock.Now().Add(uploadURLTTL)

	uploadURL, err := u.issuer.IssueUploadURL(ctx, key, in.ContentType, expiresAt)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "could not sign upload url")
	}

	return &PresignUploadOutput{
		UploadURL: uploadURL,
		Key:       key,
		FileName:  stripExtension(in.FileName),
		PublicURL: u.issuer.PublicURL(key),
	}, nil
}

// キー内のフォルダ名へ変換
func kindFolder(kind UploadKind) (string, error) {
	switch kind {
	case UploadKindImage:
		return "images", nil
	case UploadKindVideo:
		return "videos", nil
	case UploadKindDocument:
		return "documents", nil
	default:
		return "", fmt.Errorf("invalid kind: %q", kind)
	}
}

func stripExtension(fileName string) string {
	i := strings.LastIndex(fileName, ".")
	if i <= 0 {
		return fileName
	}
	return fileName[:i]
}
