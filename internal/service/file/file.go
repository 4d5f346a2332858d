package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entclinic "github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	entconv "github.com/pawcare-vn/pawcare_backend/internal/repo/conversation"
	entuser "github.com/pawcare-vn/pawcare_backend/internal/repo/user"
	"github.com/pawcare-vn/pawcare_backend/pkg/s3"
)

const (
	maxImageBytes      = 5 << 20
	maxAttachmentBytes = 10 << 20
)

// imageExt maps accepted image content types to a storage extension.
var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// attachmentTypes are the additional content types allowed in chat.
var attachmentTypes = map[string]string{
	"application/pdf": ".pdf",
	"text/plain":      ".txt",
}

type Upload struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Mime string `json:"mime"`
}

type Service interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (string, error)
	UploadClinicLogo(ctx context.Context, ownerID uuid.UUID, contentType string, body io.Reader, size int64) (string, error)
	UploadChatAttachment(ctx context.Context, userID, convID uuid.UUID, filename, contentType string, body io.Reader, size int64) (*Upload, error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

type fileService struct {
	db *repo.Client
	s3 *s3.Client
}

func New(db *repo.Client, s3c *s3.Client) Service {
	return &fileService{db: db, s3: s3c}
}

// UploadAvatar stores a profile picture and points the user record at it.
// The previous avatar object, if any, is removed best-effort.
func (s *fileService) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (string, error) {
	ext, ok := imageExt[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}
	if size <= 0 || size > maxImageBytes {
		return "", ErrFileTooLarge
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	key := "uploads/avatars/" + uuid.New().String() + ext
	if err := s.s3.Upload(ctx, key, contentType, body, size); err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	old := u.AvatarKey
	if err := s.db.User.UpdateOneID(userID).SetAvatarKey(key).Exec(ctx); err != nil {
		return "", fmt.Errorf("save avatar key: %w", err)
	}
	if old != nil && *old != "" {
		_ = s.s3.Delete(ctx, *old)
	}

	return key, nil
}

// UploadClinicLogo stores a logo for the partner's clinic.
func (s *fileService) UploadClinicLogo(ctx context.Context, ownerID uuid.UUID, contentType string, body io.Reader, size int64) (string, error) {
	ext, ok := imageExt[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}
	if size <= 0 || size > maxImageBytes {
		return "", ErrFileTooLarge
	}

	c, err := s.db.Clinic.Query().
		Where(entclinic.OwnerID(ownerID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("load clinic: %w", err)
	}

	key := "uploads/logos/" + uuid.New().String() + ext
	if err := s.s3.Upload(ctx, key, contentType, body, size); err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}

	old := c.LogoKey
	if err := s.db.Clinic.UpdateOneID(c.ID).SetLogoKey(key).Exec(ctx); err != nil {
		return "", fmt.Errorf("save logo key: %w", err)
	}
	if old != nil && *old != "" {
		_ = s.s3.Delete(ctx, *old)
	}

	return key, nil
}

// UploadChatAttachment stores a file shared inside a conversation. Only
// the customer or the clinic owner of the thread may attach files.
func (s *fileService) UploadChatAttachment(ctx context.Context, userID, convID uuid.UUID, filename, contentType string, body io.Reader, size int64) (*Upload, error) {
	ext, ok := imageExt[contentType]
	if !ok {
		ext, ok = attachmentTypes[contentType]
	}
	if !ok {
		return nil, ErrUnsupportedType
	}
	if size <= 0 || size > maxAttachmentBytes {
		return nil, ErrFileTooLarge
	}

	conv, err := s.db.Conversation.Query().
		Where(entconv.ID(convID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	if conv.CustomerID != userID {
		owned, err := s.db.Clinic.Query().
			Where(entclinic.ID(conv.ClinicID), entclinic.OwnerID(userID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check participant: %w", err)
		}
		if !owned {
			return nil, ErrForbidden
		}
	}

	key := fmt.Sprintf("uploads/chat/%s/%s%s", convID, uuid.New(), ext)
	if err := s.s3.Upload(ctx, key, contentType, body, size); err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}

	name := filepath.Base(strings.TrimSpace(filename))
	if name == "." || name == "/" || name == "" {
		name = "tep-dinh-kem" + ext
	}

	return &Upload{Key: key, Name: name, Mime: contentType}, nil
}

// DownloadURL returns a short-lived presigned URL for a stored object.
func (s *fileService) DownloadURL(ctx context.Context, key string) (string, error) {
	if key == "" || !strings.HasPrefix(key, "uploads/") {
		return "", ErrNotFound
	}
	url, err := s.s3.PresignDownload(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}
