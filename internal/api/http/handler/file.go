package handler

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/service/file"
)

type FileHandler struct {
	svc file.Service
}

func NewFileHandler(svc file.Service) *FileHandler {
	return &FileHandler{svc: svc}
}

func mapFileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, file.ErrUnsupportedType):
		return fieldErrors(c, map[string]string{"file": "Định dạng tệp không được hỗ trợ"})
	case errors.Is(err, file.ErrFileTooLarge):
		return fieldErrors(c, map[string]string{"file": "Tệp vượt quá kích thước cho phép"})
	case errors.Is(err, file.ErrNotFound):
		return notFound(c, "Không tìm thấy tệp")
	case errors.Is(err, file.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// formFile pulls the "file" part out of the multipart body.
func formFile(c fiber.Ctx) (*multipart.FileHeader, multipart.File, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil, badRequest(c, "Vui lòng đính kèm tệp trong trường file")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, internalError(c)
	}
	return fh, f, nil
}

// POST /files/avatar
func (h *FileHandler) UploadAvatar(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	fh, f, ferr := formFile(c)
	if ferr != nil {
		return ferr
	}
	defer f.Close()

	key, err := h.svc.UploadAvatar(c.Context(), userID, fh.Header.Get("Content-Type"), f, fh.Size)
	if err != nil {
		return mapFileError(c, err)
	}

	return created(c, fiber.Map{"key": key})
}

// POST /files/clinic-logo
func (h *FileHandler) UploadClinicLogo(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	fh, f, ferr := formFile(c)
	if ferr != nil {
		return ferr
	}
	defer f.Close()

	key, err := h.svc.UploadClinicLogo(c.Context(), userID, fh.Header.Get("Content-Type"), f, fh.Size)
	if err != nil {
		return mapFileError(c, err)
	}

	return created(c, fiber.Map{"key": key})
}

// POST /files/chat/:conversationId
func (h *FileHandler) UploadChatAttachment(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := parseUUIDParam(c, "conversationId")
	if err != nil {
		return badRequest(c, "Mã cuộc trò chuyện không hợp lệ")
	}

	fh, f, ferr := formFile(c)
	if ferr != nil {
		return ferr
	}
	defer f.Close()

	up, err := h.svc.UploadChatAttachment(c.Context(), userID, convID, fh.Filename, fh.Header.Get("Content-Type"), f, fh.Size)
	if err != nil {
		return mapFileError(c, err)
	}

	return created(c, up)
}

// GET /files/download?key=
func (h *FileHandler) Download(c fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return badRequest(c, "Thiếu tham số key")
	}

	url, err := h.svc.DownloadURL(c.Context(), key)
	if err != nil {
		return mapFileError(c, err)
	}

	return ok(c, fiber.Map{"url": url})
}
