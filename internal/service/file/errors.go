package file

import "errors"

var (
	ErrUnsupportedType = errors.New("file type is not supported")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrNotFound        = errors.New("file or owner record not found")
	ErrForbidden       = errors.New("not allowed to access this file")
)
