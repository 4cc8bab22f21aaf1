package media

import "errors"

var (
	ErrBlobNotFound = errors.New("blob not found")
	ErrBadPath      = errors.New("path escapes the media root")
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
)
