package file

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidCategory = errors.New("unknown file category")
)
