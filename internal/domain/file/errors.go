package file

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("file type is not allowed: only images (jpg, png, gif, webp) and PDFs are accepted")
	ErrPayloadTooLarge      = errors.New("file exceeds the maximum allowed size of 10 MB")
	ErrInvalidCategory      = errors.New("invalid file category")
	ErrInvalidFilename      = errors.New("invalid filename")
	ErrFileNotFound         = errors.New("file not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrTripNotFound         = errors.New("trip not found")
)
