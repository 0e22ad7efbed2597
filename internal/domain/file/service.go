package file

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	MaxFileSize = 10 * 1024 * 1024 // 10 MiB
	URLBase     = "/files/messages"
)

// MessageStore validates that a chat message exists before a file is
// attached to it. Implemented by the message repository. tripID == 0
// means the check is not scoped to a trip.
type MessageStore interface {
	Exists(ctx context.Context, tripID, messageID int64) (bool, error)
}

// TripStore validates trip existence when only trip_id is supplied.
type TripStore interface {
	Exists(ctx context.Context, tripID int64) (bool, error)
}

// Service stores message attachments on the local filesystem under
// <baseDir>/messages/{images,pdfs,other}/. It holds no state across
// requests; every stored file gets a fresh uuid name, so concurrent
// uploads cannot collide.
type Service struct {
	baseDir  string
	messages MessageStore
	trips    TripStore
}

// NewService creates the attachment service. baseDir is the upload
// root, passed in explicitly — it is the only piece of configuration
// the service has.
func NewService(baseDir string, messages MessageStore, trips TripStore) *Service {
	return &Service{baseDir: baseDir, messages: messages, trips: trips}
}

// Upload validates and stores a single multipart file. Validation runs
// in order — content type, size, then message/trip existence — and no
// byte reaches the final path until all checks pass. tripID and
// messageID are optional; a supplied messageID must resolve to an
// existing message (scoped to tripID when both are present).
func (s *Service) Upload(ctx context.Context, fh *multipart.FileHeader, tripID, messageID *int64) (*UploadResult, error) {
	contentType := declaredContentType(fh)
	category, ok := CategoryForContentType(contentType)
	if !ok {
		return nil, ErrUnsupportedMediaType
	}

	if fh.Size > MaxFileSize {
		return nil, ErrPayloadTooLarge
	}

	if messageID != nil {
		var scope int64
		if tripID != nil {
			scope = *tripID
		}
		exists, err := s.messages.Exists(ctx, scope, *messageID)
		if err != nil {
			return nil, fmt.Errorf("message lookup failed: %w", err)
		}
		if !exists {
			return nil, ErrMessageNotFound
		}
	} else if tripID != nil {
		exists, err := s.trips.Exists(ctx, *tripID)
		if err != nil {
			return nil, fmt.Errorf("trip lookup failed: %w", err)
		}
		if !exists {
			return nil, ErrTripNotFound
		}
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".bin"
	}
	filename := uuid.New().String() + ext

	dir := filepath.Join(s.baseDir, "messages", category.Dir())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	size, err := writeAtomic(filepath.Join(dir, filename), fh)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		URL:              fmt.Sprintf("%s/%s/%s", URLBase, category.Dir(), filename),
		Filename:         filename,
		OriginalFilename: fh.Filename,
		ContentType:      contentType,
		Size:             size,
		Type:             category,
	}, nil
}

// Open resolves a stored file for serving. It returns the absolute
// path and the content type to serve it with. fileType must be one of
// the category segments and filename is treated as an opaque leaf —
// anything that looks like a relative path is rejected before any
// filesystem access.
func (s *Service) Open(fileType, filename string) (string, string, error) {
	path, err := s.resolve(fileType, filename)
	if err != nil {
		return "", "", err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", "", ErrFileNotFound
		}
		return "", "", fmt.Errorf("failed to stat file: %w", err)
	}
	return path, s.contentTypeFor(path), nil
}

// Delete removes a stored file. A second delete of the same name
// reports ErrFileNotFound — deletion is not idempotent at the API
// level.
func (s *Service) Delete(fileType, filename string) error {
	path, err := s.resolve(fileType, filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *Service) resolve(fileType, filename string) (string, error) {
	category, ok := CategoryForSegment(fileType)
	if !ok {
		return "", ErrInvalidCategory
	}
	// The filename must be a bare leaf: no separators, no traversal.
	if filename == "" || filename != filepath.Base(filename) ||
		strings.ContainsAny(filename, `/\`) || filename == "." || filename == ".." {
		return "", ErrInvalidFilename
	}
	return filepath.Join(s.baseDir, "messages", category.Dir(), filename), nil
}

// contentTypeFor picks the content type for serving a stored file:
// extension table first, content sniffing for unknown extensions.
func (s *Service) contentTypeFor(path string) string {
	if ct, ok := extContentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	if mt, err := mimetype.DetectFile(path); err == nil {
		return mt.String()
	}
	return "application/octet-stream"
}

// declaredContentType returns the part's declared type without
// parameters, falling back to the extension table when the client
// sent none.
func declaredContentType(fh *multipart.FileHeader) string {
	ct := strings.TrimSpace(strings.Split(fh.Header.Get("Content-Type"), ";")[0])
	if ct != "" && ct != "application/octet-stream" {
		return ct
	}
	if byExt, ok := extContentTypes[strings.ToLower(filepath.Ext(fh.Filename))]; ok {
		return byExt
	}
	return ct
}

// writeAtomic copies the uploaded part into place via a temp file and
// rename, so a crash mid-write never leaves a partial file visible at
// its final path.
func writeAtomic(dst string, fh *multipart.FileHeader) (int64, error) {
	src, err := fh.Open()
	if err != nil {
		return 0, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	size, err := io.Copy(tmp, src)
	if err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("failed to move file into place: %w", err)
	}
	return size, nil
}
