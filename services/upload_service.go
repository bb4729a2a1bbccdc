package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxUploadSize is the per-file ceiling, checked before any storage call.
	MaxUploadSize = 5 << 20 // 5 MB

	// MaxGalleryImages caps a record's multi-image gallery.
	MaxGalleryImages = 10
)

var (
	ErrNotImage = errors.New("only image files can be uploaded")
	ErrTooLarge = errors.New("file exceeds the 5 MB limit")
)

// RejectedFile names one file skipped during a batch upload and why.
type RejectedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type UploadService struct {
	store Storage
}

func NewUploadService(store Storage) *UploadService {
	return &UploadService{store: store}
}

// Upload validates and stores a single image, returning its public URL.
func (s *UploadService) Upload(fh *multipart.FileHeader, folder string) (string, error) {
	if err := validateImage(fh); err != nil {
		return "", err
	}

	data, err := readFile(fh)
	if err != nil {
		return "", err
	}
	return s.store.Save(objectPath(folder, fh.Filename), data, fh.Header.Get("Content-Type"))
}

// UploadMany stores a batch. Files beyond the remaining gallery capacity are
// silently truncated; a rejected or failed file is skipped and reported
// without discarding the URLs already collected, so survivors keep their
// original relative order.
func (s *UploadService) UploadMany(files []*multipart.FileHeader, folder string, remaining int) ([]string, []RejectedFile) {
	if remaining < 0 {
		remaining = 0
	}
	if len(files) > remaining {
		files = files[:remaining]
	}

	urls := make([]string, 0, len(files))
	var rejected []RejectedFile

	for _, fh := range files {
		if err := validateImage(fh); err != nil {
			rejected = append(rejected, RejectedFile{Name: fh.Filename, Reason: err.Error()})
			continue
		}
		data, err := readFile(fh)
		if err != nil {
			rejected = append(rejected, RejectedFile{Name: fh.Filename, Reason: err.Error()})
			continue
		}
		url, err := s.store.Save(objectPath(folder, fh.Filename), data, fh.Header.Get("Content-Type"))
		if err != nil {
			rejected = append(rejected, RejectedFile{Name: fh.Filename, Reason: err.Error()})
			continue
		}
		urls = append(urls, url)
	}

	return urls, rejected
}

// Remove deletes a previously uploaded object by its public URL. Unknown
// URLs (external images pasted into a form) are ignored.
func (s *UploadService) Remove(url string) error {
	path, ok := s.store.PathFromURL(url)
	if !ok {
		return nil
	}
	return s.store.Remove(path)
}

func validateImage(fh *multipart.FileHeader) error {
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return ErrNotImage
	}
	if fh.Size > MaxUploadSize {
		return ErrTooLarge
	}
	return nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func objectPath(folder, original string) string {
	folder = sanitizeFolder(folder)
	ext := strings.ToLower(filepath.Ext(original))
	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

func sanitizeFolder(folder string) string {
	folder = strings.ToLower(strings.TrimSpace(folder))
	var b strings.Builder
	for _, r := range folder {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
