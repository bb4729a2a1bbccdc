package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// Storage persists uploaded objects and resolves them to public URLs.
type Storage interface {
	Save(path string, data []byte, contentType string) (string, error)
	Remove(path string) error
	// PathFromURL maps a public URL this backend produced back to its
	// object path, for delete-on-replace.
	PathFromURL(url string) (string, bool)
}

// LocalStorage writes under an uploads directory served statically by the
// router. Used when no Supabase credentials are configured.
type LocalStorage struct {
	Dir     string // e.g. "uploads"
	BaseURL string // optional absolute prefix, e.g. "https://api.example.com"
}

func (l *LocalStorage) Save(path string, data []byte, _ string) (string, error) {
	full := filepath.Join(l.Dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return l.BaseURL + "/uploads/" + path, nil
}

func (l *LocalStorage) Remove(path string) error {
	return os.Remove(filepath.Join(l.Dir, filepath.FromSlash(path)))
}

func (l *LocalStorage) PathFromURL(url string) (string, bool) {
	idx := strings.Index(url, "/uploads/")
	if idx < 0 {
		return "", false
	}
	return url[idx+len("/uploads/"):], true
}

// SupabaseStorage stores objects in a Supabase bucket.
type SupabaseStorage struct {
	client *storage.Client
	bucket string
}

func NewSupabaseStorage(projectURL, serviceKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		client: storage.NewClient(projectURL+"/storage/v1", serviceKey, nil),
		bucket: bucket,
	}
}

func (s *SupabaseStorage) Save(path string, data []byte, contentType string) (string, error) {
	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}
	if _, err := s.client.UploadFile(s.bucket, path, bytes.NewReader(data), options); err != nil {
		return "", err
	}
	return s.client.GetPublicUrl(s.bucket, path).SignedURL, nil
}

func (s *SupabaseStorage) Remove(path string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{path})
	return err
}

func (s *SupabaseStorage) PathFromURL(url string) (string, bool) {
	marker := "/" + s.bucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", false
	}
	return url[idx+len(marker):], true
}

// NewStorageFromEnv picks the Supabase backend when SUPABASE_URL is set and
// falls back to local disk otherwise.
func NewStorageFromEnv() Storage {
	if projectURL := strings.TrimSpace(os.Getenv("SUPABASE_URL")); projectURL != "" {
		bucket := strings.TrimSpace(os.Getenv("SUPABASE_BUCKET"))
		if bucket == "" {
			bucket = "uploads"
		}
		return NewSupabaseStorage(projectURL, os.Getenv("SUPABASE_KEY"), bucket)
	}
	return &LocalStorage{Dir: "uploads", BaseURL: strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")}
}
