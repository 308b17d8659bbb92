package helpers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Uploader writes multipart files into a flat directory and hands back the
// public reference path stored on the entity.
type Uploader struct {
	Dir     string
	BaseURL string
}

func NewUploader(dir, baseURL string) *Uploader {
	return &Uploader{Dir: dir, BaseURL: baseURL}
}

func (u *Uploader) Save(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	name := uuid.New().String() + ext
	dstPath := filepath.Join(u.Dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return u.BaseURL + "/" + name, nil
}

// Remove deletes a previously stored file by its reference path. Replaced
// media is removed best-effort: a failure is logged, never returned.
func (u *Uploader) Remove(refPath string) {
	if refPath == "" || !strings.HasPrefix(refPath, u.BaseURL+"/") {
		return
	}
	name := strings.TrimPrefix(refPath, u.BaseURL+"/")
	if err := os.Remove(filepath.Join(u.Dir, name)); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("Failed to remove replaced media %s: %v", refPath, err)
	}
}
