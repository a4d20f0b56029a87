// Package upload validates and stores bootcamp photos on local disk.
package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/semka95/devcamper/domain"
)

const sniffLen = 512

// extensions maps sniffed image types to the extension of the stored file
var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// DiskStore implements domain.PhotoStore keeping files in a directory
type DiskStore struct {
	dir     string
	maxSize int64
	tracer  trace.Tracer
}

// NewDiskStore creates photo store writing to dir, files above maxSize bytes are rejected
func NewDiskStore(dir string, maxSize int64, tracer trace.Tracer) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create upload dir: %w", err)
	}
	return &DiskStore{
		dir:     dir,
		maxSize: maxSize,
		tracer:  tracer,
	}, nil
}

// Save checks that file is an image within size limit and stores it as
// photo_<bootcampID><ext>, ext follows the sniffed content and never the
// client file name. It returns the stored file name.
func (s *DiskStore) Save(ctx context.Context, bootcampID string, file *multipart.FileHeader) (string, error) {
	_, span := s.tracer.Start(
		ctx,
		"upload Save",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID),
			attribute.Int64("size", file.Size)),
	)
	defer span.End()

	if file.Size > s.maxSize {
		err := fmt.Errorf("please upload an image less than %d bytes: %w", s.maxSize, domain.ErrBadParamInput)
		span.RecordError(err)
		return "", err
	}

	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		err := fmt.Errorf("please upload an image file: %w", domain.ErrBadParamInput)
		span.RecordError(err)
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("can't open uploaded file: %w: %s", domain.ErrBadParamInput, err.Error())
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		span.RecordError(err)
		return "", fmt.Errorf("can't read uploaded file: %w: %s", domain.ErrInternalServerError, err.Error())
	}
	ext, ok := extensions[http.DetectContentType(head[:n])]
	if !ok {
		err = fmt.Errorf("please upload an image file: %w", domain.ErrBadParamInput)
		span.RecordError(err)
		return "", err
	}

	name := "photo_" + bootcampID + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("problem with file upload: %w: %s", domain.ErrInternalServerError, err.Error())
	}
	defer dst.Close()

	if _, err = dst.Write(head[:n]); err == nil {
		_, err = io.Copy(dst, src)
	}
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("problem with file upload: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return name, nil
}
