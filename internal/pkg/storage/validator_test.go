package storage_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/findapro/findapro-api/internal/pkg/storage"
)

// pngHeader is the 8-byte PNG signature plus enough padding for content
// type detection
var pngHeader = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

func TestValidateImage(t *testing.T) {
	t.Run("accepts a png", func(t *testing.T) {
		data, mimeType, err := storage.ValidateImage(bytes.NewReader(pngHeader), 1024)
		if err != nil {
			t.Fatalf("ValidateImage: %v", err)
		}
		if mimeType != "image/png" {
			t.Errorf("mime type = %q, want image/png", mimeType)
		}
		if len(data) != len(pngHeader) {
			t.Errorf("data length = %d, want %d", len(data), len(pngHeader))
		}
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		if _, _, err := storage.ValidateImage(bytes.NewReader(nil), 1024); err != storage.ErrEmptyFile {
			t.Errorf("err = %v, want ErrEmptyFile", err)
		}
	})

	t.Run("rejects an oversized file", func(t *testing.T) {
		if _, _, err := storage.ValidateImage(bytes.NewReader(pngHeader), 8); err != storage.ErrFileTooLarge {
			t.Errorf("err = %v, want ErrFileTooLarge", err)
		}
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		r := strings.NewReader("#!/bin/sh\necho not an image\n")
		if _, _, err := storage.ValidateImage(r, 1024); err != storage.ErrInvalidMimeType {
			t.Errorf("err = %v, want ErrInvalidMimeType", err)
		}
	})
}
