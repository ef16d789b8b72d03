package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// DefaultMaxSize is the size limit applied when Options.MaxSize is unset.
const DefaultMaxSize int64 = 5 << 20 // 5 MiB

// Options configures upload validation. Empty allow-lists disable their
// respective check.
type Options struct {
	// MaxSize is the size limit in bytes. Zero or negative means DefaultMaxSize.
	MaxSize int64

	// AllowedTypes is a MIME type allow-list, e.g. "image/png".
	AllowedTypes []string

	// AllowedExtensions is a case-insensitive extension allow-list, with or
	// without the leading dot, e.g. "png" or ".png".
	AllowedExtensions []string
}

// Validate checks an uploaded file against the options. Checks run in fixed
// order: size, then MIME type, then extension, and the first failing check
// wins; a file is never reported with more than one problem at a time.
//
// The size error references the configured limit, not the file's actual
// size. A filename without an extension fails any non-empty extension
// allow-list.
func Validate(fh *multipart.FileHeader, opts Options) error {
	if fh == nil {
		return ErrNilFileHeader
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if fh.Size > maxSize {
		return fmt.Errorf("file exceeds the %s limit: %w", formatSize(maxSize), ErrFileTooLarge)
	}

	if len(opts.AllowedTypes) > 0 {
		mimeType, err := MIMEType(fh)
		if err != nil {
			return err
		}
		if !slices.Contains(opts.AllowedTypes, mimeType) {
			return fmt.Errorf("file type %s is not allowed: %w", mimeType, ErrTypeNotAllowed)
		}
	}

	if len(opts.AllowedExtensions) > 0 {
		ext := normalizeExt(Extension(fh))
		if ext == "" || !slices.ContainsFunc(opts.AllowedExtensions, func(allowed string) bool {
			return normalizeExt(allowed) == ext
		}) {
			return fmt.Errorf("file extension %q is not allowed: %w", Extension(fh), ErrExtensionNotAllowed)
		}
	}

	return nil
}

// Extension returns the file extension including the dot, or "" when the
// filename has none.
func Extension(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}
	return filepath.Ext(fh.Filename)
}

// MIMEType determines the file's MIME type. It prefers sniffing the first
// 512 bytes of content over trusting the declared Content-Type header, which
// prevents spoofing via renamed files. The declared header is used only when
// the content cannot be read or sniffing is inconclusive.
func MIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	declared := fh.Header.Get("Content-Type")

	file, err := fh.Open()
	if err != nil {
		if declared != "" {
			return declared, nil
		}
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = file.Close() }()

	// 512 bytes is the maximum http.DetectContentType reads
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	detected := http.DetectContentType(buffer[:n])
	if detected == "application/octet-stream" && declared != "" {
		return declared, nil
	}

	// Strip parameters like "; charset=utf-8" for allow-list comparison.
	if idx := strings.Index(detected, ";"); idx != -1 {
		detected = strings.TrimSpace(detected[:idx])
	}

	return detected, nil
}

// StoredName returns a collision-free storage name for an uploaded file: a
// random UUID with the original (sanitized, lowercased) extension.
func StoredName(filename string) string {
	ext := strings.ToLower(filepath.Ext(sanitizer.SanitizeFilename(filename)))
	return uuid.New().String() + ext
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1fGB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
