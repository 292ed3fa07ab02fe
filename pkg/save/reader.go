package save

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression errors.
var (
	ErrCorruptArchive = errors.New("corrupt compressed save archive")
)

// Compression magic bytes.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Decompress inflates a save archive if it is gzip or zstd wrapped,
// sniffing the wrapper from magic bytes. Uncompressed data passes
// through untouched.
func Decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return inflateGzip(data)
	case bytes.HasPrefix(data, zstdMagic):
		return inflateZstd(data)
	default:
		return data, nil
	}
}

func inflateGzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	return out, nil
}

func inflateZstd(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	return out, nil
}

// ReadFile reads a save archive from disk and inflates it if needed.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading save archive: %w", err)
	}
	return Decompress(data)
}
