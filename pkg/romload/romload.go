// Package romload loads cartridge ROM and boot ROM images from disk,
// transparently decompressing common archive formats, grounded on the
// teacher's pkg/utils.LoadFile.
package romload

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// Load reads filename and, if its extension names a supported archive
// or compression format, returns the first entry's decompressed
// bytes. Plain .gb/.gbc/.bin images and extensionless files are
// returned as-is.
func Load(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("romload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("romload: %w", err)
	}

	ext := filepath.Ext(filename)
	switch ext {
	case "", ".gb", ".gbc", ".bin":
		return data, nil
	case ".gz":
		r, err := gzip.NewReader(io.NewSectionReader(f, 0, int64(len(data))))
		if err != nil {
			return nil, fmt.Errorf("romload: gzip: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".zip":
		r, err := zip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("romload: zip: %w", err)
		}
		return readFirstEntry(r.File)
	case ".7z":
		r, err := sevenzip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("romload: 7z: %w", err)
		}
		return readFirstEntry(r.File)
	default:
		return data, nil
	}
}

type zipEntry interface {
	Open() (io.ReadCloser, error)
}

func readFirstEntry[T zipEntry](entries []T) ([]byte, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("romload: archive is empty")
	}
	rc, err := entries[0].Open()
	if err != nil {
		return nil, fmt.Errorf("romload: %w", err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
