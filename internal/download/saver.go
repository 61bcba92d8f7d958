// Package download writes fetched documents to disk.
package download

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"

	"fnetgrip/internal/logging"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FileName returns the on-disk name for a document of a ticker
func FileName(ticker string, id int) string {
	ticker = unsafeName.ReplaceAllString(ticker, "")
	return fmt.Sprintf("%s_fnet_%d.pdf", ticker, id)
}

// Saved describes a document written to disk
type Saved struct {
	Path  string
	Bytes int64
	Pages int // zero when the file could not be inspected
}

// Saver stores document bodies in a directory
type Saver struct {
	dir    string
	logger zerolog.Logger
}

// NewSaver creates a saver writing into dir
func NewSaver(dir string) *Saver {
	if dir == "" {
		dir = "."
	}
	return &Saver{dir: dir, logger: logging.Component("download")}
}

// Dir returns the target directory
func (s *Saver) Dir() string {
	return s.dir
}

// Save copies body into {dir}/{ticker}_fnet_{id}.pdf.
//
// The body is written to a temporary file that is renamed into place only
// after a complete copy; the temporary file is closed and removed on every
// other path, so a failed save never leaves partial output behind.
func (s *Saver) Save(ticker string, id int, body io.Reader) (saved Saved, err error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Saved{}, fmt.Errorf("creating download directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".fnetgrip-*.part")
	if err != nil {
		return Saved{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				s.logger.Warn().Err(rmErr).Str("file", tmpName).Msg("could not remove temp file")
			}
		}
	}()

	n, err := io.Copy(tmp, body)
	if err != nil {
		return Saved{}, fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return Saved{}, fmt.Errorf("flushing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Saved{}, fmt.Errorf("closing document: %w", err)
	}

	target := filepath.Join(s.dir, FileName(ticker, id))
	if err := os.Rename(tmpName, target); err != nil {
		return Saved{}, fmt.Errorf("moving document into place: %w", err)
	}
	committed = true

	saved = Saved{Path: target, Bytes: n}
	if pages, err := PageCount(target); err == nil {
		saved.Pages = pages
	} else {
		s.logger.Debug().Err(err).Str("file", target).Msg("saved file is not a readable PDF")
	}

	s.logger.Info().
		Str("file", target).
		Int64("bytes", n).
		Int("pages", saved.Pages).
		Msg("document saved")
	return saved, nil
}
