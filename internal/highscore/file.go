// Package highscore persists the single best score as a decimal integer in a text file.
package highscore

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPath is the file used when no path is given.
const DefaultPath = "highscore.txt"

// fileMode is the permission of a saved high score file.
const fileMode os.FileMode = 0o644

// FileStore reads and writes the high score file. All I/O errors are
// swallowed: a missing or corrupt file reads as 0 and failed writes are
// logged at debug level.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore creates a store for path. An empty path means DefaultPath;
// a nil logger discards output.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored score, or 0 when the file is missing or unparsable.
func (s *FileStore) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("cannot read high score", "path", s.path, "err", err)
		}
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		s.logger.Debug("ignoring corrupt high score file", "path", s.path)
		return 0
	}
	return score
}

// Save writes score through a temp file in the same directory and renames it
// over the target so a crash never leaves a half-written file.
func (s *FileStore) Save(score int) {
	if err := s.write(score); err != nil {
		s.logger.Debug("cannot save high score", "path", s.path, "err", err)
	}
}

func (s *FileStore) write(score int) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return err
	}
	// CreateTemp makes the file owner-only.
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}
