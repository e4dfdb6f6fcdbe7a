package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoteExists reports an attempt to create a note that is already on disk.
var ErrNoteExists = errors.New("note already exists")

// Store is a notes tree rooted at a single directory.
type Store struct {
	root string
}

// NewStore returns a store rooted at dir. The directory is created on first
// write, not here.
func NewStore(dir string) *Store {
	return &Store{root: filepath.Clean(dir)}
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// validateMeetingID rejects ids that would escape the tree or collide with
// the manifest directory.
func validateMeetingID(id string) error {
	if id == "" {
		return errors.New("empty meeting id")
	}
	if strings.HasPrefix(id, ".") || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("invalid meeting id %q", id)
	}
	return nil
}

// EnsureMeetingDir creates the directory for a meeting id if needed and
// returns its path.
func (s *Store) EnsureMeetingDir(id string) (string, error) {
	if err := validateMeetingID(id); err != nil {
		return "", err
	}
	dir := filepath.Join(s.root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create meeting dir: %w", err)
	}
	return dir, nil
}

// NotePath returns the path of the note for a meeting on a given day. ext is
// "txt" for downloaded notes, "md" for notes added from the shell.
func (s *Store) NotePath(id string, day time.Time, ext string) string {
	return filepath.Join(s.root, id, day.Format(DayLayout)+"."+ext)
}

// Create writes a new note file. If the file already exists it is left
// untouched and ErrNoteExists is returned.
func (s *Store) Create(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrNoteExists, path)
		}
		return fmt.Errorf("create note: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	return nil
}

// Touch creates an empty note if none exists and reports whether it did.
func (s *Store) Touch(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("touch note: %w", err)
	}
	f.Close()
	return true, nil
}

// Meetings lists the meeting ids present in the tree, in lexical order.
func (s *Store) Meetings() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read notes dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}
