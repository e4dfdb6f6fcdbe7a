package todo

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// noteNameRe matches dated note files. Downloaded notes are .txt, notes
// created from the shell are .md; both are scanned.
var noteNameRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.(txt|md)$`)

// Result carries the outcome of a notes-tree scan. Warnings collect entries
// that could not be read without failing the walk.
type Result struct {
	Items    []Item
	Warnings []error
}

// Scan walks notesDir one level deep, treating each subdirectory as a meeting
// id and each dated note file inside it as a note, and returns the TODO items
// that pass the filter. Dotted directories (the manifest dir among them) are
// skipped. Items arrive grouped by meeting id, then by note date, both in
// lexical order.
func Scan(notesDir string, filter Filter) (*Result, error) {
	entries, err := os.ReadDir(notesDir)
	if err != nil {
		return nil, fmt.Errorf("read notes dir: %w", err)
	}

	res := &Result{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		meeting := entry.Name()
		meetingDir := filepath.Join(notesDir, meeting)
		notes, err := os.ReadDir(meetingDir)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Errorf("read meeting dir %s: %w", meetingDir, err))
			continue
		}
		for _, note := range notes {
			if note.IsDir() || !noteNameRe.MatchString(note.Name()) {
				continue
			}
			lines, err := readNoteLines(filepath.Join(meetingDir, note.Name()))
			if err != nil {
				res.Warnings = append(res.Warnings, err)
				continue
			}
			for _, item := range scanNote(meeting, note.Name(), lines) {
				if filter.Match(item) {
					res.Items = append(res.Items, item)
				}
			}
		}
	}
	return res, nil
}

func readNoteLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read note %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
