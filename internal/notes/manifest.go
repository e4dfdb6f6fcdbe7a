package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	manifestDir  = ".notework"
	manifestFile = "manifest.yaml"
)

// Entry records one generated note so later invocations and the shell can
// list meetings without re-fetching the feed.
type Entry struct {
	MeetingID    string    `yaml:"meeting_id"`
	Date         string    `yaml:"date"`
	Path         string    `yaml:"path"`
	Start        time.Time `yaml:"start"`
	End          time.Time `yaml:"end"`
	Participants []string  `yaml:"participants,omitempty"`
	CreatedAt    time.Time `yaml:"created_at"`
}

// Manifest indexes the notes generated under a store.
type Manifest struct {
	Entries []Entry `yaml:"entries"`
}

// Add inserts an entry, replacing a previous one for the same meeting and
// date.
func (m *Manifest) Add(e Entry) {
	for i, old := range m.Entries {
		if old.MeetingID == e.MeetingID && old.Date == e.Date {
			m.Entries[i] = e
			return
		}
	}
	m.Entries = append(m.Entries, e)
}

// ForDate returns the entries whose date matches day, ordered by start time.
func (m *Manifest) ForDate(day time.Time) []Entry {
	date := day.Format(DayLayout)
	var out []Entry
	for _, e := range m.Entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// MeetingIDs returns the distinct meeting ids in the manifest, sorted.
func (m *Manifest) MeetingIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, e := range m.Entries {
		if _, ok := seen[e.MeetingID]; ok {
			continue
		}
		seen[e.MeetingID] = struct{}{}
		ids = append(ids, e.MeetingID)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) manifestPath() string {
	return filepath.Join(s.root, manifestDir, manifestFile)
}

// LoadManifest reads the store's manifest. A missing file yields an empty
// manifest.
func (s *Store) LoadManifest() (*Manifest, error) {
	b, err := os.ReadFile(s.manifestPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// SaveManifest writes the manifest atomically: a temp file in the manifest
// dir, then a rename over the final path.
func (s *Store) SaveManifest(m *Manifest) error {
	dir := filepath.Join(s.root, manifestDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	tmp, err := os.CreateTemp(dir, manifestFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.manifestPath()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
