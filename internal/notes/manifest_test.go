package notes

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func manifestEntry(meeting, date string, start time.Time) Entry {
	return Entry{
		MeetingID: meeting,
		Date:      date,
		Path:      meeting + "/" + date + ".txt",
		Start:     start,
		End:       start.Add(30 * time.Minute),
		CreatedAt: start,
	}
}

func TestManifestRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	m, err := s.LoadManifest()
	if err != nil {
		t.Fatalf("LoadManifest() on empty store error = %v", err)
	}
	if len(m.Entries) != 0 {
		t.Fatalf("fresh manifest has %d entries, want 0", len(m.Entries))
	}

	start := time.Date(2020, 1, 15, 10, 0, 0, 0, time.Local)
	m.Add(manifestEntry("standup", "2020-01-15", start))
	m.Add(Entry{
		MeetingID:    "retro",
		Date:         "2020-01-16",
		Path:         "retro/2020-01-16.txt",
		Start:        start.AddDate(0, 0, 1),
		End:          start.AddDate(0, 0, 1).Add(time.Hour),
		Participants: []string{"alice@example.com"},
		CreatedAt:    start,
	})
	if err := s.SaveManifest(m); err != nil {
		t.Fatalf("SaveManifest() error = %v", err)
	}

	loaded, err := s.LoadManifest()
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if len(loaded.Entries) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(loaded.Entries))
	}
	if loaded.Entries[0].MeetingID != "standup" {
		t.Errorf("first entry = %q, want standup", loaded.Entries[0].MeetingID)
	}
	if !loaded.Entries[0].Start.Equal(start) {
		t.Errorf("start = %v, want %v", loaded.Entries[0].Start, start)
	}
	if got := loaded.Entries[1].Participants; !reflect.DeepEqual(got, []string{"alice@example.com"}) {
		t.Errorf("participants = %v, want preserved", got)
	}
}

func TestManifestAddReplaces(t *testing.T) {
	var m Manifest
	start := time.Date(2020, 1, 15, 10, 0, 0, 0, time.Local)

	m.Add(manifestEntry("standup", "2020-01-15", start))
	updated := manifestEntry("standup", "2020-01-15", start.Add(time.Hour))
	m.Add(updated)

	if len(m.Entries) != 1 {
		t.Fatalf("manifest has %d entries, want the duplicate replaced", len(m.Entries))
	}
	if !m.Entries[0].Start.Equal(updated.Start) {
		t.Error("Add() should keep the newer entry")
	}
}

func TestManifestForDate(t *testing.T) {
	var m Manifest
	day := time.Date(2020, 1, 15, 0, 0, 0, 0, time.Local)

	late := manifestEntry("retro", "2020-01-15", day.Add(15*time.Hour))
	early := manifestEntry("standup", "2020-01-15", day.Add(10*time.Hour))
	other := manifestEntry("standup", "2020-01-16", day.AddDate(0, 0, 1))
	m.Add(late)
	m.Add(early)
	m.Add(other)

	got := m.ForDate(day.Add(13 * time.Hour))
	if len(got) != 2 {
		t.Fatalf("ForDate() returned %d entries, want 2", len(got))
	}
	if got[0].MeetingID != "standup" || got[1].MeetingID != "retro" {
		t.Errorf("ForDate() order = %s, %s; want by start time", got[0].MeetingID, got[1].MeetingID)
	}
}

func TestManifestMeetingIDs(t *testing.T) {
	var m Manifest
	start := time.Date(2020, 1, 15, 10, 0, 0, 0, time.Local)
	m.Add(manifestEntry("standup", "2020-01-15", start))
	m.Add(manifestEntry("standup", "2020-01-16", start.AddDate(0, 0, 1)))
	m.Add(manifestEntry("retro", "2020-01-17", start.AddDate(0, 0, 2)))

	if got, want := m.MeetingIDs(), []string{"retro", "standup"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MeetingIDs() = %v, want %v", got, want)
	}
}

func TestSaveManifestLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	m := &Manifest{}
	m.Add(manifestEntry("standup", "2020-01-15", time.Date(2020, 1, 15, 10, 0, 0, 0, time.Local)))

	if err := s.SaveManifest(m); err != nil {
		t.Fatalf("SaveManifest() error = %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(s.manifestPath()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != manifestFile {
		t.Errorf("manifest dir should hold only %s, got %v", manifestFile, entries)
	}
}
