package dedupe

import (
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	set := New(100)
	if set == nil {
		t.Fatal("expected non-nil set")
	}
	if set.capacity != 100 {
		t.Errorf("capacity = %d, want 100", set.capacity)
	}
	if set.Len() != 0 {
		t.Errorf("initial Len() = %d, want 0", set.Len())
	}
}

func TestSet_Seen(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		keys     []string
		wantLen  int
	}{
		{
			name:     "distinct keys within capacity",
			capacity: 5,
			keys:     []string{"uid-1@2020-01-01", "uid-2@2020-01-01", "uid-3@2020-01-01"},
			wantLen:  3,
		},
		{
			name:     "keys exceed capacity",
			capacity: 3,
			keys:     []string{"a", "b", "c", "d", "e"},
			wantLen:  3,
		},
		{
			name:     "zero capacity tracks nothing",
			capacity: 0,
			keys:     []string{"a", "b", "c"},
			wantLen:  0,
		},
		{
			name:     "negative capacity tracks nothing",
			capacity: -1,
			keys:     []string{"a", "b"},
			wantLen:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := New(tt.capacity)
			for _, key := range tt.keys {
				set.Seen(key)
			}
			if set.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", set.Len(), tt.wantLen)
			}
		})
	}
}

func TestSet_SeenReturnValue(t *testing.T) {
	set := New(10)

	if set.Seen("uid-1@2020-01-01T09:00") {
		t.Error("first Seen() for a key should return false")
	}
	if !set.Seen("uid-1@2020-01-01T09:00") {
		t.Error("second Seen() for the same key should return true")
	}
	if set.Seen("uid-1@2020-01-08T09:00") {
		t.Error("a different occurrence of the same meeting should look new")
	}
}

func TestSet_Contains(t *testing.T) {
	set := New(10)

	if set.Contains("uid-1") {
		t.Error("Contains() should be false for an empty set")
	}
	set.Seen("uid-1")
	if !set.Contains("uid-1") {
		t.Error("Contains() should be true after Seen()")
	}
	if set.Contains("uid-2") {
		t.Error("Contains() should be false for an untracked key")
	}
}

func TestSet_EvictionOrder(t *testing.T) {
	set := New(3)

	set.Seen("a")
	set.Seen("b")
	set.Seen("c")

	// Fourth key forgets "a", the oldest.
	set.Seen("d")
	if set.Contains("a") {
		t.Error("'a' should have aged out")
	}
	if !set.Contains("b") || !set.Contains("c") || !set.Contains("d") {
		t.Error("'b', 'c', 'd' should still be tracked")
	}

	set.Seen("e")
	if set.Contains("b") {
		t.Error("'b' should have aged out")
	}
}

func TestSet_DuplicateDoesNotEvict(t *testing.T) {
	set := New(3)

	set.Seen("a")
	set.Seen("b")
	set.Seen("c")
	set.Seen("a")

	if !set.Contains("a") || !set.Contains("b") || !set.Contains("c") {
		t.Error("all three keys should still be tracked after a duplicate")
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
}

func BenchmarkSet_Seen(b *testing.B) {
	set := New(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.Seen(fmt.Sprintf("uid-%d", i))
	}
}
