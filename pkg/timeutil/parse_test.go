package timeutil

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, got time.Time)
	}{
		{
			name:  "empty string returns now",
			input: "",
			check: func(t *testing.T, got time.Time) {
				if time.Since(got) > time.Second {
					t.Error("expected time close to now")
				}
			},
		},
		{
			name:  "now returns current time",
			input: "now",
			check: func(t *testing.T, got time.Time) {
				if time.Since(got) > time.Second {
					t.Error("expected time close to now")
				}
			},
		},
		{
			name:  "RFC3339 format",
			input: "2025-01-15T10:30:00Z",
			check: func(t *testing.T, got time.Time) {
				expected := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
				if !got.Equal(expected) {
					t.Errorf("got %v, want %v", got, expected)
				}
			},
		},
		{
			name:  "date and time without zone",
			input: "2020-01-15 09:00",
			check: func(t *testing.T, got time.Time) {
				expected := time.Date(2020, 1, 15, 9, 0, 0, 0, time.Local)
				if !got.Equal(expected) {
					t.Errorf("got %v, want %v", got, expected)
				}
			},
		},
		{
			name:  "date only",
			input: "2020-01-15",
			check: func(t *testing.T, got time.Time) {
				expected := time.Date(2020, 1, 15, 0, 0, 0, 0, time.Local)
				if !got.Equal(expected) {
					t.Errorf("got %v, want %v", got, expected)
				}
			},
		},
		{
			name:  "relative minutes",
			input: "30m",
			check: func(t *testing.T, got time.Time) {
				diff := time.Since(got)
				if diff < 29*time.Minute || diff > 31*time.Minute {
					t.Errorf("expected ~30m ago, got diff of %v", diff)
				}
			},
		},
		{
			name:  "relative hours",
			input: "2h",
			check: func(t *testing.T, got time.Time) {
				diff := time.Since(got)
				if diff < 119*time.Minute || diff > 121*time.Minute {
					t.Errorf("expected ~2h ago, got diff of %v", diff)
				}
			},
		},
		{
			name:  "relative weeks",
			input: "1w",
			check: func(t *testing.T, got time.Time) {
				diff := time.Since(got)
				expectedDiff := 7 * 24 * time.Hour
				if diff < expectedDiff-time.Minute || diff > expectedDiff+time.Minute {
					t.Errorf("expected ~1w ago, got diff of %v", diff)
				}
			},
		},
		{
			name:    "invalid format",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "invalid relative unit",
			input:   "5x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestParseLoose(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "iso date and time",
			input: "2020-01-01 09:00",
			want:  time.Date(2020, 1, 1, 9, 0, 0, 0, time.Local),
		},
		{
			name:  "iso with seconds",
			input: "2020-01-01 09:00:30",
			want:  time.Date(2020, 1, 1, 9, 0, 30, 0, time.Local),
		},
		{
			name:  "date only",
			input: "2020-06-02",
			want:  time.Date(2020, 6, 2, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "us slash format",
			input: "01/15/2020",
			want:  time.Date(2020, 1, 15, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "month name",
			input: "oct 7, 1970",
			want:  time.Date(1970, 10, 7, 0, 0, 0, 0, time.Local),
		},
		{
			name:    "empty string is not a date",
			input:   "",
			wantErr: true,
		},
		{
			name:    "relative syntax is not loose",
			input:   "7d",
			wantErr: true,
		},
		{
			name:    "prose",
			input:   "meeting notes",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLoose(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLoose(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseLoose(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2020-01-15 17:45")
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	want := time.Date(2020, 1, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDay() = %v, want %v", got, want)
	}

	if _, err := ParseDay("nonsense"); err == nil {
		t.Error("ParseDay() expected error for unparseable input")
	}
}

func TestDayOf(t *testing.T) {
	in := time.Date(2020, 3, 9, 23, 59, 59, 1, time.Local)
	want := time.Date(2020, 3, 9, 0, 0, 0, 0, time.Local)
	if got := DayOf(in); !got.Equal(want) {
		t.Errorf("DayOf() = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different hours",
			a:    time.Date(2020, 1, 1, 9, 0, 0, 0, time.Local),
			b:    time.Date(2020, 1, 1, 17, 0, 0, 0, time.Local),
			want: true,
		},
		{
			name: "consecutive days",
			a:    time.Date(2020, 1, 1, 23, 59, 0, 0, time.Local),
			b:    time.Date(2020, 1, 2, 0, 1, 0, 0, time.Local),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Minute, "30m"},
		{90 * time.Minute, "1.5h"},
		{2 * time.Hour, "2.0h"},
		{24 * time.Hour, "1.0d"},
		{36 * time.Hour, "1.5d"},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			got := FormatDuration(tt.d)
			if got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
