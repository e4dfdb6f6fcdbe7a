package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"notework/internal/journal"
)

func testRenderer() Renderer {
	return Renderer{Currency: "$", Locale: "en-US"}
}

func eightHourInvoice(t *testing.T) *Invoice {
	t.Helper()
	iv := journal.Interval{
		Start: time.Date(2020, 1, 1, 9, 0, 0, 0, time.Local),
		End:   time.Date(2020, 1, 1, 17, 0, 0, 0, time.Local),
		Lines: []string{
			"# 2020-01-01 09:00 work-start",
			"did stuff",
			"# 2020-01-01 17:00 work-end",
		},
	}
	inv, err := Build([]journal.Interval{iv}, 150.00)
	if err != nil {
		t.Fatal(err)
	}
	return inv
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		renderer Renderer
		amount   float64
		want     string
	}{
		{name: "grouping", renderer: testRenderer(), amount: 1200, want: "$1,200.00"},
		{name: "no grouping needed", renderer: testRenderer(), amount: 150, want: "$150.00"},
		{name: "large amount", renderer: testRenderer(), amount: 1234567.891, want: "$1,234,567.89"},
		{name: "german locale", renderer: Renderer{Currency: "€", Locale: "de-DE"}, amount: 1200, want: "€1.200,00"},
		{name: "bad locale falls back", renderer: Renderer{Currency: "$", Locale: "not a tag"}, amount: 1200, want: "$1,200.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.renderer.Money(tt.amount); got != tt.want {
				t.Errorf("Money(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	err := testRenderer().Render(&buf, eightHourInvoice(t), FormatPlain, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"Invoice for work done during period",
		"[2020-01-01 09:00:00 - 2020-01-01 17:00:00]",
		"",
		"Total: 8.00 hours -> $1,200.00 ($150.00)/hr",
		strings.Repeat("=", 55),
		"",
		" 8.00 hours [2020-01-01 09:00:00 - 2020-01-01 17:00:00]",
	}, "\n") + "\n"

	if buf.String() != want {
		t.Errorf("Render() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRenderPlainDetailed(t *testing.T) {
	var buf bytes.Buffer
	err := testRenderer().Render(&buf, eightHourInvoice(t), FormatPlain, true)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"Invoice for work done during period",
		"[2020-01-01 09:00:00 - 2020-01-01 17:00:00]",
		"",
		"Total: 8.00 hours -> $1,200.00 ($150.00)/hr",
		strings.Repeat("=", 55),
		"",
		" 8.00 hours [2020-01-01 09:00:00 - 2020-01-01 17:00:00]",
		"",
		"",
		"Notes",
		strings.Repeat("=", 55),
		" 8.00 hours [2020-01-01 09:00:00 - 2020-01-01 17:00:00]",
		"  did stuff",
		"",
	}, "\n") + "\n"

	if buf.String() != want {
		t.Errorf("Render() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	err := testRenderer().Render(&buf, eightHourInvoice(t), FormatTable, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Day", "2020-01-01", "09:00", "8.00", "$1,200.00", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	err := testRenderer().Render(&buf, eightHourInvoice(t), FormatJSON, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var got struct {
		TotalHours float64 `json:"total_hours"`
		Total      float64 `json:"total"`
		Currency   string  `json:"currency"`
		Intervals  []struct {
			Hours float64  `json:"hours"`
			Lines []string `json:"lines"`
		} `json:"intervals"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.TotalHours != 8.0 || got.Total != 1200.0 {
		t.Errorf("totals = %v hours, %v; want 8, 1200", got.TotalHours, got.Total)
	}
	if len(got.Intervals) != 1 || got.Intervals[0].Hours != 8.0 {
		t.Fatalf("intervals = %+v, want one 8-hour interval", got.Intervals)
	}
	if got.Intervals[0].Lines != nil {
		t.Error("lines should be omitted unless detailed")
	}

	buf.Reset()
	if err := testRenderer().Render(&buf, eightHourInvoice(t), FormatJSON, true); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Intervals[0].Lines) != 3 {
		t.Error("detailed JSON should carry the interval lines")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatPlain},
		{in: "plain", want: FormatPlain},
		{in: "table", want: FormatTable},
		{in: "json", want: FormatJSON},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
