package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"notework/internal/journal"
	"notework/pkg/timeutil"
)

// Format selects an invoice rendering.
type Format string

const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPlain, FormatTable, FormatJSON:
		return Format(s), nil
	case "":
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: plain, table, json)", s)
	}
}

const (
	stampLayout = "2006-01-02 15:04:05"
	rulerWidth  = 55
)

var ruler = strings.Repeat("=", rulerWidth)

// Renderer renders invoices with a configured currency symbol and locale.
type Renderer struct {
	Currency string // symbol prefixed to amounts
	Locale   string // BCP-47 tag for digit grouping
	Width    int    // maximum table row length; 0 means unconstrained
}

// Money formats an amount with locale-aware grouping and two decimals,
// prefixed by the currency symbol.
func (r Renderer) Money(v float64) string {
	tag, err := language.Parse(r.Locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return r.Currency + p.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}

// Render writes the invoice in the requested format.
func (r Renderer) Render(w io.Writer, inv *Invoice, format Format, detailed bool) error {
	switch format {
	case FormatTable:
		return r.renderTable(w, inv)
	case FormatJSON:
		return r.renderJSON(w, inv, detailed)
	default:
		return r.renderPlain(w, inv, detailed)
	}
}

func summaryLine(iv journal.Interval) string {
	return fmt.Sprintf("%5.2f hours [%s - %s]",
		iv.Hours(), iv.Start.Format(stampLayout), iv.End.Format(stampLayout))
}

func (r Renderer) renderPlain(w io.Writer, inv *Invoice, detailed bool) error {
	fmt.Fprintf(w, "Invoice for work done during period\n[%s - %s]\n\n",
		inv.PeriodStart.Format(stampLayout), inv.PeriodEnd.Format(stampLayout))
	fmt.Fprintf(w, "Total: %.2f hours -> %s (%s)/hr\n%s\n\n",
		inv.TotalHours, r.Money(inv.Total), r.Money(inv.Rate), ruler)
	for _, iv := range inv.Intervals {
		fmt.Fprintln(w, summaryLine(iv))
	}
	if !detailed {
		return nil
	}
	fmt.Fprintf(w, "\n\nNotes\n%s\n", ruler)
	for _, iv := range inv.Intervals {
		fmt.Fprintln(w, summaryLine(iv))
		for _, line := range iv.Body() {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func (r Renderer) renderTable(w io.Writer, inv *Invoice) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if r.Width > 0 {
		tw.SetAllowedRowLength(r.Width)
	}
	tw.AppendHeader(table.Row{"Day", "Start", "End", "Hours", "Amount"})
	for _, iv := range inv.Intervals {
		end := iv.End.Format("15:04")
		if !timeutil.SameDay(iv.Start, iv.End) {
			end = iv.End.Format("2006-01-02 15:04")
		}
		tw.AppendRow(table.Row{
			iv.Day().Format("2006-01-02"),
			iv.Start.Format("15:04"),
			end,
			fmt.Sprintf("%.2f", iv.Hours()),
			r.Money(iv.Hours() * inv.Rate),
		})
	}
	tw.AppendFooter(table.Row{"", "", "Total", fmt.Sprintf("%.2f", inv.TotalHours), r.Money(inv.Total)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Hours", Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Name: "Amount", Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	fmt.Fprintln(w, tw.Render())
	return nil
}

type jsonInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Hours float64   `json:"hours"`
	Lines []string  `json:"lines,omitempty"`
}

type jsonInvoice struct {
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	Rate        float64        `json:"rate"`
	TotalHours  float64        `json:"total_hours"`
	Total       float64        `json:"total"`
	Currency    string         `json:"currency"`
	Intervals   []jsonInterval `json:"intervals"`
}

func (r Renderer) renderJSON(w io.Writer, inv *Invoice, detailed bool) error {
	out := jsonInvoice{
		PeriodStart: inv.PeriodStart,
		PeriodEnd:   inv.PeriodEnd,
		Rate:        inv.Rate,
		TotalHours:  inv.TotalHours,
		Total:       inv.Total,
		Currency:    r.Currency,
	}
	for _, iv := range inv.Intervals {
		ji := jsonInterval{Start: iv.Start, End: iv.End, Hours: iv.Hours()}
		if detailed {
			ji.Lines = iv.Lines
		}
		out.Intervals = append(out.Intervals, ji)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
