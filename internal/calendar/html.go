package calendar

import (
	"strings"

	"golang.org/x/net/html"
)

// icsEscapes undoes RFC 5545 TEXT escaping. Feeds whose parser already
// unescaped are unaffected: no backslash sequences remain.
var icsEscapes = strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`)

// markupTags are the tags dropped as formatting. Anything else between angle
// brackets is prose; "Alice <alice@example.com>" tokenizes as a tag but must
// survive.
var markupTags = map[string]bool{
	"a": true, "b": true, "i": true, "u": true, "em": true, "strong": true,
	"p": true, "div": true, "span": true, "ul": true, "ol": true, "li": true,
	"br": true, "hr": true, "font": true, "html": true, "head": true,
	"body": true, "table": true, "tbody": true, "tr": true, "td": true, "th": true,
}

// DescriptionLines reduces an event description to plain-text lines. Markup
// is dropped, text inside tags is kept, and both <br> tags and embedded
// newlines split lines. Trailing blank lines are trimmed. Feeds that carry
// plain text pass through split on newlines.
func DescriptionLines(description string) []string {
	if description == "" {
		return nil
	}
	description = icsEscapes.Replace(description)

	tok := html.NewTokenizer(strings.NewReader(description))
	var lines []string
	var current strings.Builder

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
	}

	for {
		switch tok.Next() {
		case html.ErrorToken:
			if current.Len() > 0 {
				flush()
			}
			return trimTrailingBlank(lines)
		case html.TextToken:
			parts := strings.Split(string(tok.Text()), "\n")
			for i, part := range parts {
				if i > 0 {
					flush()
				}
				current.WriteString(part)
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			raw := string(tok.Raw()) // copy before TagName lowercases the buffer
			name, _ := tok.TagName()
			switch {
			case string(name) == "br":
				flush()
			case markupTags[string(name)]:
				// formatting, dropped
			default:
				current.WriteString(raw)
			}
		}
	}
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}
