// Package ui renders replies as fixed-width text blocks.
package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// Width is the maximum number of columns across the chat area.
	Width = 50
	// Buffer is the column after which a space starts a new line, which keeps
	// words intact.
	Buffer = Width - 6
)

// Wrap folds s so that no visual line exceeds Width columns. Strings at most
// Width columns wide are returned unchanged. Each inserted break is followed
// by one tab of indentation; a space at the start of a visual line is dropped.
func Wrap(s string) string {
	return wrap(s, "")
}

// wrap folds s for a line that already holds indent after its tab. Inserted
// breaks repeat the tab and indent so continuation lines align with s.
func wrap(s, indent string) string {
	start := runewidth.StringWidth(indent)
	if start+runewidth.StringWidth(s) <= Width {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/Buffer*(2+len(indent)))
	col, fresh := start, true
	newLine := func() {
		b.WriteString("\n\t")
		b.WriteString(indent)
		col, fresh = start, true
	}
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune(r)
			col, fresh = 0, true
		case r == '\t':
			b.WriteRune(r)
		case r == ' ' && fresh:
		case r == ' ' && col >= Buffer:
			newLine()
		default:
			w := runewidth.RuneWidth(r)
			if col+w > Width && !fresh {
				newLine()
			}
			b.WriteRune(r)
			col += w
			fresh = false
		}
	}
	return b.String()
}

// Border draws pos symbols, then label, then symbols up to Width columns.
func Border(label string, pos int, symbol rune) string {
	sw := runewidth.RuneWidth(symbol)
	if sw < 1 {
		sw = 1
	}
	var b strings.Builder
	for i := 0; i < pos; i++ {
		b.WriteRune(symbol)
	}
	b.WriteString(label)
	used := pos*sw + runewidth.StringWidth(label)
	for ; used < Width; used += sw {
		b.WriteRune(symbol)
	}
	return b.String()
}
