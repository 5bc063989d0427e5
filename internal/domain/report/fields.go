// Package report holds what the application collects before it is sent out.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	codeOpen  = "<code>"
	codeClose = "</code>"

	// columnGap is the number of spaces after the longest key.
	columnGap = 3
)

var ErrEmptyMapping = errors.New("cannot render an empty mapping")

// Field is one key-value entry of a report.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered key-value mapping; rendering keeps this order.
type Fields []Field

// Collector gathers the text sent in standard mode.
type Collector func(ctx context.Context) (string, error)

// Column is the rune offset at which every value starts.
func (f Fields) Column() int {
	longest := 0
	for _, field := range f {
		if n := utf8.RuneCountInString(field.Key); n > longest {
			longest = n
		}
	}
	return longest + columnGap
}

// Render formats f as one monospace line per field with values aligned in
// one column. Lines are joined by a newline.
func (f Fields) Render() (string, error) {
	if len(f) == 0 {
		return "", ErrEmptyMapping
	}

	column := f.Column()
	lines := make([]string, 0, len(f))
	for _, field := range f {
		pad := column - utf8.RuneCountInString(field.Key)
		lines = append(lines, codeOpen+field.Key+strings.Repeat(" ", pad)+fmt.Sprint(field.Value)+codeClose)
	}
	return strings.Join(lines, "\n"), nil
}
