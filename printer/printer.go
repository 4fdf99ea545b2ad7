// Package printer renders the items written by an [emit.Writer] into text.
//
// Printing is a single pass over the finalized items. All layout decisions were made while
// writing, the printer only expands indentation and newlines as configured and copies out the
// text fragments.
package printer

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/teleivo/emit"
)

// Options configure how items are rendered.
type Options struct {
	// IndentWidth is the number of spaces per indentation level if UseTabs is false. Tabs are
	// rendered as a single tab character regardless.
	IndentWidth int
	// UseTabs renders each indentation level as a tab.
	UseTabs bool
	// Newline is the text a newline is rendered as. Use [NewNewline] to create it from a
	// configuration value.
	Newline string
}

// Validate returns an error if the options cannot be used for rendering.
func (o Options) Validate() error {
	var errs []error
	if o.IndentWidth <= 0 {
		errs = append(errs, fmt.Errorf("indent width must be positive, got %d", o.IndentWidth))
	}
	if o.Newline == "" {
		errs = append(errs, errors.New("newline must not be empty"))
	}
	return errors.Join(errs...)
}

var newlines = map[string]string{
	"lf":   "\n",
	"crlf": "\r\n",
}

var validNewlines = [3]string{"crlf", "lf", "system"}

// NewNewline converts a newline kind to the text a newline is rendered as. Valid kinds are "lf",
// "crlf" and "system", which is "crlf" on Windows and "lf" everywhere else. Returns an error if
// the kind is invalid.
func NewNewline(kind string) (string, error) {
	if kind == "system" {
		if runtime.GOOS == "windows" {
			return newlines["crlf"], nil
		}
		return newlines["lf"], nil
	}
	if nl, ok := newlines[kind]; ok {
		return nl, nil
	}
	return "", fmt.Errorf("invalid newline kind: %q, valid ones are: %q", kind, validNewlines)
}

// Print renders items into a string. See [Fprint].
func Print(items []emit.Item, opts Options) (string, error) {
	var sb strings.Builder
	if err := Fprint(&sb, items, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Fprint renders items to w.
//
// Every text fragment is consumed while rendering. A fragment that is still referenced by
// anything but its item means a snapshot outlived finalization; Fprint panics in that case.
func Fprint(w io.Writer, items []emit.Item, opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %v", err)
	}

	r := renderer{w: w, newline: opts.Newline}
	if opts.UseTabs {
		r.indent = "\t"
	} else {
		r.indent = strings.Repeat(" ", opts.IndentWidth)
	}

	for _, it := range items {
		var err error
		switch it.Kind {
		case emit.Indent:
			for range it.Count {
				if err = r.write(r.indent); err != nil {
					break
				}
			}
		case emit.NewLine:
			err = r.write(r.newline)
		case emit.Tab:
			err = r.write("\t")
		case emit.Space:
			err = r.write(" ")
		case emit.Fragment:
			err = r.write(it.Text.Take())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type renderer struct {
	w       io.Writer // w writer to output the rendered text to
	indent  string    // indent is the text of a single indentation level
	newline string    // newline is the text of a newline
}

func (r *renderer) write(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}
