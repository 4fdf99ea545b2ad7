// Package emit provides the text emission engine of a pretty printer.
//
// A language specific layer drives a [Writer] with formatting decisions: indentation changes,
// line breaks and text fragments. The writer tracks the line, column and indentation the output
// would have so a layout search can check, decision by decision, whether a candidate fits the
// configured width. When it does not, the search restores a [Snapshot] taken before the attempt
// and tries an alternative.
//
// The emitted items are kept in a persistent append log that is shared between the writer and
// all of its snapshots. Taking and restoring a snapshot is O(1) regardless of how much was
// written.
//
// Indentation is materialized lazily: an [Indent] item is only added once content is written on
// a line, so empty lines never carry trailing indentation.
//
// Once the search settles on a layout, [Writer.Finalize] returns the emitted items in order.
// Render them using the printer package.
package emit

import (
	"slices"
	"strings"

	"github.com/teleivo/emit/internal/assert"
	"github.com/teleivo/emit/internal/chain"
)

// Options configure a [Writer].
type Options struct {
	// IndentWidth is the number of columns an indentation level or a tab occupies.
	IndentWidth int
}

// Writer writes items while tracking the position of the output. A Writer must only be used by
// one goroutine.
type Writer struct {
	state       state
	indentWidth int
	finalized   bool
}

type state struct {
	column            int               // column is the column on the current line
	line              int               // line is the zero-based line number
	lineStartIndent   int               // lineStartIndent is the indentation level the current line started at
	indent            int               // indent is the current indentation level
	expectNewLine     bool              // expectNewLine defers a newline until the next item is written
	trailingSpace     bool              // trailingSpace marks the last item as a space to trim before a newline
	ignoreIndentCount int               // ignoreIndentCount suppresses indentation at line start while positive
	items             *chain.Node[Item] // items is the tip of the item log
}

// New creates a writer configured by opts. The indent width must be positive.
func New(opts Options) *Writer {
	assert.That(opts.IndentWidth > 0, "emit.New", "indent width must be positive, got %d", opts.IndentWidth)
	return &Writer{indentWidth: opts.IndentWidth}
}

// Snapshot captures the full state of a [Writer]. Snapshots are cheap to take and to hold: they
// share the emitted items with the writer.
//
// A snapshot keeps its part of the item log alive until it is restored or discarded. Every
// snapshot must be handed to [Writer.Restore] or [Snapshot.Discard] before [Writer.Finalize].
type Snapshot struct {
	state state
	spent bool
}

// Snapshot captures the state of w so that it can be restored using [Writer.Restore].
func (w *Writer) Snapshot() *Snapshot {
	w.mustBeLive("Writer.Snapshot")
	s := w.state
	s.items = chain.Retain(s.items)
	return &Snapshot{state: s}
}

// Restore replaces the state of w with s, discarding everything written since s was taken.
// Restoring moves the state out of s; use [Snapshot.Clone] beforehand to restore the same state
// more than once.
func (w *Writer) Restore(s *Snapshot) {
	w.mustBeLive("Writer.Restore")
	assert.That(!s.spent, "Writer.Restore", "snapshot was already restored or discarded")
	prev := w.state.items
	w.state = s.state
	s.state = state{}
	s.spent = true
	chain.Release(prev, drop)
}

// Clone returns another snapshot of the same state.
func (s *Snapshot) Clone() *Snapshot {
	assert.That(!s.spent, "Snapshot.Clone", "snapshot was already restored or discarded")
	c := s.state
	c.items = chain.Retain(c.items)
	return &Snapshot{state: c}
}

// Discard drops s, giving back its hold on the item log. Discarding a snapshot that was
// already restored or discarded does nothing, so it is safe to defer.
func (s *Snapshot) Discard() {
	if s.spent {
		return
	}
	chain.Release(s.state.items, drop)
	s.state = state{}
	s.spent = true
}

// StartIndent increases the indentation level by one.
func (w *Writer) StartIndent() {
	w.mustBeLive("Writer.StartIndent")
	w.setIndent(w.state.indent + 1)
}

// FinishIndent decreases the indentation level by one. It panics if there is no matching call
// to [Writer.StartIndent].
func (w *Writer) FinishIndent() {
	w.mustBeLive("Writer.FinishIndent")
	assert.That(w.state.indent > 0, "Writer.FinishIndent", "called without a matching StartIndent")
	w.setIndent(w.state.indent - 1)
}

func (w *Writer) setIndent(level int) {
	w.state.indent = level
	// a change at the start of a line applies to that line
	if w.state.column == 0 {
		w.state.lineStartIndent = level
	}
}

// StartIgnoringIndent suppresses indentation at the start of lines until the matching call to
// [Writer.FinishIgnoringIndent]. Calls nest.
func (w *Writer) StartIgnoringIndent() {
	w.mustBeLive("Writer.StartIgnoringIndent")
	w.state.ignoreIndentCount++
}

// FinishIgnoringIndent ends the innermost [Writer.StartIgnoringIndent]. It panics if there is
// no matching call.
func (w *Writer) FinishIgnoringIndent() {
	w.mustBeLive("Writer.FinishIgnoringIndent")
	assert.That(w.state.ignoreIndentCount > 0, "Writer.FinishIgnoringIndent", "called without a matching StartIgnoringIndent")
	w.state.ignoreIndentCount--
}

// MarkExpectNewLine defers a newline until the next item is written.
func (w *Writer) MarkExpectNewLine() {
	w.mustBeLive("Writer.MarkExpectNewLine")
	w.state.expectNewLine = true
}

// SpaceIfNotTrailing writes a space unless a newline is expected next. The space is removed
// again if a newline directly follows it.
func (w *Writer) SpaceIfNotTrailing() {
	if w.state.expectNewLine {
		return
	}
	w.Space()
	w.state.trailingSpace = true
}

// NewLine writes a newline.
func (w *Writer) NewLine() {
	w.mustBeLive("Writer.NewLine")
	if w.state.trailingSpace {
		w.state.items = chain.Pop(w.state.items, drop)
		w.state.trailingSpace = false
	}

	w.state.column = 0
	w.state.line++
	w.state.lineStartIndent = w.state.indent
	w.state.expectNewLine = false
	w.push(NewLineItem)
}

// SingleIndent writes a single indentation level.
func (w *Writer) SingleIndent() {
	w.mustBeLive("Writer.SingleIndent")
	w.startLine()
	w.state.column += w.indentWidth
	w.push(IndentItem(1))
}

// Tab writes a tab. It occupies the indent width in columns.
func (w *Writer) Tab() {
	w.mustBeLive("Writer.Tab")
	w.startLine()
	w.state.column += w.indentWidth
	w.push(TabItem)
}

// Space writes a space.
func (w *Writer) Space() {
	w.mustBeLive("Writer.Space")
	w.startLine()
	w.state.column++
	w.push(SpaceItem)
}

// Write writes the text fragment t.
func (w *Writer) Write(t *Text) {
	w.mustBeLive("Writer.Write")
	w.startLine()
	w.state.column += t.Len()
	w.push(TextItem(t))
}

// startLine writes an expected newline and materializes the indentation of a line before its
// first item.
func (w *Writer) startLine() {
	if w.state.expectNewLine {
		w.NewLine()
	}

	w.state.trailingSpace = false

	if w.state.column == 0 && w.state.indent > 0 && w.state.ignoreIndentCount == 0 {
		w.state.lineStartIndent = w.state.indent
		w.push(IndentItem(w.state.indent))
		w.state.column += w.state.indent * w.indentWidth
	}
}

func (w *Writer) push(it Item) {
	w.state.items = chain.Push(it, w.state.items)
}

// LineColumn returns the column on the current line. At the start of a line it returns the
// column the line's content will start at once its indentation is materialized.
func (w *Writer) LineColumn() int {
	if w.state.column == 0 && w.state.ignoreIndentCount == 0 {
		return w.state.indent * w.indentWidth
	}
	return w.state.column
}

// LineNumber returns the zero-based number of the current line.
func (w *Writer) LineNumber() int {
	return w.state.line
}

// LineStartIndentLevel returns the indentation level the current line started at.
func (w *Writer) LineStartIndentLevel() int {
	return w.state.lineStartIndent
}

// LineStartColumn returns the column the content of the current line started at.
func (w *Writer) LineStartColumn() int {
	return w.state.lineStartIndent * w.indentWidth
}

// IndentationLevel returns the current indentation level.
func (w *Writer) IndentationLevel() int {
	return w.state.indent
}

// IgnoreIndentCount returns the number of open [Writer.StartIgnoringIndent] calls.
func (w *Writer) IgnoreIndentCount() int {
	return w.state.ignoreIndentCount
}

// Finalize returns the written items in order and ends the use of w. It panics if a snapshot
// still shares the items with w.
func (w *Writer) Finalize() []Item {
	w.mustBeLive("Writer.Finalize")
	w.finalized = true
	items := chain.Collect(w.state.items)
	w.state.items = nil
	return items
}

func (w *Writer) mustBeLive(op string) {
	assert.That(!w.finalized, op, "writer was already finalized")
}

// String renders the items written so far using spaces of the indent width and "\n". Unlike
// [Writer.Finalize] it neither consumes the items nor their fragments. Use it for debugging
// only.
func (w *Writer) String() string {
	items := slices.Collect(chain.All(w.state.items))
	slices.Reverse(items)

	var sb strings.Builder
	for _, it := range items {
		switch it.Kind {
		case Indent:
			sb.WriteString(strings.Repeat(" ", it.Count*w.indentWidth))
		case NewLine:
			sb.WriteByte('\n')
		case Tab:
			sb.WriteByte('\t')
		case Space:
			sb.WriteByte(' ')
		case Fragment:
			sb.WriteString(it.Text.content)
		}
	}
	return sb.String()
}
