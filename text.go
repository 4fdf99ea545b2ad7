package emit

import (
	"github.com/rivo/uniseg"
	"github.com/teleivo/emit/internal/assert"
)

// Text is an immutable text fragment with a precomputed character count. Fragments are shared
// by reference between the items of all writer states that wrote them and are only copied into
// the output once, by the printer.
type Text struct {
	content string
	chars   int  // chars is the number of user-perceived characters in content
	refs    int  // refs is the number of live items referencing the fragment
	taken   bool // taken is set once the fragment was consumed by Take
}

// NewText creates a fragment of s. Its character count is the number of grapheme clusters in s
// so that a character composed of multiple code points advances the column by one.
func NewText(s string) *Text {
	return &Text{content: s, chars: uniseg.GraphemeClusterCount(s)}
}

// Len returns the number of characters in t.
func (t *Text) Len() int {
	return t.chars
}

// String returns the content of t without consuming it. Use it for debugging only.
func (t *Text) String() string {
	return t.content
}

// Refs returns the number of live items referencing t.
func (t *Text) Refs() int {
	return t.refs
}

// Take consumes t and returns its content. It must be called at most once and only when a
// single item still references t. Any other reference means a discarded snapshot was kept
// alive past finalization; Take panics in that case.
func (t *Text) Take() string {
	assert.That(!t.taken, "Text.Take", "fragment %q was already consumed", t.content)
	assert.That(t.refs == 1, "Text.Take", "fragment %q has %d references, want a sole owner: discard all snapshots before finalizing", t.content, t.refs)
	t.refs = 0
	t.taken = true
	return t.content
}

func (t *Text) retain() {
	assert.That(!t.taken, "Text", "fragment %q was already consumed", t.content)
	t.refs++
}

func (t *Text) release() {
	assert.That(t.refs > 0, "Text", "fragment %q has no references to release", t.content)
	t.refs--
}
