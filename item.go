package emit

import "fmt"

// Kind identifies the type of an [Item].
type Kind int

const (
	// Indent is a run of indentation levels, expanded by the printer into tabs or spaces.
	Indent Kind = iota
	// NewLine is a line break, expanded by the printer into the configured newline.
	NewLine
	// Tab is a literal tab character.
	Tab
	// Space is a literal space character.
	Space
	// Fragment is a reference to a [Text] fragment.
	Fragment
)

func (k Kind) String() string {
	switch k {
	case Indent:
		return "Indent"
	case NewLine:
		return "NewLine"
	case Tab:
		return "Tab"
	case Space:
		return "Space"
	case Fragment:
		return "Fragment"
	default:
		panic("kind string not implemented")
	}
}

// Item is an atomic unit of output. Items are immutable values; create them with [IndentItem],
// [TextItem] or use one of [NewLineItem], [TabItem] and [SpaceItem].
type Item struct {
	Kind  Kind
	Count int   // Count is the number of indentation levels of an [Indent] item.
	Text  *Text // Text is the fragment of a [Fragment] item.
}

var (
	// NewLineItem is the [NewLine] item.
	NewLineItem = Item{Kind: NewLine}
	// TabItem is the [Tab] item.
	TabItem = Item{Kind: Tab}
	// SpaceItem is the [Space] item.
	SpaceItem = Item{Kind: Space}
)

// IndentItem returns an [Indent] item of count levels.
func IndentItem(count int) Item {
	return Item{Kind: Indent, Count: count}
}

// TextItem returns a [Fragment] item referencing t. Every item adds a reference to t that is
// given back once the item is dropped with the writer history holding it, or consumed by a
// printer.
func TextItem(t *Text) Item {
	t.retain()
	return Item{Kind: Fragment, Text: t}
}

func (it Item) String() string {
	switch it.Kind {
	case Indent:
		return fmt.Sprintf("Indent(%d)", it.Count)
	case Fragment:
		return fmt.Sprintf("Fragment(%q)", it.Text.content)
	default:
		return it.Kind.String()
	}
}

// drop gives back the reference an item holds on its text fragment.
func drop(it Item) {
	if it.Kind == Fragment {
		it.Text.release()
	}
}
