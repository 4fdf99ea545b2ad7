package emit_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/emit"
)

func TestNewText(t *testing.T) {
	tests := map[string]struct {
		in   string
		want int
	}{
		"Empty":                {"", 0},
		"ASCII":                {"abc", 3},
		"MultiByte":            {"héllo", 5},
		"Wide":                 {"世界", 2},
		"CombiningMark":        {"e\u0301", 1},
		"FlagOfRegionalLetter": {"\U0001F1E9\U0001F1EA", 1},
		"EmojiWithModifier":    {"\U0001F44D\U0001F3FD", 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := emit.NewText(tt.in)

			assert.Equalsf(t, got.Len(), tt.want, "NewText(%q).Len()", tt.in)
			assert.Equalsf(t, got.String(), tt.in, "NewText(%q).String()", tt.in)
			assert.Equalsf(t, got.Refs(), 0, "NewText(%q).Refs()", tt.in)
		})
	}
}

func TestTextTake(t *testing.T) {
	t.Run("SoleOwner", func(t *testing.T) {
		text := emit.NewText("a")
		_ = emit.TextItem(text)

		assert.Equalsf(t, text.Take(), "a", "Take")
		assert.Equalsf(t, text.Refs(), 0, "Refs after Take")
	})

	tests := map[string]func() *emit.Text{
		"Unreferenced": func() *emit.Text {
			return emit.NewText("a")
		},
		"Aliased": func() *emit.Text {
			text := emit.NewText("a")
			_ = emit.TextItem(text)
			_ = emit.TextItem(text)
			return text
		},
		"Twice": func() *emit.Text {
			text := emit.NewText("a")
			_ = emit.TextItem(text)
			_ = text.Take()
			return text
		},
	}

	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			text := setup()

			defer func() {
				if err := recover(); err == nil {
					t.Errorf("Take: want panic but got none")
				}
			}()
			_ = text.Take()
		})
	}
}

func TestItemString(t *testing.T) {
	tests := []struct {
		in   emit.Item
		want string
	}{
		{emit.IndentItem(3), "Indent(3)"},
		{emit.NewLineItem, "NewLine"},
		{emit.TabItem, "Tab"},
		{emit.SpaceItem, "Space"},
		{emit.TextItem(emit.NewText(`say "hi"`)), `Fragment("say \"hi\"")`},
	}

	for _, test := range tests {
		assert.Equalsf(t, test.in.String(), test.want, "String() of %v", test.in.Kind)
	}
}
