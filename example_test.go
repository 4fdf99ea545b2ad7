package emit_test

import (
	"fmt"

	"github.com/teleivo/emit"
	"github.com/teleivo/emit/printer"
)

// Lay out a call on one line if it fits, otherwise put every argument on its own line.
func Example() {
	const maxColumn = 20
	w := emit.New(emit.Options{IndentWidth: 4})
	args := []string{"first", "second", "third"}

	w.Write(emit.NewText("call("))
	flat := w.Snapshot()
	for i, arg := range args {
		if i > 0 {
			w.Write(emit.NewText(","))
			w.SpaceIfNotTrailing()
		}
		w.Write(emit.NewText(arg))
	}
	w.Write(emit.NewText(")"))

	if w.LineColumn() > maxColumn {
		w.Restore(flat)
		w.StartIndent()
		for _, arg := range args {
			w.NewLine()
			w.Write(emit.NewText(arg + ","))
		}
		w.FinishIndent()
		w.NewLine()
		w.Write(emit.NewText(")"))
	} else {
		flat.Discard()
	}

	out, err := printer.Print(w.Finalize(), printer.Options{IndentWidth: 4, Newline: "\n"})
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// call(
	//     first,
	//     second,
	//     third,
	// )
}
