// Package assert checks caller contracts at runtime.
//
// A broken contract is a bug in the caller's traversal or snapshot handling, never a data
// condition, so assertions panic instead of returning errors.
package assert

import "fmt"

// Violation is the panic value raised by [That].
type Violation struct {
	Op  string // Op is the operation whose contract was broken.
	Msg string
}

func (v Violation) Error() string {
	return v.Op + ": " + v.Msg
}

// That panics with a [Violation] of op if condition is false.
func That(condition bool, op, msg string, args ...any) {
	if condition {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	panic(Violation{Op: op, Msg: msg})
}
