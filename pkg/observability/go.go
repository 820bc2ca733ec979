package observability

import (
	"context"
	"runtime/debug"
)

// CallSafe calls fn; a panic inside fn is reported and returned as a PanicError.
func CallSafe(ctx context.Context, fn func() error) (_err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		ReportPanicIfNotNil(ctx, r)
		_err = PanicError{Value: r, Stack: stack}
	}()
	return fn()
}
