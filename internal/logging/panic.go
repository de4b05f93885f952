package logging

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Recover turns a panic in a background task into an error.
// Call it deferred; onPanic receives the recovered value wrapped as an error.
// A panicking chart loader must not take the viewer down with it.
func Recover(ctx context.Context, task string, onPanic func(error)) {
	r := recover()
	if r == nil {
		return
	}

	err := fmt.Errorf("panic in %s: %v", task, r)
	FromContext(ctx).Error().
		Str("task", task).
		Bytes("stack", debug.Stack()).
		Msg("recovered from panic")

	if onPanic != nil {
		onPanic(err)
	}
}
