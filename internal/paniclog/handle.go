// Package paniclog turns panics into errors,
// writing the panic value and stack trace to an io.Writer.
//
// Pair it with log.Writer to send the trace to a logger.
package paniclog

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"go.uber.org/multierr"
)

// Handle handles a panic value, logging it to the given io.Writer. Returns the
// error version of the panic, if any.
func Handle(pval any, w io.Writer) error {
	if pval == nil {
		return nil
	}

	fmt.Fprintf(w, "panic: %v\n%s", pval, debug.Stack())

	switch pval := pval.(type) {
	case string:
		return errors.New(pval)
	case error:
		return fmt.Errorf("panic: %w", pval)
	default:
		return fmt.Errorf("panic: %v", pval)
	}
}

// Recover recovers a panic and appends it into the given error pointer.
// An error already in the pointer is kept.
//
//	defer paniclog.Recover(&err, w)
func Recover(err *error, w io.Writer) {
	if pval := recover(); pval != nil {
		*err = multierr.Append(*err, Handle(pval, w))
	}
}
