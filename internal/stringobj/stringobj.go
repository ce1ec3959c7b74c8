// Package stringobj aids in writing String methods for objects
// with a JSON-like output.
package stringobj

import (
	"fmt"
	"reflect"
	"strings"
)

// Builder helps build String functions for objects that skip zero-value
// attributes. Attributes are written in the order they were added.
type Builder struct {
	out strings.Builder
	n   int
}

// Put adds the given attribute-value pair to the builder, skipping it if the
// value is a zero value.
func (b *Builder) Put(name string, value any) {
	if value == nil {
		return
	}
	if v := reflect.ValueOf(value); v.IsZero() {
		return
	}

	if b.n > 0 {
		b.out.WriteString(", ")
	}
	b.n++
	fmt.Fprintf(&b.out, "%s: %v", name, value)
}

// String returns the final string representation.
func (b *Builder) String() string {
	return "{" + b.out.String() + "}"
}
