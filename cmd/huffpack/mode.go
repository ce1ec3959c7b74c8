package main

import (
	"flag"
	"fmt"
)

// mode selects the symbol alphabet used for a file.
type mode string

const (
	// Unicode code points. Files that are not valid UTF-8
	// fall back to bytes.
	_modeText mode = "text"

	// Raw bytes.
	_modeBytes mode = "bytes"
)

var _ flag.Value = (*mode)(nil)

func (m *mode) String() string {
	return string(*m)
}

func (m *mode) Set(s string) error {
	*m = mode(s)
	return m.Validate()
}

func (m mode) Validate() error {
	switch m {
	case _modeText, _modeBytes:
		return nil
	default:
		return fmt.Errorf("unknown mode %q: must be %q or %q", string(m), _modeText, _modeBytes)
	}
}
