// Package envtest provides a fake environment variable backend
// for testing purposes.
package envtest

import "fmt"

// Empty is an environment with no variables.
var Empty Env

// Env is a fake environment.
// A nil Env is empty.
type Env map[string]string

// Pairs builds a new fake environment with the provided pairs of items. There
// must be exactly an even number of items in the list.
func Pairs(pairs ...string) (Env, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%d items in environment are not even", len(pairs))
	}

	env := make(Env, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		env[pairs[i]] = pairs[i+1]
	}
	return env, nil
}

// MustPairs builds an Env with the provided items, panicking if it fails.
func MustPairs(items ...string) Env {
	e, err := Pairs(items...)
	if err != nil {
		panic(err)
	}
	return e
}

// Getenv is an analog for the os.Getenv operation.
func (e Env) Getenv(k string) string {
	return e[k]
}

