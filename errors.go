package peg

import (
	"fmt"
)

var (
	errorNilRule = func(name string) error {
		return errorf("rule %q referenced before it was defined", name)
	}

	errorRuleAlreadyDefined = func(name string) error {
		return errorf("rule %q already defined", name)
	}

	errorDescriptorNonASCII = func(desc string) error {
		return errorf("non-ASCII byte in class descriptor %q", desc)
	}

	errorDescriptorInvertedRange = func(rng, desc string) error {
		return errorf("inverted range %q in class descriptor %q", rng, desc)
	}

	errorDescriptorTrailingDash = func(desc string) error {
		return errorf("range start with no end byte in class descriptor %q", desc)
	}
)

// pegError is the concrete type behind every definition-time error this
// package returns or panics with.
type pegError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &pegError{fmt.Sprintf(format, v...)}
}

func (err *pegError) Error() string {
	return "peg: " + err.value
}
