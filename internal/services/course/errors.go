package course

import (
	"fmt"
	"strings"
)

// Policy decides what callers see when a request fails.
type Policy int

const (
	// PolicySwallow returns the fallback value and a nil error.
	PolicySwallow Policy = iota
	// PolicyReturn returns the fallback value together with an *OpError.
	PolicyReturn
)

// String returns the policy name used in config files.
func (p Policy) String() string {
	switch p {
	case PolicySwallow:
		return "swallow"
	case PolicyReturn:
		return "return"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "swallow" or "return" to a Policy. Empty means swallow.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "swallow":
		return PolicySwallow, nil
	case "return", "strict":
		return PolicyReturn, nil
	default:
		return PolicySwallow, fmt.Errorf("unknown error policy %q", s)
	}
}

// OpError is a failed operation as seen under PolicyReturn.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return e.Op + " failed: " + e.Err.Error() }

func (e *OpError) Unwrap() error { return e.Err }
