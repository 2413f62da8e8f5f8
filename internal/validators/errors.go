package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationErrors is the ordered list of human-readable messages produced
// when one or more validation rules fail. All rules are evaluated before the
// list is returned; validation never stops at the first failing rule.
type ValidationErrors []string

// Error implements the error interface by joining all messages.
func (v ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(v, "; ")
}

// Messages returns the ordered list of failure messages, one per failed rule.
func (v ValidationErrors) Messages() []string {
	return v
}
