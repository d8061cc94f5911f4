// Package checker provides email syntax checking strategies. Each strategy
// is exposed as a CheckFunc so callers can swap rule sets without touching
// the code that consumes the verdict.
package checker

import (
	"net/mail"

	"github.com/go-playground/validator/v10"
)

// CheckFunc reports whether s is a syntactically plausible email address.
// Implementations must be total: any string input yields a verdict, never
// a panic or an error.
type CheckFunc func(s string) bool

// Syntax returns the default checker, backed by the validator library's
// "email" rule (RFC 5322 heuristics). A panic from the underlying routine
// is mapped to an invalid verdict, keeping the CheckFunc contract total.
func Syntax() CheckFunc {
	v := validator.New()
	return func(s string) (ok bool) {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		return v.Var(s, "required,email") == nil
	}
}

// RFC5322 returns a stricter checker backed by the standard library's
// address parser. Display-name forms ("Bob <bob@example.com>") are
// rejected: the whole input must be the bare address.
func RFC5322() CheckFunc {
	return func(s string) bool {
		addr, err := mail.ParseAddress(s)
		if err != nil {
			return false
		}
		return addr.Name == "" && addr.Address == s
	}
}
