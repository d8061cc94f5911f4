// Package validation turns an email syntax checker's verdict into the
// human-readable message the GraphQL API exposes.
package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/verimail/verimail-backend/internal/adapter/checker"
)

// Service answers email validation requests. The checker is injected so the
// rule set can be swapped (e.g. a stricter RFC parser) without touching the
// message contract.
type Service struct {
	check checker.CheckFunc
}

// NewService creates a Service backed by the given checker.
func NewService(check checker.CheckFunc) *Service {
	return &Service{check: check}
}

// ValidateEmail reports the syntactic validity of email as a verdict message.
// The input is passed to the checker verbatim: no trimming, normalization,
// or case folding. The call is pure; repeated calls with the same input
// yield the same message.
func (s *Service) ValidateEmail(_ context.Context, email string) string {
	verdict := "invalid"
	if s.check(email) {
		verdict = "valid"
	}
	return fmt.Sprintf("The email '%s' is %s.", email, verdict)
}

// Probe verifies the checker accepts a known-good address. Health checks
// use it to detect a broken or misconfigured rule set.
func (s *Service) Probe(_ context.Context) error {
	if !s.check("postmaster@example.com") {
		return errors.New("checker rejected a known-good address")
	}
	return nil
}
