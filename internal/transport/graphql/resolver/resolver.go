// Package resolver binds the GraphQL schema fields to the services that
// produce their values.
package resolver

import "context"

// validationService defines what the resolver needs from the validation
// service.
type validationService interface {
	ValidateEmail(ctx context.Context, email string) string
}

// Resolver is the root resolver. It holds no logger: the resolve path is
// pure, and request logging happens in the HTTP middleware.
type Resolver struct {
	validation validationService
}

// NewResolver creates a Resolver with its service dependencies.
func NewResolver(validation validationService) *Resolver {
	return &Resolver{validation: validation}
}

// ValidateEmail resolves Query.validateEmail. The service call is pure and
// synchronous; the error return exists only to satisfy the field contract
// and is always nil.
func (r *Resolver) ValidateEmail(ctx context.Context, email string) (string, error) {
	return r.validation.ValidateEmail(ctx, email), nil
}
