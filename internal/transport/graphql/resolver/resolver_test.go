package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validationServiceMock records calls and returns a canned message.
type validationServiceMock struct {
	gotEmail string
	message  string
}

func (m *validationServiceMock) ValidateEmail(_ context.Context, email string) string {
	m.gotEmail = email
	return m.message
}

func TestValidateEmail_DelegatesVerbatim(t *testing.T) {
	t.Parallel()

	mock := &validationServiceMock{message: "The email ' X@Y.com ' is invalid."}
	r := NewResolver(mock)

	got, err := r.ValidateEmail(context.Background(), " X@Y.com ")
	require.NoError(t, err)

	assert.Equal(t, " X@Y.com ", mock.gotEmail, "input must reach the service untouched")
	assert.Equal(t, mock.message, got)
}
