package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verimail/verimail-backend/internal/adapter/checker"
)

func TestValidateEmail_Messages(t *testing.T) {
	t.Parallel()

	svc := NewService(checker.Syntax())
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{
			name:  "valid address",
			email: "a@b.com",
			want:  "The email 'a@b.com' is valid.",
		},
		{
			name:  "invalid address",
			email: "not-an-email",
			want:  "The email 'not-an-email' is invalid.",
		},
		{
			name:  "empty string",
			email: "",
			want:  "The email '' is invalid.",
		},
		{
			name:  "input embedded verbatim",
			email: `weird"quote@example`,
			want:  `The email 'weird"quote@example' is invalid.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ValidateEmail(ctx, tt.email))
		})
	}
}

func TestValidateEmail_NoNormalization(t *testing.T) {
	t.Parallel()

	svc := NewService(checker.Syntax())

	// Leading whitespace must reach the checker untouched and the message
	// must echo it back exactly.
	got := svc.ValidateEmail(context.Background(), " a@b.com")
	assert.Equal(t, "The email ' a@b.com' is invalid.", got)
}

func TestValidateEmail_Deterministic(t *testing.T) {
	t.Parallel()

	svc := NewService(checker.Syntax())
	ctx := context.Background()

	first := svc.ValidateEmail(ctx, "x@y.com")
	for i := 0; i < 50; i++ {
		require.Equal(t, first, svc.ValidateEmail(ctx, "x@y.com"))
	}
}

func TestValidateEmail_SwappedChecker(t *testing.T) {
	t.Parallel()

	// The rule set is injected, so a stricter checker changes the verdict
	// without touching the message contract.
	svc := NewService(func(string) bool { return false })

	got := svc.ValidateEmail(context.Background(), "a@b.com")
	assert.Equal(t, "The email 'a@b.com' is invalid.", got)

	svc = NewService(checker.RFC5322())
	got = svc.ValidateEmail(context.Background(), "a@b.com")
	assert.Equal(t, "The email 'a@b.com' is valid.", got)
}

func TestProbe(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewService(checker.Syntax()).Probe(context.Background()))

	err := NewService(func(string) bool { return false }).Probe(context.Background())
	require.Error(t, err)
}
