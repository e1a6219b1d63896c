package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	h, err := HashPassword("secret1")
	require.NoError(t, err)

	require.NoError(t, CheckPassword(h, "secret1"))
	require.ErrorIs(t, CheckPassword(h, "secret2"), ErrInvalidPassword)
}

func TestTokens(t *testing.T) {
	id := uuid.New()
	tokens := NewTokens("secret", time.Hour)

	s, err := tokens.Issue(id)
	require.NoError(t, err)

	got, err := tokens.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTokens_Invalid(t *testing.T) {
	id := uuid.New()
	tokens := NewTokens("secret", time.Hour)

	s, err := tokens.Issue(id)
	require.NoError(t, err)

	tt := []struct {
		name   string
		tokens *Tokens
		token  string
	}{
		{
			name:   "garbage",
			tokens: tokens,
			token:  "garbage",
		},
		{
			name:   "wrong_secret",
			tokens: NewTokens("another", time.Hour),
			token:  s,
		},
		{
			name: "expired",
			tokens: &Tokens{
				secret: []byte("secret"),
				ttl:    time.Hour,
				now:    func() time.Time { return time.Now().Add(2 * time.Hour) },
			},
			token: s,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.tokens.Parse(tc.token)
			require.ErrorIs(t, err, ErrInvalidToken)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}
