package password_test

import (
	"resort/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "plain password", password: "s3cret-pass"},
		{name: "unicode password", password: "kata-sandi-ñ-日本"},
		{name: "empty password", password: "", wantErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt accepts", password: strings.Repeat("a", 73), wantErr: bcrypt.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, password.DefaultCost, cost)
		})
	}
}

func TestHash_SaltsEveryCall(t *testing.T) {
	first, err := password.Hash("same-password")
	require.NoError(t, err)

	second, err := password.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("same-password", first))
	assert.NoError(t, password.Verify("same-password", second))
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
		anyErr   bool
	}{
		{name: "match", password: "correct horse", hash: hash},
		{name: "wrong password", password: "battery staple", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "case matters", password: "Correct Horse", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "correct horse", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "correct horse", hash: "not-a-bcrypt-hash", anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, password.ErrInvalidPassword)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
