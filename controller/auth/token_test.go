package auth

import (
	"os"
	"testing"

	"taskplanner/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	signed, err := CreateAccessToken(42, "user")
	require.NoError(t, err)

	var claims model.AccessClaims
	token, err := jwt.ParseWithClaims(signed, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET_KEY")), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "taskplanner", claims.Issuer)
}

func TestRefreshTokenCarriesUniqueID(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET_KEY", "refresh-secret")

	first, err := CreateRefreshToken(7)
	require.NoError(t, err)
	second, err := CreateRefreshToken(7)
	require.NoError(t, err)

	parse := func(signed string) model.RefreshClaims {
		var claims model.RefreshClaims
		_, err := jwt.ParseWithClaims(signed, &claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_REFRESH_SECRET_KEY")), nil
		})
		require.NoError(t, err)
		return claims
	}

	a, b := parse(first), parse(second)
	assert.Equal(t, uint(7), a.UserID)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestEmailValidation(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"alice@example.com", true},
		{"a.b+c@sub.example.co", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := isValidEmail(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
