package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":     "u1",
		"person_guid": "p-guid",
		"name":        "Ted Decker",
		"roles":       []string{"Staff", "Editors"},
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
}

func TestHMACValidator_ValidateJWT(t *testing.T) {
	v := NewHMACValidator(testSecret)

	user, err := v.ValidateJWT(signToken(t, testSecret, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.Equal(t, "p-guid", user.PersonGuid)
	assert.Equal(t, "Ted Decker", user.Name)
	assert.Equal(t, []string{"Staff", "Editors"}, user.Roles)
}

func TestHMACValidator_Rejects(t *testing.T) {
	v := NewHMACValidator(testSecret)

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noUser := validClaims()
	delete(noUser, "user_id")

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", signToken(t, []byte("other"), validClaims())},
		{"expired", signToken(t, testSecret, expired)},
		{"missing user id", signToken(t, testSecret, noUser)},
		{"garbage", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateJWT(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestAuthMiddleware_TokenSources(t *testing.T) {
	m := NewAuthMiddleware(NewHMACValidator(testSecret))
	token := signToken(t, testSecret, validClaims())

	t.Run("bearer header", func(t *testing.T) {
		user, err := m.ValidateAuthFromHeaders("Bearer "+token, "")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.UserID)
	})

	t.Run("cookie", func(t *testing.T) {
		user, err := m.ValidateAuthFromHeaders("", "theme=dark; "+AuthCookieName+"="+token)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.UserID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := m.ValidateAuthFromHeaders("", "")
		assert.Error(t, err)
		assert.Nil(t, m.ValidateOptionalAuthFromHeaders("", ""))
	})

	t.Run("invalid is anonymous when optional", func(t *testing.T) {
		assert.Nil(t, m.ValidateOptionalAuthFromHeaders("Bearer broken", ""))
	})
}
