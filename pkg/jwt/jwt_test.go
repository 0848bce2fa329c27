package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken("s3cret", 42)
	require.NoError(t, err)

	id, err := ParseToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("s3cret", 42)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	claims := jwt.MapClaims{"sub": 1, "exp": time.Now().Add(-time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = ParseToken("k", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_MissingSubject(t *testing.T) {
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = ParseToken("k", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_SubjectIsString(t *testing.T) {
	signed, err := GenerateToken("k", 42)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) { return []byte("k"), nil },
		jwt.WithSubject("42"))
	require.NoError(t, err)

	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "42", sub)
}

func TestParseToken_NumericSubjectRejected(t *testing.T) {
	claims := jwt.MapClaims{"sub": 7, "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = ParseToken("k", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
