package middleware

import (
	"os"
	"testing"

	"lms/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	os.Exit(m.Run())
}

func TestGenerateJWT_RoundTrip(t *testing.T) {
	tokenString, err := GenerateJWT(42, "Ada", "STUDENT", "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTKey), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "STUDENT", claims["role"])
	assert.Equal(t, "ada@example.com", claims["email"])
}

func TestGenerateJWT_RejectsWrongKey(t *testing.T) {
	tokenString, err := GenerateJWT(1, "Bob", "INSTRUCTOR", "bob@example.com")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
