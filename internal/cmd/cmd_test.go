package cmd

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTreeRegistration(t *testing.T) {
	expected := []string{
		"auth", "companies", "users", "sheets", "calendar",
		"dimensions", "template", "version",
	}

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range expected {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42", "company id")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = parseID("abc", "company id")
	assert.Error(t, err)

	_, err = parseID("0", "company id")
	assert.Error(t, err)

	_, err = parseID("-3", "company id")
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	got, ok := tokenExpiry(signed)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiryRejectsGarbage(t *testing.T) {
	_, ok := tokenExpiry("")
	assert.False(t, ok)

	_, ok = tokenExpiry("not-a-jwt")
	assert.False(t, ok)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"})
	signed, err := noExp.SignedString([]byte("test-key"))
	require.NoError(t, err)
	_, ok = tokenExpiry(signed)
	assert.False(t, ok)
}
