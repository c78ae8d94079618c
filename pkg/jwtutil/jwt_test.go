package jwtutil_test

import (
	"testing"
	"time"
	"warehouse-service/pkg/config"
	"warehouse-service/pkg/jwtutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	jwtutil.Initialize(&config.JWTConfig{
		SigningKey:     "round-trip-key",
		ExpirationTime: time.Hour,
	})

	token, err := jwtutil.GenerateToken("admin@htm.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtutil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@htm.com", claims.Username)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	jwtutil.Initialize(&config.JWTConfig{
		SigningKey:     "round-trip-key",
		ExpirationTime: time.Hour,
	})

	token, err := jwtutil.GenerateToken("admin@htm.com")
	require.NoError(t, err)

	_, err = jwtutil.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	jwtutil.Initialize(&config.JWTConfig{
		SigningKey:     "round-trip-key",
		ExpirationTime: -time.Minute,
	})

	token, err := jwtutil.GenerateToken("admin@htm.com")
	require.NoError(t, err)

	_, err = jwtutil.ValidateToken(token)
	assert.Error(t, err)
}
