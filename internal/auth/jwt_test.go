package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseSession(t *testing.T) {
	token, err := SignSession("secret", "user-1", "recruiter", time.Hour)
	require.NoError(t, err)

	userID, role, err := ParseSession("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "recruiter", role)
}

func TestParseSessionWrongSecret(t *testing.T) {
	token, err := SignSession("secret", "user-1", "student", time.Hour)
	require.NoError(t, err)

	_, _, err = ParseSession("other-secret", token)
	assert.Error(t, err)
}

func TestParseSessionExpired(t *testing.T) {
	token, err := SignSession("secret", "user-1", "student", -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseSession("secret", token)
	assert.Error(t, err)
}

func TestParseSessionGarbage(t *testing.T) {
	_, _, err := ParseSession("secret", "not-a-token")
	assert.Error(t, err)
}
