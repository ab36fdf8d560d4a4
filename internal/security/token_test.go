package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odms-backend/internal/domain"
	"odms-backend/internal/security"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_Roundtrip(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)

	user := &domain.User{ID: 7, Email: "hod@college.edu", Role: domain.RoleHOD}
	token, err := tm.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "hod@college.edu", claims.Email)
	assert.Equal(t, domain.RoleHOD, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := security.NewTokenManager(testSecret, -time.Minute)

	token, err := tm.Generate(&domain.User{ID: 7, Email: "hod@college.edu", Role: domain.RoleHOD})
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := security.NewTokenManager(testSecret, time.Hour).
		Generate(&domain.User{ID: 7, Email: "hod@college.edu", Role: domain.RoleHOD})
	require.NoError(t, err)

	_, err = security.NewTokenManager("another-secret-another-secret-xx", time.Hour).Validate(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	_, err := tm.Validate("not.a.jwt")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	user := &domain.User{ID: 7, Email: "hod@college.edu", Role: domain.RoleHOD}

	t1, err := tm.Generate(user)
	require.NoError(t, err)
	t2, err := tm.Generate(user)
	require.NoError(t, err)

	c1, err := tm.Validate(t1)
	require.NoError(t, err)
	c2, err := tm.Validate(t2)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}
