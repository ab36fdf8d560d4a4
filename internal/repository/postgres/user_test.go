package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odms-backend/internal/domain"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Found with pending OTP", func(t *testing.T) {
		mock, closeDB, store := newMockDB(t)
		defer closeDB()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, role, otp_hash, otp_requested_at, created_on FROM users WHERE email = $1`)).
			WithArgs("hod@college.edu").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "otp_hash", "otp_requested_at", "created_on"}).
				AddRow(7, "hod@college.edu", string(domain.RoleHOD), "$2a$10$hash", now, now))

		u, err := store.UserRepository.GetByEmail(ctx, "hod@college.edu")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleHOD, u.Role)
		assert.Equal(t, "$2a$10$hash", u.OTPHash)
		require.NotNil(t, u.OTPRequestedAt)
		assert.Equal(t, now, *u.OTPRequestedAt)
	})

	t.Run("Null OTP columns load as zero values", func(t *testing.T) {
		mock, closeDB, store := newMockDB(t)
		defer closeDB()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs("hod@college.edu").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "otp_hash", "otp_requested_at", "created_on"}).
				AddRow(7, "hod@college.edu", string(domain.RoleHOD), nil, nil, now))

		u, err := store.UserRepository.GetByEmail(ctx, "hod@college.edu")
		require.NoError(t, err)
		assert.Empty(t, u.OTPHash)
		assert.Nil(t, u.OTPRequestedAt)
	})

	t.Run("Missing user", func(t *testing.T) {
		mock, closeDB, store := newMockDB(t)
		defer closeDB()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs("nobody@college.edu").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "otp_hash", "otp_requested_at", "created_on"}))

		_, err := store.UserRepository.GetByEmail(ctx, "nobody@college.edu")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserRepository_UpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing user", func(t *testing.T) {
		mock, closeDB, store := newMockDB(t)
		defer closeDB()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = $1 WHERE id = $2`)).
			WithArgs(domain.RoleStudentWelfare, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, store.UserRepository.UpdateRole(ctx, 7, domain.RoleStudentWelfare))
	})

	t.Run("Unknown id", func(t *testing.T) {
		mock, closeDB, store := newMockDB(t)
		defer closeDB()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = $1 WHERE id = $2`)).
			WithArgs(domain.RoleStudentWelfare, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.UserRepository.UpdateRole(ctx, 99, domain.RoleStudentWelfare)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserRepository_OTPColumns(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock, closeDB, store := newMockDB(t)
	defer closeDB()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET otp_hash = $1, otp_requested_at = $2 WHERE id = $3`)).
		WithArgs("$2a$10$hash", now, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET otp_hash = NULL, otp_requested_at = NULL WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.UserRepository.SetOTP(ctx, 7, "$2a$10$hash", now))
	assert.NoError(t, store.UserRepository.ClearOTP(ctx, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
