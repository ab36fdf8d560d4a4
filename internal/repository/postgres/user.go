package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"odms-backend/internal/domain"
	"odms-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, role, otp_hash, otp_requested_at, created_on`

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepository) get(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	var otpHash sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Role, &otpHash, &u.OTPRequestedAt, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.OTPHash = otpHash.String
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, email, role, created_on FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.CreatedOn); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdateRole(ctx context.Context, id int64, role domain.Role) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) SetOTP(ctx context.Context, id int64, otpHash string, requestedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET otp_hash = $1, otp_requested_at = $2 WHERE id = $3`, otpHash, requestedAt, id)
	return err
}

func (r *userRepository) ClearOTP(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET otp_hash = NULL, otp_requested_at = NULL WHERE id = $1`, id)
	return err
}
