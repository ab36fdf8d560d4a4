package postgres

import (
	"context"
	"database/sql"

	"odms-backend/internal/domain"
	"odms-backend/internal/repository"
)

type facultyRepository struct {
	db *sql.DB
}

func NewFacultyRepository(db *sql.DB) repository.FacultyRepository {
	return &facultyRepository{db: db}
}

const facultyColumns = `id, name, email, branch, section`

func (r *facultyRepository) GetByBranchSection(ctx context.Context, branch, section string) (*domain.Faculty, error) {
	f := &domain.Faculty{}
	query := `SELECT ` + facultyColumns + ` FROM faculty_master WHERE branch = $1 AND section = $2`
	err := r.db.QueryRowContext(ctx, query, branch, section).Scan(&f.ID, &f.Name, &f.Email, &f.Branch, &f.Section)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *facultyRepository) GetByEmail(ctx context.Context, email string) (*domain.Faculty, error) {
	f := &domain.Faculty{}
	query := `SELECT ` + facultyColumns + ` FROM faculty_master WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&f.ID, &f.Name, &f.Email, &f.Branch, &f.Section)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *facultyRepository) BulkInsert(ctx context.Context, faculty []domain.Faculty) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO faculty_master (name, email, branch, section) VALUES ($1, $2, $3, $4)
	          ON CONFLICT (email) DO UPDATE
	          SET name = EXCLUDED.name, branch = EXCLUDED.branch, section = EXCLUDED.section`
	for _, f := range faculty {
		if _, err := tx.ExecContext(ctx, query, f.Name, f.Email, f.Branch, f.Section); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *facultyRepository) List(ctx context.Context) ([]domain.Faculty, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+facultyColumns+` FROM faculty_master ORDER BY branch, section`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculty []domain.Faculty
	for rows.Next() {
		var f domain.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Branch, &f.Section); err != nil {
			return nil, err
		}
		faculty = append(faculty, f)
	}
	return faculty, rows.Err()
}

func (r *facultyRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM faculty_master`)
	return err
}
