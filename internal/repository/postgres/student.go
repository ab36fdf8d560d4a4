package postgres

import (
	"context"
	"database/sql"

	"odms-backend/internal/domain"
	"odms-backend/internal/repository"
)

type studentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) GetByRegNo(ctx context.Context, regNo string) (*domain.Student, error) {
	s := &domain.Student{}
	query := `SELECT registration_number, name, academic_year, branch, section, department, od_leave_count
	          FROM student_master WHERE registration_number = $1`
	err := r.db.QueryRowContext(ctx, query, regNo).Scan(
		&s.RegNo, &s.Name, &s.AcademicYear, &s.Branch, &s.Section, &s.Department, &s.ODLeaveCount)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) BulkInsert(ctx context.Context, students []domain.Student) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO student_master (registration_number, name, academic_year, branch, section, department, od_leave_count)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (registration_number) DO UPDATE
	          SET name = EXCLUDED.name, academic_year = EXCLUDED.academic_year, branch = EXCLUDED.branch,
	              section = EXCLUDED.section, department = EXCLUDED.department`
	for _, s := range students {
		if _, err := tx.ExecContext(ctx, query, s.RegNo, s.Name, s.AcademicYear, s.Branch, s.Section, s.Department, s.ODLeaveCount); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *studentRepository) List(ctx context.Context) ([]domain.Student, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT registration_number, name, academic_year, branch, section, department, od_leave_count
		 FROM student_master ORDER BY registration_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.RegNo, &s.Name, &s.AcademicYear, &s.Branch, &s.Section, &s.Department, &s.ODLeaveCount); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *studentRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM student_master`)
	return err
}
