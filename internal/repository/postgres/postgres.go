package postgres

import (
	"database/sql"

	"odms-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RequestRepository
	repository.StudentRepository
	repository.FacultyRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		RequestRepository: NewRequestRepository(db),
		StudentRepository: NewStudentRepository(db),
		FacultyRepository: NewFacultyRepository(db),
		UserRepository:    NewUserRepository(db),
	}
}
