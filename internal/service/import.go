package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"odms-backend/internal/domain"
	"odms-backend/internal/logger"
	"odms-backend/internal/repository"
)

type importService struct {
	studentRepo repository.StudentRepository
	facultyRepo repository.FacultyRepository
}

func NewImportService(studentRepo repository.StudentRepository, facultyRepo repository.FacultyRepository) ImportService {
	return &importService{
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
	}
}

// ImportStudents loads student master records from a CSV stream with
// columns: regNo, name, academicYear, branch, section, department. The
// header row and rows that are short or malformed are skipped.
func (s *importService) ImportStudents(ctx context.Context, r io.Reader) (int, error) {
	rows, err := readCSV(r)
	if err != nil {
		return 0, err
	}

	var students []domain.Student
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			logger.Warn("Skipping student row with bad academic year", "reg_no", strings.TrimSpace(row[0]))
			continue
		}
		students = append(students, domain.Student{
			RegNo:        strings.TrimSpace(row[0]),
			Name:         strings.TrimSpace(row[1]),
			AcademicYear: year,
			Branch:       strings.TrimSpace(row[3]),
			Section:      strings.TrimSpace(row[4]),
			Department:   strings.TrimSpace(row[5]),
		})
	}

	if len(students) > 0 {
		if err := s.studentRepo.BulkInsert(ctx, students); err != nil {
			return 0, err
		}
	}
	logger.Info("Imported students", "count", len(students))
	return len(students), nil
}

// ImportFaculty loads faculty master records from a CSV stream with
// columns: name, email, branch, section.
func (s *importService) ImportFaculty(ctx context.Context, r io.Reader) (int, error) {
	rows, err := readCSV(r)
	if err != nil {
		return 0, err
	}

	var faculty []domain.Faculty
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		faculty = append(faculty, domain.Faculty{
			Name:    strings.TrimSpace(row[0]),
			Email:   strings.TrimSpace(row[1]),
			Branch:  strings.TrimSpace(row[2]),
			Section: strings.TrimSpace(row[3]),
		})
	}

	if len(faculty) > 0 {
		if err := s.facultyRepo.BulkInsert(ctx, faculty); err != nil {
			return 0, err
		}
	}
	logger.Info("Imported faculty", "count", len(faculty))
	return len(faculty), nil
}

func (s *importService) ClearStudents(ctx context.Context) error {
	return s.studentRepo.DeleteAll(ctx)
}

func (s *importService) ClearFaculty(ctx context.Context) error {
	return s.facultyRepo.DeleteAll(ctx)
}

// readCSV returns all data rows, skipping the header.
func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
