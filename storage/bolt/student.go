package boltdb

import (
	"github.com/trezcool/darasa/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) load() ([]student.Student, error) {
	students := make([]student.Student, 0)
	if err := repo.db.Read(studentsKey, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (repo *studentRepository) save(students []student.Student) error {
	return repo.db.Write(studentsKey, students)
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	return repo.load()
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	students, err := repo.load()
	if err != nil {
		return student.Student{}, err
	}
	for _, st := range students {
		if st.ID == id {
			return st, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) CreateStudent(st student.Student) (student.Student, error) {
	students, err := repo.load()
	if err != nil {
		return student.Student{}, err
	}
	students = append(students, st)
	if err := repo.save(students); err != nil {
		return student.Student{}, err
	}
	return st, nil
}

func (repo *studentRepository) UpdateStudent(st student.Student) (student.Student, error) {
	students, err := repo.load()
	if err != nil {
		return student.Student{}, err
	}
	for i := range students {
		if students[i].ID == st.ID {
			students[i] = st
			if err := repo.save(students); err != nil {
				return student.Student{}, err
			}
			return st, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) DeleteStudent(id string) error {
	students, err := repo.load()
	if err != nil {
		return err
	}
	kept := students[:0]
	for _, st := range students {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	if len(kept) == len(students) {
		return student.ErrNotFound
	}
	return repo.save(kept)
}
