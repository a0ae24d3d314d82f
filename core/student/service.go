package student

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

type (
	Repository interface {
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		CreateStudent(st Student) (Student, error)
		UpdateStudent(st Student) (Student, error)
		DeleteStudent(id string) error
	}

	// AttendanceRemover purges a student's attendance marks on cascade
	// delete; satisfied by attendance.Service.
	AttendanceRemover interface {
		RemoveForStudent(studentID string) error
	}

	Service struct {
		repo  Repository
		marks AttendanceRemover
		log   core.Logger
	}
)

func NewService(repo Repository, marks AttendanceRemover, log core.Logger) *Service {
	return &Service{repo: repo, marks: marks, log: log}
}

// Create validates the draft, assigns an id and creation timestamp,
// snapshots the age and persists the new Student.
func (svc *Service) Create(ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	now := time.Now().UTC()
	status := ns.Status
	if status == "" {
		status = StatusActive
	}
	st := Student{
		ID:           uuid.NewString(),
		Name:         ns.Name,
		DateOfBirth:  ns.DateOfBirth,
		Age:          AgeAt(ns.DateOfBirth, core.DateOf(now)),
		Gender:       ns.Gender,
		FatherName:   ns.FatherName,
		FatherMobile: ns.FatherMobile,
		MotherMobile: ns.MotherMobile,
		Status:       status,
		CreatedAt:    now,
	}
	return svc.repo.CreateStudent(st)
}

// Update replaces all mutable fields of the record with the given id,
// preserving id and createdAt. An unknown id is a silent no-op.
func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	if err := us.Validate(); err != nil {
		return Student{}, err
	}
	curr, err := svc.repo.GetStudentByID(id)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			svc.log.Debugf("update: student %s not found, skipping", id)
			return Student{}, nil
		}
		return Student{}, err
	}
	st := Student{
		ID:           curr.ID,
		Name:         us.Name,
		DateOfBirth:  us.DateOfBirth,
		Age:          AgeAt(us.DateOfBirth, core.Today()),
		Gender:       us.Gender,
		FatherName:   us.FatherName,
		FatherMobile: us.FatherMobile,
		MotherMobile: us.MotherMobile,
		Status:       us.Status,
		CreatedAt:    curr.CreatedAt,
	}
	return svc.repo.UpdateStudent(st)
}

// Delete removes the Student and every attendance mark referencing it.
// Marks go first: a crash in between leaves a student with no marks,
// never marks pointing at a missing student. An unknown id is a silent
// no-op.
func (svc *Service) Delete(id string) error {
	if err := svc.marks.RemoveForStudent(id); err != nil {
		return err
	}
	if err := svc.repo.DeleteStudent(id); err != nil {
		if errors.Cause(err) == ErrNotFound {
			svc.log.Debugf("delete: student %s not found, skipping", id)
			return nil
		}
		return err
	}
	return nil
}

func (svc *Service) Get(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

// QueryAll returns the whole roster sorted case-insensitively by name.
func (svc *Service) QueryAll() ([]Student, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	sortByName(students)
	return students, nil
}

// Search does a case-insensitive substring match on name or fatherName,
// sorted by name. An empty term behaves like QueryAll.
func (svc *Service) Search(term string) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	term = core.CleanString(term, true /* lower */)
	if term != "" {
		matched := make([]Student, 0, len(students))
		for _, st := range students {
			if strings.Contains(strings.ToLower(st.Name), term) ||
				strings.Contains(strings.ToLower(st.FatherName), term) {
				matched = append(matched, st)
			}
		}
		students = matched
	}
	sortByName(students)
	return students, nil
}

func sortByName(students []Student) {
	sort.SliceStable(students, func(i, j int) bool {
		return strings.ToLower(students[i].Name) < strings.ToLower(students[j].Name)
	})
}
