package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/student"
)

func CreateStudent(
	t *testing.T,
	repo student.Repository,
	name string,
	active bool,
	dob ...core.Date,
) student.Student {
	t.Helper()

	birth := core.NewDate(2015, time.March, 10)
	if len(dob) > 0 {
		birth = dob[0]
	}
	status := student.StatusActive
	if !active {
		status = student.StatusInactive
	}
	st := student.Student{
		ID:           uuid.NewString(),
		Name:         name,
		DateOfBirth:  birth,
		Age:          student.AgeAt(birth, core.Today()),
		Gender:       student.GenderFemale,
		FatherName:   name + " Senior",
		FatherMobile: "9876543210",
		MotherMobile: "9876543211",
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
	st, err := repo.CreateStudent(st)
	if err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return st
}

// SaveDay stores one day's marks directly through the repository.
func SaveDay(t *testing.T, repo attendance.Repository, day core.Date, marks map[string]string) {
	t.Helper()

	recs := make([]attendance.Record, 0, len(marks))
	for studentID, status := range marks {
		recs = append(recs, attendance.NewRecord(studentID, day, status))
	}
	if err := repo.ReplaceDay(day, recs); err != nil {
		t.Fatalf("saveDay() failed: %v", err)
	}
}
