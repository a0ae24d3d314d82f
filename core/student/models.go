package student

import (
	"time"

	"github.com/trezcool/darasa/core"
)

// Genders
const (
	GenderFemale      = "Female"
	GenderMale        = "Male"
	GenderTransgender = "Transgender"
)

// Statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var (
	Genders  = []string{GenderFemale, GenderMale, GenderTransgender}
	Statuses = []string{StatusActive, StatusInactive}
)

type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DateOfBirth  core.Date `json:"dateOfBirth"`
	Age          int       `json:"age"` // snapshot taken at submit time; never recomputed
	Gender       string    `json:"gender"`
	FatherName   string    `json:"fatherName"`
	FatherMobile string    `json:"fatherMobile"`
	MotherMobile string    `json:"motherMobile"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"` // UTC
}

func (s *Student) IsActive() bool {
	return s.Status == StatusActive
}

// CountActive returns the number of Active students in the roster.
func CountActive(students []Student) int {
	var n int
	for i := range students {
		if students[i].IsActive() {
			n++
		}
	}
	return n
}

// AgeAt returns the whole years elapsed between dob and the given day.
func AgeAt(dob core.Date, on core.Date) int {
	years := on.Year() - dob.Year()
	anniversary := core.NewDate(dob.Year()+years, dob.Month(), dob.Day())
	if on.Before(anniversary) {
		years--
	}
	return years
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	Name         string    `json:"name" validate:"required"`
	DateOfBirth  core.Date `json:"dateOfBirth" validate:"required"`
	Gender       string    `json:"gender" validate:"required,oneof=Female Male Transgender"`
	FatherName   string    `json:"fatherName" validate:"required"`
	FatherMobile string    `json:"fatherMobile" validate:"required,digits,min=10"`
	MotherMobile string    `json:"motherMobile" validate:"required,digits,min=10"`
	Status       string    `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.FatherName = core.CleanString(ns.FatherName)
	ns.FatherMobile = core.CleanString(ns.FatherMobile)
	ns.MotherMobile = core.CleanString(ns.MotherMobile)
	return core.TranslateError(core.Validate.Struct(ns))
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. All mutable fields are replaced wholesale.
type UpdateStudent struct {
	Name         string    `json:"name" validate:"required"`
	DateOfBirth  core.Date `json:"dateOfBirth" validate:"required"`
	Gender       string    `json:"gender" validate:"required,oneof=Female Male Transgender"`
	FatherName   string    `json:"fatherName" validate:"required"`
	FatherMobile string    `json:"fatherMobile" validate:"required,digits,min=10"`
	MotherMobile string    `json:"motherMobile" validate:"required,digits,min=10"`
	Status       string    `json:"status" validate:"required,oneof=Active Inactive"`
}

func (us *UpdateStudent) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.FatherName = core.CleanString(us.FatherName)
	us.FatherMobile = core.CleanString(us.FatherMobile)
	us.MotherMobile = core.CleanString(us.MotherMobile)
	return core.TranslateError(core.Validate.Struct(us))
}
