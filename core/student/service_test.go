package student_test

import (
	"testing"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/student"
	inmemdb "github.com/trezcool/darasa/storage/inmem"
	testutil "github.com/trezcool/darasa/tests"
)

func setup() (*student.Service, *attendance.Service, *inmemdb.DB) {
	db := inmemdb.Open()
	marksSvc := attendance.NewService(inmemdb.NewAttendanceRepository(db), core.NopLogger{})
	svc := student.NewService(inmemdb.NewStudentRepository(db), marksSvc, core.NopLogger{})
	return svc, marksSvc, db
}

func validDraft() student.NewStudent {
	return student.NewStudent{
		Name:         "Priya Sharma",
		DateOfBirth:  core.NewDate(2016, time.June, 2),
		Gender:       student.GenderFemale,
		FatherName:   "Rajesh Sharma",
		FatherMobile: "9876543210",
		MotherMobile: "9123456780",
	}
}

func TestService_Create(t *testing.T) {
	svc, _, _ := setup()

	ns := validDraft()
	st, err := svc.Create(ns)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if st.ID == "" {
		t.Error("Create() did not assign an id")
	}
	if st.CreatedAt.IsZero() {
		t.Error("Create() did not set createdAt")
	}
	if st.Status != student.StatusActive {
		t.Errorf("Create() status = %q, want default %q", st.Status, student.StatusActive)
	}
	if want := student.AgeAt(ns.DateOfBirth, core.Today()); st.Age != want {
		t.Errorf("Create() age = %d, want %d", st.Age, want)
	}

	students, err := svc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() error = %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("QueryAll() returned %d students, want 1", len(students))
	}
	if students[0].ID != st.ID || students[0].Name != ns.Name || students[0].FatherMobile != ns.FatherMobile {
		t.Errorf("QueryAll()[0] = %+v, want the created record", students[0])
	}
}

func TestService_Create_validation(t *testing.T) {
	svc, _, _ := setup()

	tests := []struct {
		name      string
		mutate    func(ns *student.NewStudent)
		wantField string
	}{
		{name: "missing name", mutate: func(ns *student.NewStudent) { ns.Name = "  " }, wantField: "name"},
		{name: "missing dob", mutate: func(ns *student.NewStudent) { ns.DateOfBirth = core.Date{} }, wantField: "dateOfBirth"},
		{name: "missing gender", mutate: func(ns *student.NewStudent) { ns.Gender = "" }, wantField: "gender"},
		{name: "unknown gender", mutate: func(ns *student.NewStudent) { ns.Gender = "Other" }, wantField: "gender"},
		{name: "missing father name", mutate: func(ns *student.NewStudent) { ns.FatherName = "" }, wantField: "fatherName"},
		{name: "mobile with letter", mutate: func(ns *student.NewStudent) { ns.FatherMobile = "12a45" }, wantField: "fatherMobile"},
		{name: "mobile too short", mutate: func(ns *student.NewStudent) { ns.MotherMobile = "12345" }, wantField: "motherMobile"},
		{name: "missing mobile", mutate: func(ns *student.NewStudent) { ns.MotherMobile = "" }, wantField: "motherMobile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := validDraft()
			tt.mutate(&ns)

			_, err := svc.Create(ns)
			vErr, ok := err.(*core.ValidationError)
			if !ok {
				t.Fatalf("Create() error = %v, want a ValidationError", err)
			}
			if _, ok := vErr.FieldMap()[tt.wantField]; !ok {
				t.Errorf("Create() fields = %v, want an error on %q", vErr.FieldMap(), tt.wantField)
			}

			// nothing may be stored on a rejected draft
			students, qErr := svc.QueryAll()
			if qErr != nil {
				t.Fatalf("QueryAll() error = %v", qErr)
			}
			if len(students) != 0 {
				t.Errorf("rejected draft was stored: %+v", students)
			}
		})
	}
}

func TestService_Create_acceptsValidMobile(t *testing.T) {
	svc, _, _ := setup()

	ns := validDraft()
	ns.FatherMobile = "9876543210"
	if _, err := svc.Create(ns); err != nil {
		t.Errorf("Create() error = %v, want none", err)
	}
}

func TestService_QueryAll_sortedByName(t *testing.T) {
	svc, _, db := setup()
	repo := inmemdb.NewStudentRepository(db)

	testutil.CreateStudent(t, repo, "Zara", true)
	testutil.CreateStudent(t, repo, "amit", true)
	testutil.CreateStudent(t, repo, "Meera", true)

	students, err := svc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() error = %v", err)
	}
	want := []string{"amit", "Meera", "Zara"}
	if len(students) != len(want) {
		t.Fatalf("QueryAll() returned %d students, want %d", len(students), len(want))
	}
	for i, name := range want {
		if students[i].Name != name {
			t.Errorf("QueryAll()[%d].Name = %q, want %q", i, students[i].Name, name)
		}
	}
}

func TestService_Search(t *testing.T) {
	svc, _, db := setup()
	repo := inmemdb.NewStudentRepository(db)

	testutil.CreateStudent(t, repo, "Zara", true)  // father "Zara Senior"
	testutil.CreateStudent(t, repo, "Amit", true)  // father "Amit Senior"
	testutil.CreateStudent(t, repo, "Meera", true) // father "Meera Senior"

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "by name", term: "zar", want: []string{"Zara"}},
		{name: "by father name", term: "amit sen", want: []string{"Amit"}},
		{name: "shared substring", term: "m", want: []string{"Amit", "Meera"}},
		{name: "no match", term: "xyz", want: []string{}},
		{name: "empty term returns all", term: "", want: []string{"Amit", "Meera", "Zara"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students, err := svc.Search(tt.term)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(students) != len(tt.want) {
				t.Fatalf("Search(%q) returned %d students, want %d", tt.term, len(students), len(tt.want))
			}
			for i, name := range tt.want {
				if students[i].Name != name {
					t.Errorf("Search(%q)[%d].Name = %q, want %q", tt.term, i, students[i].Name, name)
				}
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	svc, _, _ := setup()

	st, err := svc.Create(validDraft())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	us := student.UpdateStudent{
		Name:         "Priya Verma",
		DateOfBirth:  st.DateOfBirth,
		Gender:       st.Gender,
		FatherName:   st.FatherName,
		FatherMobile: st.FatherMobile,
		MotherMobile: st.MotherMobile,
		Status:       student.StatusInactive,
	}
	updated, err := svc.Update(st.ID, us)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != st.ID {
		t.Errorf("Update() changed id: %q -> %q", st.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(st.CreatedAt) {
		t.Errorf("Update() changed createdAt: %v -> %v", st.CreatedAt, updated.CreatedAt)
	}
	if updated.Name != "Priya Verma" || updated.Status != student.StatusInactive {
		t.Errorf("Update() = %+v, want new name and status applied", updated)
	}
}

func TestService_Update_unknownIDIsNoop(t *testing.T) {
	svc, _, _ := setup()

	st, err := svc.Create(validDraft())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	us := student.UpdateStudent{
		Name:         "Ghost",
		DateOfBirth:  st.DateOfBirth,
		Gender:       st.Gender,
		FatherName:   st.FatherName,
		FatherMobile: st.FatherMobile,
		MotherMobile: st.MotherMobile,
		Status:       student.StatusActive,
	}
	if _, err := svc.Update("nope", us); err != nil {
		t.Fatalf("Update(unknown) error = %v, want silent no-op", err)
	}

	students, _ := svc.QueryAll()
	if len(students) != 1 || students[0].Name != st.Name {
		t.Errorf("Update(unknown) modified the roster: %+v", students)
	}
}

func TestService_Delete_cascades(t *testing.T) {
	svc, marksSvc, db := setup()
	repo := inmemdb.NewStudentRepository(db)

	st := testutil.CreateStudent(t, repo, "Priya", true)
	other := testutil.CreateStudent(t, repo, "Amit", true)

	days := []core.Date{
		core.NewDate(2024, time.March, 4),
		core.NewDate(2024, time.March, 5),
		core.NewDate(2024, time.April, 1),
	}
	for _, day := range days {
		if err := marksSvc.SetForDate(day, map[string]string{
			st.ID:    attendance.StatusPresent,
			other.ID: attendance.StatusAbsent,
		}); err != nil {
			t.Fatalf("SetForDate() error = %v", err)
		}
	}

	if err := svc.Delete(st.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.Get(st.ID); err != student.ErrNotFound {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	for _, day := range days {
		marks, err := marksSvc.GetForDate(day)
		if err != nil {
			t.Fatalf("GetForDate() error = %v", err)
		}
		if _, ok := marks[st.ID]; ok {
			t.Errorf("record for deleted student survived on %s", day)
		}
		if _, ok := marks[other.ID]; !ok {
			t.Errorf("cascade delete dropped another student's record on %s", day)
		}
	}
}

func TestService_Delete_unknownIDIsNoop(t *testing.T) {
	svc, _, _ := setup()

	if err := svc.Delete("nope"); err != nil {
		t.Errorf("Delete(unknown) error = %v, want silent no-op", err)
	}
}

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name string
		dob  core.Date
		on   core.Date
		want int
	}{
		{name: "day before birthday", dob: core.NewDate(2010, time.June, 15), on: core.NewDate(2024, time.June, 14), want: 13},
		{name: "on birthday", dob: core.NewDate(2010, time.June, 15), on: core.NewDate(2024, time.June, 15), want: 14},
		{name: "day after birthday", dob: core.NewDate(2010, time.June, 15), on: core.NewDate(2024, time.June, 16), want: 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := student.AgeAt(tt.dob, tt.on); got != tt.want {
				t.Errorf("AgeAt() = %d, want %d", got, tt.want)
			}
		})
	}
}
