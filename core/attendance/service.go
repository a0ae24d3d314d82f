package attendance

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

var (
	// errors
	ErrInvalidStatus = errors.New("invalid attendance status")
)

type (
	Repository interface {
		QueryAllRecords() ([]Record, error)
		QueryRecordsByDate(day core.Date) ([]Record, error)
		// ReplaceDay drops every record for the given day and stores
		// recs in their place, as one overwrite.
		ReplaceDay(day core.Date, recs []Record) error
		DeleteRecordsByStudent(studentID string) error
		DeleteRecordsByID(ids ...string) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetForDate returns the studentID -> status mapping for one calendar day.
func (svc *Service) GetForDate(day core.Date) (map[string]string, error) {
	recs, err := svc.repo.QueryRecordsByDate(day)
	if err != nil {
		return nil, err
	}
	marks := make(map[string]string, len(recs))
	for _, rec := range recs {
		marks[rec.StudentID] = rec.Status
	}
	return marks, nil
}

// SetForDate replaces the entire set of records for one calendar day
// with the given marks. Entries with an empty status are omitted, not
// stored as an empty marker.
func (svc *Service) SetForDate(day core.Date, marks map[string]string) error {
	recs := make([]Record, 0, len(marks))
	for studentID, status := range marks {
		if status == "" {
			continue
		}
		if !ValidStatus(status) {
			return errors.Wrapf(ErrInvalidStatus, "%q", status)
		}
		recs = append(recs, NewRecord(studentID, day, status))
	}
	// deterministic storage order
	sort.Slice(recs, func(i, j int) bool { return recs[i].StudentID < recs[j].StudentID })
	return svc.repo.ReplaceDay(day, recs)
}

// QueryAll returns the full ledger snapshot, e.g. for aggregation.
func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}

// RemoveForStudent deletes every record for the student, regardless of
// date. Used by the roster's cascade delete.
func (svc *Service) RemoveForStudent(studentID string) error {
	return svc.repo.DeleteRecordsByStudent(studentID)
}

// Reconcile drops records whose student no longer exists in the roster.
// A crash between the two writes of a cascade delete can leave such
// orphans behind; running this at startup repairs them. Returns the
// number of records dropped.
func (svc *Service) Reconcile(roster []student.Student) (int, error) {
	known := make(map[string]bool, len(roster))
	for i := range roster {
		known[roster[i].ID] = true
	}
	recs, err := svc.repo.QueryAllRecords()
	if err != nil {
		return 0, err
	}
	var orphans []string
	for _, rec := range recs {
		if !known[rec.StudentID] {
			orphans = append(orphans, rec.ID)
		}
	}
	if len(orphans) == 0 {
		return 0, nil
	}
	svc.log.Infof("reconcile: dropping %d orphaned attendance records", len(orphans))
	return len(orphans), svc.repo.DeleteRecordsByID(orphans...)
}
