package inmemdb

import (
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) query() []attendance.Record {
	recs := make([]attendance.Record, 0, len(repo.db.table))
	for _, rec := range repo.db.table {
		recs = append(recs, *rec)
	}
	return recs
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *attendanceRepository) QueryRecordsByDate(day core.Date) ([]attendance.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matched := make([]attendance.Record, 0)
	for _, rec := range repo.db.table {
		if rec.Date.Equal(day) {
			matched = append(matched, *rec)
		}
	}
	return matched, nil
}

func (repo *attendanceRepository) ReplaceDay(day core.Date, recs []attendance.Record) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for id, rec := range repo.db.table {
		if rec.Date.Equal(day) {
			delete(repo.db.table, id)
		}
	}
	for i := range recs {
		rec := recs[i]
		repo.db.table[rec.ID] = &rec
	}
	return nil
}

func (repo *attendanceRepository) DeleteRecordsByStudent(studentID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for id, rec := range repo.db.table {
		if rec.StudentID == studentID {
			delete(repo.db.table, id)
		}
	}
	return nil
}

func (repo *attendanceRepository) DeleteRecordsByID(ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
