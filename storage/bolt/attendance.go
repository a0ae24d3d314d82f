package boltdb

import (
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
)

type attendanceRepository struct {
	db *DB
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) load() ([]attendance.Record, error) {
	recs := make([]attendance.Record, 0)
	if err := repo.db.Read(attendanceKey, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (repo *attendanceRepository) save(recs []attendance.Record) error {
	return repo.db.Write(attendanceKey, recs)
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	return repo.load()
}

func (repo *attendanceRepository) QueryRecordsByDate(day core.Date) ([]attendance.Record, error) {
	recs, err := repo.load()
	if err != nil {
		return nil, err
	}
	matched := make([]attendance.Record, 0, len(recs))
	for _, rec := range recs {
		if rec.Date.Equal(day) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func (repo *attendanceRepository) ReplaceDay(day core.Date, recs []attendance.Record) error {
	all, err := repo.load()
	if err != nil {
		return err
	}
	kept := make([]attendance.Record, 0, len(all)+len(recs))
	for _, rec := range all {
		if !rec.Date.Equal(day) {
			kept = append(kept, rec)
		}
	}
	kept = append(kept, recs...)
	return repo.save(kept)
}

func (repo *attendanceRepository) DeleteRecordsByStudent(studentID string) error {
	all, err := repo.load()
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, rec := range all {
		if rec.StudentID != studentID {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return repo.save(kept)
}

func (repo *attendanceRepository) DeleteRecordsByID(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	all, err := repo.load()
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, rec := range all {
		if !drop[rec.ID] {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return repo.save(kept)
}
