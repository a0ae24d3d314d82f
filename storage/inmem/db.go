package inmemdb

import (
	"sync"

	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/student"
)

type (
	// DB holds both collections in memory; for tests and dry runs.
	DB struct {
		students   *studentTable
		attendance *attendanceTable
	}

	studentTable struct {
		table map[string]*student.Student
		mutex sync.RWMutex
	}

	attendanceTable struct {
		table map[string]*attendance.Record
		mutex sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		students:   &studentTable{table: make(map[string]*student.Student)},
		attendance: &attendanceTable{table: make(map[string]*attendance.Record)},
	}
}
