package attendance

import (
	"github.com/trezcool/darasa/core"
)

// Statuses a student can be marked with on a given day.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
	StatusHoliday = "Holiday"
	StatusNoClass = "No Class"
)

var Statuses = []string{StatusPresent, StatusAbsent, StatusLeave, StatusHoliday, StatusNoClass}

func ValidStatus(s string) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Record is a single student's mark for one calendar day.
type Record struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	Date      core.Date `json:"date"`
	Status    string    `json:"status"`
}

// RecordID derives the deterministic id for a (student, day) pair so at
// most one record can exist per student per calendar day.
func RecordID(studentID string, day core.Date) string {
	return studentID + "-" + day.String()
}

func NewRecord(studentID string, day core.Date, status string) Record {
	return Record{
		ID:        RecordID(studentID, day),
		StudentID: studentID,
		Date:      day,
		Status:    status,
	}
}

// Monthly is one month's derived attendance summary. It is recomputed
// in full on every read and never persisted.
type Monthly struct {
	Month             string  `json:"month"`
	Year              int     `json:"year"`
	TotalStudents     int     `json:"totalStudents"`
	AverageAttendance float64 `json:"averageAttendance"`
	TotalDays         int     `json:"totalDays"`
	PresentDays       int     `json:"presentDays"`
}

// DayStats summarizes one day's marks.
type DayStats struct {
	Total   int
	Present int
	Absent  int
}

func SummarizeDay(marks map[string]string) DayStats {
	stats := DayStats{Total: len(marks)}
	for _, status := range marks {
		switch status {
		case StatusPresent:
			stats.Present++
		case StatusAbsent:
			stats.Absent++
		}
	}
	return stats
}
