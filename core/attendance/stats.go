package attendance

import (
	"math"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

// months covered by the summary: the current one and the five preceding
const statsWindow = 6

// MonthlyStats derives the rolling attendance overview from a roster
// and ledger snapshot, oldest month first. It is a pure function of its
// inputs; callers recompute after any mutation.
//
// The Active student count is evaluated at aggregation time, so a
// student marked Inactive today is excluded from past months'
// denominators too.
func MonthlyStats(students []student.Student, records []Record, now time.Time) []Monthly {
	active := student.CountActive(students)
	months := make([]Monthly, 0, statsWindow)
	for i := statsWindow - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		months = append(months, monthly(first, active, records))
	}
	return months
}

func monthly(first time.Time, activeStudents int, records []Record) Monthly {
	start := core.DateOf(first)
	end := core.DateOf(first.AddDate(0, 1, -1)) // last day of the month
	working := workingDays(start, end)

	var present int
	for _, rec := range records {
		if rec.Status == StatusPresent && !rec.Date.Before(start) && !rec.Date.After(end) {
			present++
		}
	}

	var avg float64
	if possible := working * activeStudents; possible > 0 {
		pct := float64(present) / float64(possible) * 100
		avg = math.Round(pct*10) / 10
	}

	return Monthly{
		Month:             start.Format("Jan"),
		Year:              start.Year(),
		TotalStudents:     activeStudents,
		AverageAttendance: avg,
		TotalDays:         working,
		PresentDays:       int(math.Round(float64(present) / math.Max(float64(activeStudents), 1))),
	}
}

// workingDays counts the Monday-Friday days in [start, end].
func workingDays(start, end core.Date) int {
	var n int
	for day := start; !day.After(end); day = day.AddDays(1) {
		if day.IsWorkingDay() {
			n++
		}
	}
	return n
}
