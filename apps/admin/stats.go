package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/student"
)

func (cli *commandLine) runStats() error {
	roster, err := cli.students.QueryAll()
	if err != nil {
		return err
	}
	records, err := cli.marks.QueryAll()
	if err != nil {
		return err
	}
	months := attendance.MonthlyStats(roster, records, time.Now())

	fmt.Fprintf(cli.out, "%d active students\n", student.CountActive(roster))
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tSTUDENTS\tDAYS\tAVG %\tPRESENT/STUDENT")
	for _, m := range months {
		fmt.Fprintf(w, "%s %d\t%d\t%d\t%.1f\t%d\n", m.Month, m.Year, m.TotalStudents, m.TotalDays, m.AverageAttendance, m.PresentDays)
	}
	return w.Flush()
}
