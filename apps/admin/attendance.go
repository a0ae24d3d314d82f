package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
)

func (cli *commandLine) runAttendance(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "day":
		dayCmd := flag.NewFlagSet("day", flag.ExitOnError)
		date := dayCmd.String("date", core.Today().String(), "The day to show (2006-01-02).")
		if err := dayCmd.Parse(args[1:]); err != nil {
			return err
		}
		day, err := core.ParseDate(*date)
		if err != nil {
			return err
		}
		marks, err := cli.marks.GetForDate(day)
		if err != nil {
			return err
		}
		cli.printDay(day, marks)
		return nil

	case "mark":
		markCmd := flag.NewFlagSet("mark", flag.ExitOnError)
		date := markCmd.String("date", core.Today().String(), "The day to record (2006-01-02).")
		set := markCmd.String("set", "", "Comma-separated studentID=Status pairs; replaces the whole day.")
		if err := markCmd.Parse(args[1:]); err != nil {
			return err
		}
		day, err := core.ParseDate(*date)
		if err != nil {
			return err
		}
		marks, err := parseMarks(*set)
		if err != nil {
			return err
		}
		if err := cli.marks.SetForDate(day, marks); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "attendance for %s saved\n", day)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}

func parseMarks(set string) (map[string]string, error) {
	marks := make(map[string]string)
	if set == "" {
		return marks, nil
	}
	for _, pair := range strings.Split(set, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Errorf("malformed mark %q, want studentID=Status", pair)
		}
		marks[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return marks, nil
}

func (cli *commandLine) printDay(day core.Date, marks map[string]string) {
	ids := make([]string, 0, len(marks))
	for id := range marks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(cli.out, "%s\t%s\n", id, marks[id])
	}
	stats := attendance.SummarizeDay(marks)
	fmt.Fprintf(cli.out, "%s: %d marked, %d present, %d absent\n", day, stats.Total, stats.Present, stats.Absent)
}
