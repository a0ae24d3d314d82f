package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/student"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	students *student.Service
	marks    *attendance.Service
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  students list|search|add|update|delete - manage the roster")
	fmt.Fprintln(cli.out, "  attendance day|mark - view or record a day's marks")
	fmt.Fprintln(cli.out, "  stats - six-month attendance overview")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "students":
		return cli.runStudents(args[2:])
	case "attendance":
		return cli.runAttendance(args[2:])
	case "stats":
		return cli.runStats()
	default:
		cli.printUsage()
		return errHelp
	}
}

// reportValidation prints the field -> message mapping of a
// ValidationError; any other error passes through for the caller.
func (cli *commandLine) reportValidation(err error) error {
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		return err
	}
	flds := vErr.FieldMap()
	fields := make([]string, 0, len(flds))
	for field := range flds {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(cli.out, "%s: %s\n", field, flds[field])
	}
	return err
}
