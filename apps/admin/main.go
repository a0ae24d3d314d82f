package main

import (
	"fmt"
	"os"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/student"
	logsvc "github.com/trezcool/darasa/services/logger"
	boltdb "github.com/trezcool/darasa/storage/bolt"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewZerologLogger(conf)

	db, err := boltdb.Open(conf.DatabasePath(), logger)
	if err != nil {
		logger.Errorf("opening database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	marksSvc := attendance.NewService(boltdb.NewAttendanceRepository(db), logger)
	studentSvc := student.NewService(boltdb.NewStudentRepository(db), marksSvc, logger)

	// drop marks orphaned by an interrupted cascade delete
	if roster, err := studentSvc.QueryAll(); err == nil {
		if _, err := marksSvc.Reconcile(roster); err != nil {
			logger.Errorf("reconcile: %v", err)
		}
	}

	cli := &commandLine{students: studentSvc, marks: marksSvc, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
