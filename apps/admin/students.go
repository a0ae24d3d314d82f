package main

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

func (cli *commandLine) runStudents(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "list":
		students, err := cli.students.QueryAll()
		if err != nil {
			return err
		}
		cli.printStudents(students)
		return nil

	case "search":
		searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
		term := searchCmd.String("term", "", "Case-insensitive match on name or father's name.")
		if err := searchCmd.Parse(args[1:]); err != nil {
			return err
		}
		students, err := cli.students.Search(*term)
		if err != nil {
			return err
		}
		cli.printStudents(students)
		return nil

	case "add":
		addCmd := flag.NewFlagSet("add", flag.ExitOnError)
		draft, dob := studentFlags(addCmd)
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		ns := student.NewStudent{
			Name:         draft.name,
			Gender:       draft.gender,
			FatherName:   draft.fatherName,
			FatherMobile: draft.fatherMobile,
			MotherMobile: draft.motherMobile,
			Status:       draft.status,
		}
		if *dob != "" {
			day, err := core.ParseDate(*dob)
			if err != nil {
				return err
			}
			ns.DateOfBirth = day
		}
		st, err := cli.students.Create(ns)
		if err != nil {
			return cli.reportValidation(err)
		}
		fmt.Fprintf(cli.out, "added %s (%s)\n", st.Name, st.ID)
		return nil

	case "update":
		updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
		id := updateCmd.String("id", "", "The student's id.")
		draft, dob := studentFlags(updateCmd)
		if err := updateCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			updateCmd.Usage()
			return errHelp
		}
		us := student.UpdateStudent{
			Name:         draft.name,
			Gender:       draft.gender,
			FatherName:   draft.fatherName,
			FatherMobile: draft.fatherMobile,
			MotherMobile: draft.motherMobile,
			Status:       draft.status,
		}
		if *dob != "" {
			day, err := core.ParseDate(*dob)
			if err != nil {
				return err
			}
			us.DateOfBirth = day
		}
		if _, err := cli.students.Update(*id, us); err != nil {
			return cli.reportValidation(err)
		}
		return nil

	case "delete":
		deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
		id := deleteCmd.String("id", "", "The student's id.")
		if err := deleteCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			deleteCmd.Usage()
			return errHelp
		}
		return cli.students.Delete(*id)

	default:
		cli.printUsage()
		return errHelp
	}
}

type studentDraftFlags struct {
	name         string
	gender       string
	fatherName   string
	fatherMobile string
	motherMobile string
	status       string
}

func studentFlags(cmd *flag.FlagSet) (*studentDraftFlags, *string) {
	draft := new(studentDraftFlags)
	cmd.StringVar(&draft.name, "name", "", "The student's name.")
	cmd.StringVar(&draft.gender, "gender", "", "Female, Male or Transgender.")
	cmd.StringVar(&draft.fatherName, "father", "", "The father's name.")
	cmd.StringVar(&draft.fatherMobile, "father-mobile", "", "The father's mobile number.")
	cmd.StringVar(&draft.motherMobile, "mother-mobile", "", "The mother's mobile number.")
	cmd.StringVar(&draft.status, "status", "", "Active or Inactive.")
	dob := cmd.String("dob", "", "Date of birth (2006-01-02).")
	return draft, dob
}

func (cli *commandLine) printStudents(students []student.Student) {
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAGE\tGENDER\tFATHER\tSTATUS")
	for _, st := range students {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", st.ID, st.Name, st.Age, st.Gender, st.FatherName, st.Status)
	}
	_ = w.Flush()
	fmt.Fprintf(cli.out, "%d students registered\n", len(students))
}
