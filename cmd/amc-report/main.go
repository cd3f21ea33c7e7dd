package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kingpin"

	amctools "github.com/jmadkour/AMCTools"
	"github.com/jmadkour/AMCTools/excel"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Lshortfile)

	cmdCheck := kingpin.Command("check", "Validate a grade file against the roster workbook")
	cmdMerge := kingpin.Command("merge", "Merge grades back into the workbook layout")
	roster := kingpin.Flag("roster", "Roster workbook (.xlsx)").Required().OpenFile(os.O_RDONLY, 0666)
	notes := kingpin.Flag("notes", "AMC grade export (.csv)").Required().OpenFile(os.O_RDONLY, 0666)
	output := kingpin.Flag("output", "Merged workbook destination").Default("notes_finales.xlsx").String()
	cmd := kingpin.Parse()

	session, grades := load(*roster, *notes)

	switch cmd {
	case cmdCheck.FullCommand():
		report(session, grades)

	case cmdMerge.FullCommand():
		report(session, grades)

		merged := amctools.Merge(session, grades)
		bs, err := excel.MergedXLSX(session.Preamble, merged)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*output, bs, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s (%d students)\n", *output, len(merged.Rows))
	}
}

func load(roster, notes *os.File) (*amctools.Session, *amctools.GradeTable) {
	table, err := excel.ReadRaw(roster)
	if err != nil {
		log.Fatal(err)
	}
	session, err := amctools.NormalizeRoster(table)
	if err != nil {
		log.Fatal(err)
	}
	if n := session.Roster.MissingCodes(); n > 0 {
		fmt.Printf("warning: %d invalid student codes in the roster\n", n)
	}

	grades, err := amctools.ParseGrades(notes)
	if err != nil {
		log.Fatal(err)
	}
	return session, grades
}

func report(session *amctools.Session, grades *amctools.GradeTable) {
	anomalies := grades.Anomalies(session.Roster)
	if len(anomalies) == 0 {
		fmt.Println("no anomalies detected")
	} else {
		fmt.Println("anomalies detected:")
		for _, a := range anomalies {
			fmt.Printf("  - %s\n", a)
		}
	}

	if sum, ok := amctools.Summarize(grades); ok {
		fmt.Printf("mean %.2f/20, max %.2f, min %.2f (%d scores)\n", sum.Mean, sum.Max, sum.Min, sum.Graded)
	}
}
