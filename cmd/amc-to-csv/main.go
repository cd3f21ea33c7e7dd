package main

import (
	"flag"
	"io"
	"log"
	"os"

	amctools "github.com/jmadkour/AMCTools"
	"github.com/jmadkour/AMCTools/excel"
)

func main() {
	input := flag.String("input", "", "Roster workbook (.xlsx); stdin when empty")
	output := flag.String("output", "liste_etudiants_amc.csv", "Destination CSV")
	flag.Parse()

	in := io.Reader(os.Stdin)
	if *input != "" {
		fd, err := os.Open(*input)
		if err != nil {
			log.Fatal(err)
		}
		defer fd.Close()
		in = fd
	}

	table, err := excel.ReadRaw(in)
	if err != nil {
		log.Fatal(err)
	}

	session, err := amctools.NormalizeRoster(table)
	if err != nil {
		log.Fatal(err)
	}
	if n := session.Roster.MissingCodes(); n > 0 {
		log.Printf("warning: %d invalid student codes", n)
	}

	fd, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	if err := amctools.WriteRosterCSV(fd, session.Roster); err != nil {
		log.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %s (%d students)", *output, len(session.Roster.Rows))
}
