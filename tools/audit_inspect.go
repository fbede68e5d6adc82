package main

import (
	"bank-lab/repositories"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "audit-db", "Path to the audit badger DB")
	pageSize := flag.Int("page", 100, "Entries read per scan")
	operation := flag.String("op", "", "Only show this operation (e.g. DEPOSIT)")
	flag.Parse()
	if *pageSize <= 0 {
		log.Fatal("page must be positive")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewAuditRepository(db, slog.Default(), pageSize)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Timestamp", "Operation", "Args", "Outcome", "ID"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var cursor *string
	rows := 0
	for {
		entries, next, err := repository.GetEntries(cursor)
		if err != nil {
			log.Fatal(err)
		}
		for _, e := range entries {
			if *operation != "" && !strings.EqualFold(e.Operation, *operation) {
				continue
			}
			args := make([]string, 0, len(e.Args))
			for _, a := range e.Args {
				args = append(args, a.Key+"="+a.Value)
			}
			// First 8 characters of the ID are enough to tell entries apart
			displayID := e.ID.String()[:8]
			table.Append([]string{
				e.At.Format("2006-01-02 15:04:05"),
				e.Operation,
				strings.Join(args, ", "),
				e.Outcome,
				displayID,
			})
			rows++
		}
		if len(entries) < *pageSize {
			break
		}
		cursor = next
	}

	table.Render()
	fmt.Printf("%d entries\n", rows)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
