package console

import (
	"bank-lab/services"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

const (
	entryTimeLayout = "02-01-2006 15:04:05"
	noMovements     = "No movements were made."
)

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
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
	return table
}

func renderStatement(out io.Writer, s services.Statement) {
	fmt.Fprintln(out, "\n================ STATEMENT ================")
	fmt.Fprintf(out, "Agency: %s\tC/C: %d\tHolder: %s\n\n", s.Agency, s.Number, s.Holder)
	if len(s.Entries) == 0 {
		fmt.Fprintln(out, noMovements)
	} else {
		table := newTable(out, "Date", "Type", "Amount")
		for _, e := range s.Entries {
			table.Append([]string{e.At.Format(entryTimeLayout), string(e.Kind), money(e.Amount)})
		}
		table.Render()
	}
	fmt.Fprintf(out, "\nBalance:\t%s\n", money(s.Balance))
	fmt.Fprintln(out, "===========================================")
}

// renderAccounts writes one row per record and returns how many were written.
func renderAccounts(out io.Writer, records iter.Seq[services.AccountRecord]) int {
	table := newTable(out, "Agency", "Number", "Holder", "Balance")
	count := 0
	for r := range records {
		table.Append([]string{r.Agency, strconv.Itoa(r.Number), r.Holder, money(r.Balance)})
		count++
	}
	if count > 0 {
		table.Render()
	}
	return count
}
