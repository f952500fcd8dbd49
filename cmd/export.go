package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/primo/cartera"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the open positions to CSV" }
func (*exportCmd) Usage() string {
	return `pfc export [-o <file>]

  Writes the open positions as CSV with one row per record,
  header Asset,Quantity,PurchasePrice,CurrentPrice.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", cartera.DefaultExportName, "Destination file, '-' for stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.output == "-" {
		if err := cartera.ExportCSV(os.Stdout, session.Ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := cartera.ExportFile(p.output, session.Ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported positions to %s\n", p.output)
	return subcommands.ExitSuccess
}
