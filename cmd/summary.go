package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/primo/cartera/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the portfolio valuation" }
func (*summaryCmd) Usage() string {
	return `pfc summary

  Replays the movements file and shows the resulting portfolio
  valuation: totals, per-asset breakdown and open positions.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderDashboard(&renderer.Dashboard{
		Valuation: session.Ledger.Valuation(),
		Positions: session.Ledger.Positions(),
		History:   session.History.Points(),
	}))
	return subcommands.ExitSuccess
}
