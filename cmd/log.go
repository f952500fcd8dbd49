package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/primo/cartera/renderer"
)

type logCmd struct {
	head int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the recorded movements, most recent first" }
func (*logCmd) Usage() string {
	return `pfc log [-head <n>]

  Lists the movements of the session, most recent first.
`
}

func (p *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N movements.")
}

func (p *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	movements := session.Ledger.Movements()
	if p.head > 0 && len(movements) > p.head {
		movements = movements[:p.head]
	}

	printMarkdown(renderer.RenderMovements(movements))
	return subcommands.ExitSuccess
}
