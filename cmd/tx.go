package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/primo/cartera"
)

type txCmd struct {
	typ      string
	asset    string
	quantity float64
	purchase float64
	current  float64
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "validate a movement and print its JSONL line" }
func (*txCmd) Usage() string {
	return `pfc tx -t <buy|sell> -a <asset> -q <quantity> [-p <purchase>] [-c <current>]

  Validates the movement against the current session, then prints it
  as one JSONL line on stdout, ready to append to the movements file:

    pfc tx -a btc -q 2 -p 100 >> movements.jsonl
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", "buy", "Movement type, buy or sell.")
	f.StringVar(&p.asset, "a", "", "Asset symbol (required).")
	f.Float64Var(&p.quantity, "q", 0, "Quantity of units.")
	f.Float64Var(&p.purchase, "p", 0, "Purchase price per unit.")
	f.Float64Var(&p.current, "c", 0, "Current price per unit.")
}

// movement builds the movement described by the flags.
func (p *txCmd) movement() (cartera.Movement, error) {
	typ, err := cartera.ParseMovementType(p.typ)
	if err != nil {
		return cartera.Movement{}, err
	}
	if typ == cartera.Sell {
		return cartera.NewSell(p.asset, cartera.Q(p.quantity), cartera.M(p.current, *currency)), nil
	}
	return cartera.NewBuy(p.asset, cartera.Q(p.quantity),
		cartera.M(p.purchase, *currency), cartera.M(p.current, *currency)), nil
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := p.movement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	// Replay the session first so a sell is checked against the
	// positions it would actually reduce.
	session, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := session.Ledger.Record(m); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := cartera.EncodeMovements(os.Stdout, []cartera.Movement{m}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
