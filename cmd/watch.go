package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/primo/cartera"
	"github.com/primo/cartera/renderer"
)

type watchCmd struct {
	symbol   string
	interval time.Duration
	url      string
	path     string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "poll live prices for a symbol and track the portfolio value" }
func (*watchCmd) Usage() string {
	return `pfc watch -s <symbol> [-i <interval>] [-url <template> -path <jsonpath>]

  Polls the price feed for the symbol, applies each quote to the
  session and appends the portfolio value to the history. The feed
  defaults to CoinGecko, -url and -path select another JSON endpoint.
  Stops on interrupt, then prints the session overview.
`
}

func (p *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Symbol to watch (required).")
	f.DurationVar(&p.interval, "i", cartera.DefaultPollInterval, "Polling interval.")
	f.StringVar(&p.url, "url", "", "Price endpoint URL template with one %s for the symbol.")
	f.StringVar(&p.path, "path", "", "JSONPath of the price with one %s for the symbol.")
}

func (p *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -s <symbol> is required.")
		return subcommands.ExitUsageError
	}
	if (p.url == "") != (p.path == "") {
		fmt.Fprintln(os.Stderr, "Error: -url and -path must be given together.")
		return subcommands.ExitUsageError
	}

	session, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var feed cartera.Feed
	if p.url != "" {
		feed = cartera.NewSpotFeed(p.url, p.path, *currency)
	} else {
		feed = cartera.CoinGecko(*currency)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w := cartera.NewWatcher(feed, session, p.symbol, p.interval)
	w.OnQuote = func(q cartera.Quote) {
		mark := ""
		if q.Stale {
			mark = " (stale)"
		}
		v := session.Ledger.Valuation()
		fmt.Printf("%s  %s %s%s, portfolio %s (%s)\n",
			q.Time.Format("15:04:05"), q.Asset, q.Price, mark,
			v.Value, v.Gain.SignedString())
	}

	fmt.Printf("Watching %s every %s, interrupt to stop.\n", p.symbol, p.interval)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println()
	printMarkdown(renderer.RenderDashboard(&renderer.Dashboard{
		Valuation: session.Ledger.Valuation(),
		Positions: session.Ledger.Positions(),
		History:   session.History.Points(),
	}))
	return subcommands.ExitSuccess
}
