// Package cmd implements the CLI application to work a portfolio session.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/primo/cartera"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&txCmd{}, "movements")

	c.Register(&summaryCmd{}, "session")
	c.Register(&logCmd{}, "session")
	c.Register(&exportCmd{}, "session")
	c.Register(&watchCmd{}, "session")
	c.Register(&assistCmd{}, "session")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var movementsFile = flag.String("f", "movements.jsonl", "Movements to replay into the session (JSONL format)")
var currency = flag.String("currency", cartera.DefaultCurrency, "Session currency (ISO 4217 code)")

// LoadSession replays the movements file into a fresh session. A
// missing file is not an error, the session simply starts empty.
func LoadSession() (*cartera.Session, error) {
	f, err := os.Open(*movementsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cartera.NewSession(*currency), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := cartera.DecodeSession(f, *currency)
	if err != nil {
		return nil, fmt.Errorf("replaying %s: %w", *movementsFile, err)
	}
	return s, nil
}

// printMarkdown renders markdown for the terminal. On render failure
// the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
