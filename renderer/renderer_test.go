package renderer

import (
	"strings"
	"testing"

	"github.com/primo/cartera"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func eur(v float64) cartera.Money { return cartera.M(v, "EUR") }

func sessionDashboard(t *testing.T) *Dashboard {
	t.Helper()
	s := cartera.NewSession("EUR")
	err := s.Replay([]cartera.Movement{
		cartera.NewBuy("btc", cartera.Q(2), eur(100), eur(120)),
		cartera.NewBuy("eth", cartera.Q(10), eur(20), eur(18)),
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Observe()
	return &Dashboard{
		Valuation: s.Ledger.Valuation(),
		Positions: s.Ledger.Positions(),
		History:   s.History.Points(),
	}
}

func TestRenderDashboard(t *testing.T) {
	got := RenderDashboard(sessionDashboard(t))

	if strings.Contains(got, "error") {
		t.Fatalf("rendering failed:\n%s", got)
	}

	// The document opens with a level-1 title.
	src := []byte(got)
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	heading, ok := root.FirstChild().(*ast.Heading)
	if !ok || heading.Level != 1 {
		t.Fatalf("document does not open with a level-1 heading:\n%s", got)
	}
	if title := string(heading.Text(src)); !strings.Contains(title, "Portfolio on") {
		t.Errorf("title = %q, want it to start with 'Portfolio on'", title)
	}

	for _, want := range []string{
		"Total Invested",
		"Current Value",
		"Net Gain",
		"## Assets",
		"## Positions",
		"## Value History",
		"btc",
		"eth",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard misses %q:\n%s", want, got)
		}
	}
}

func TestRenderDashboardEmpty(t *testing.T) {
	s := cartera.NewSession("EUR")
	got := RenderDashboard(&Dashboard{
		Valuation: s.Ledger.Valuation(),
		Positions: s.Ledger.Positions(),
		History:   s.History.Points(),
	})

	if strings.Contains(got, "error") {
		t.Fatalf("rendering failed:\n%s", got)
	}
	if !strings.Contains(got, "No position recorded yet.") {
		t.Errorf("empty dashboard misses the placeholder:\n%s", got)
	}
	// Empty sections stay out of the report.
	if strings.Contains(got, "## Assets") || strings.Contains(got, "## Value History") {
		t.Errorf("empty dashboard renders empty sections:\n%s", got)
	}
}

func TestRenderMovements(t *testing.T) {
	s := cartera.NewSession("EUR")
	err := s.Replay([]cartera.Movement{
		cartera.NewBuy("btc", cartera.Q(2), eur(100), eur(120)),
		cartera.NewSell("btc", cartera.Q(1), eur(130)),
	})
	if err != nil {
		t.Fatal(err)
	}

	got := RenderMovements(s.Ledger.Movements())
	if strings.Contains(got, "error") {
		t.Fatalf("rendering failed:\n%s", got)
	}
	if !strings.Contains(got, "buy") || !strings.Contains(got, "sell") {
		t.Errorf("movements report misses entries:\n%s", got)
	}

	if got := RenderMovements(nil); !strings.Contains(got, "No movement recorded yet.") {
		t.Errorf("empty report misses the placeholder:\n%s", got)
	}
}
