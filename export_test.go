package cartera

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("btc", Q(2), eur(100), eur(120)))
	mustRecord(t, l, NewBuy("eth", Q(0.5), eur(20), eur(18)))

	var b strings.Builder
	if err := ExportCSV(&b, l); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	want := [][]string{
		{"Asset", "Quantity", "PurchasePrice", "CurrentPrice"},
		{"eth", "0.5", "20", "18"},
		{"btc", "2", "100", "120"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ExportCSV rows = %v, want %v", rows, want)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	var b strings.Builder
	if err := ExportCSV(&b, NewLedger("EUR")); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if got := strings.TrimSpace(b.String()); got != "Asset,Quantity,PurchasePrice,CurrentPrice" {
		t.Errorf("empty export = %q, want the header row only", got)
	}
}

func TestExportFile(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("btc", Q(1), eur(100), eur(110)))

	path := filepath.Join(t.TempDir(), DefaultExportName)
	if err := ExportFile(path, l); err != nil {
		t.Fatalf("ExportFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export back: %v", err)
	}
	if !strings.HasPrefix(string(content), "Asset,Quantity,PurchasePrice,CurrentPrice\n") {
		t.Errorf("export starts with %q, want the CSV header", string(content))
	}
}
