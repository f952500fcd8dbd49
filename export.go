package cartera

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// DefaultExportName is the file name used when exporting without an
// explicit destination.
const DefaultExportName = "investments.csv"

var csvHeader = []string{"Asset", "Quantity", "PurchasePrice", "CurrentPrice"}

// ExportCSV writes the open positions as CSV, one row per record in
// listing order (most recent first), prices as plain decimals in the
// session currency. An empty ledger still produces the header row.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range l.Positions() {
		row := []string{
			r.Asset,
			r.Quantity.String(),
			r.PurchasePrice.Amount().String(),
			r.CurrentPrice.Amount().String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes the CSV export to path, DefaultExportName when
// path is empty.
func ExportFile(path string, l *Ledger) error {
	if path == "" {
		path = DefaultExportName
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := ExportCSV(f, l); err != nil {
		f.Close()
		return fmt.Errorf("export to %s: %w", path, err)
	}
	return f.Close()
}
