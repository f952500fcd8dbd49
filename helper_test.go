package cartera

import (
	"testing"
	"time"
)

// test shorthands for the session currency used across the package tests.

func eur(v float64) Money { return M(v, "EUR") }

func mustRecord(t *testing.T, l *Ledger, m Movement) uint64 {
	t.Helper()
	id, err := l.Record(m)
	if err != nil {
		t.Fatalf("Record(%s %s) failed: %v", m.Type, m.Asset, err)
	}
	return id
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}
