package cartera

import (
	"fmt"
	"io"
)

// Session is one in-memory working set: a ledger and the value history
// observed while it was open. Nothing in a session outlives the
// process except what Export writes.
type Session struct {
	Ledger  *Ledger
	History *Series
}

// NewSession creates an empty session in the given currency.
func NewSession(currency string) *Session {
	return &Session{
		Ledger:  NewLedger(currency),
		History: &Series{},
	}
}

// Replay registers movements in order, as if they had been submitted
// one by one. Identifiers from the input are discarded, the ledger
// assigns fresh ones. It stops at the first rejected movement.
func (s *Session) Replay(movements []Movement) error {
	for i, m := range movements {
		if _, err := s.Ledger.Record(m); err != nil {
			return fmt.Errorf("movement %d (%s %s): %w", i+1, m.Type, m.Asset, err)
		}
	}
	return nil
}

// DecodeSession reads a JSONL movement stream and replays it into a
// fresh session.
func DecodeSession(r io.Reader, currency string) (*Session, error) {
	movements, err := DecodeMovements(r)
	if err != nil {
		return nil, err
	}
	s := NewSession(currency)
	if err := s.Replay(movements); err != nil {
		return nil, err
	}
	return s, nil
}

// Observe valuates the ledger and appends the total value to the
// history. It returns the valuation it recorded.
func (s *Session) Observe() *Valuation {
	v := s.Ledger.Valuation()
	s.History.Append(v.Time, v.Value)
	return v
}
