package cartera

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// EncodeMovements writes movements to w, one JSON object per line.
func EncodeMovements(w io.Writer, movements []Movement) error {
	enc := json.NewEncoder(w)
	for _, m := range movements {
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encoding movement %d: %w", m.ID, err)
		}
	}
	return nil
}

// DecodeMovements reads a stream of movements, one JSON object per
// line. Blank lines are skipped. Order is preserved: the stream is the
// registration order.
func DecodeMovements(r io.Reader) ([]Movement, error) {
	var movements []Movement
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var m Movement
		if err := json.Unmarshal([]byte(text), &m); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		movements = append(movements, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return movements, nil
}
