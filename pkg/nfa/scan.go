package nfa

import "fmt"

// ScanConfig configures a scan over a whole sequence.
// The zero value scans with first-success matching and advances the cursor
// by one after every capture-less match.
type ScanConfig struct {
	// Mode selects first-success or longest matching at each attempt.
	Mode Mode

	// AdvancePastMatch moves the cursor to the end of a non-empty match that
	// recorded no captures, instead of by one position.
	AdvancePastMatch bool
}

// ScanMatch is one successful anchored match found during a scan.
type ScanMatch struct {
	// Start is the cursor position the match was anchored at.
	Start int
	MatchResult
}

// ScanAll scans symbols with the default configuration.
func (a *Automaton) ScanAll(symbols []Symbol) (MatchResult, error) {
	return a.Scan(symbols, ScanConfig{})
}

// Scan runs anchored matches at successive cursor positions and aggregates
// every match's consumed symbols and captured indexes into one result.
// Matched is true iff at least one attempt succeeded.
func (a *Automaton) Scan(symbols []Symbol, cfg ScanConfig) (MatchResult, error) {
	var total MatchResult
	err := a.ScanEach(symbols, cfg, func(m ScanMatch) bool {
		total.merge(m.MatchResult)
		return true
	})
	return total, err
}

// ScanEach is the streaming form of Scan: fn receives each match in order and
// returns false to stop the scan.
//
// After a match the cursor moves to the first captured index when that lies
// ahead of the cursor; otherwise it moves by one, so zero-width matches
// cannot stall the scan. A failed attempt also moves it by one.
func (a *Automaton) ScanEach(symbols []Symbol, cfg ScanConfig, fn func(ScanMatch) bool) error {
	if len(symbols) == 0 {
		return fmt.Errorf("empty symbol sequence: %w", ErrInvalidArgument)
	}

	cursor := 0
	for cursor < len(symbols) {
		r := a.matchAt(symbols, cursor, cfg.Mode)
		if !r.Matched {
			cursor++
			continue
		}
		if !fn(ScanMatch{Start: cursor, MatchResult: r}) {
			return nil
		}
		cursor = nextCursor(cursor, r, cfg)
	}
	return nil
}

func nextCursor(cursor int, r MatchResult, cfg ScanConfig) int {
	if len(r.CapturedIndexes) > 0 {
		if next := r.CapturedIndexes[0]; next > cursor {
			return next
		}
		return cursor + 1
	}
	if cfg.AdvancePastMatch && r.Len() > 0 {
		return cursor + r.Len()
	}
	return cursor + 1
}
