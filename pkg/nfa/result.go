package nfa

// MatchResult describes the outcome of a query. A failed match is a
// MatchResult with Matched == false, never an error.
type MatchResult struct {
	// Matched is true if an accepting path was found.
	Matched bool

	// Consumed holds the accepted symbols in input order.
	Consumed []Symbol

	// CapturedIndexes holds the scan positions recorded by capture groups on
	// the accepting path. Positions are appended while the path unwinds, so a
	// group's exit index precedes its entry index and inner groups come
	// between the exit and entry of an enclosing group.
	CapturedIndexes []int
}

// Len returns the number of consumed symbols.
func (r MatchResult) Len() int {
	return len(r.Consumed)
}

func (r *MatchResult) merge(o MatchResult) {
	r.Matched = true
	r.Consumed = append(r.Consumed, o.Consumed...)
	r.CapturedIndexes = append(r.CapturedIndexes, o.CapturedIndexes...)
}
