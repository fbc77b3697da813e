package board

// removeAt returns seq without the element at i, plus that element.
// seq is never modified.
func removeAt(seq []Entry, i int) ([]Entry, Entry) {
	out := make([]Entry, 0, len(seq)-1)
	out = append(out, seq[:i]...)
	out = append(out, seq[i+1:]...)
	return out, seq[i]
}

// insertAt returns seq with e placed at i. seq is never modified.
func insertAt(seq []Entry, i int, e Entry) []Entry {
	out := make([]Entry, 0, len(seq)+1)
	out = append(out, seq[:i]...)
	out = append(out, e)
	out = append(out, seq[i:]...)
	return out
}

// moveWithin is remove-then-insert on a single sequence; to is an index into
// the sequence after removal. A to past the tail appends.
func moveWithin(seq []Entry, from, to int) []Entry {
	rest, e := removeAt(seq, from)
	return insertAt(rest, min(to, len(rest)), e)
}
