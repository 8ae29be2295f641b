package entities

// Span is a half-open byte range [Start, End) into a caller-supplied
// haystack. A span is only meaningful relative to the haystack of the find
// call that produced it; it is never persisted by the shim.
type Span struct {
	Start uint64
	End   uint64
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint64 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Shift returns the span translated by base bytes. It is used to convert a
// span relative to a search origin back to absolute haystack offsets.
func (s Span) Shift(base uint64) Span {
	return Span{Start: s.Start + base, End: s.End + base}
}
