package timeline

// Interval is a half-open range [Start, End) in seconds on a
// period-relative clock. End is nil while the interval is still open
// (player still on the field, period still running); every query that
// may touch an open interval takes a reference second to close it
// against.
type Interval struct {
	Start int
	End   *int
}

func Closed(start, end int) Interval {
	start = clampSeconds(start)
	end = clampSeconds(end)
	if end < start {
		end = start
	}
	return Interval{Start: start, End: &end}
}

func OpenFrom(start int) Interval {
	return Interval{Start: clampSeconds(start)}
}

func (iv Interval) IsOpen() bool {
	return iv.End == nil
}

// ClosedAt returns a closed copy of the interval, using ref as the end
// when the interval is open. Closing before Start yields an empty
// interval, never a negative one.
func (iv Interval) ClosedAt(ref int) Interval {
	if iv.End != nil {
		return Closed(iv.Start, *iv.End)
	}
	return Closed(iv.Start, ref)
}

func (iv Interval) Duration(ref int) int {
	closed := iv.ClosedAt(ref)
	return *closed.End - closed.Start
}

func (iv Interval) Overlaps(other Interval, ref int) bool {
	return iv.OverlapSeconds(other, ref) > 0
}

// OverlapSeconds is the length of the intersection of the two
// intervals, both closed at ref.
func (iv Interval) OverlapSeconds(other Interval, ref int) int {
	a := iv.ClosedAt(ref)
	b := other.ClosedAt(ref)

	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := *a.End
	if *b.End < end {
		end = *b.End
	}
	if end <= start {
		return 0
	}
	return end - start
}

// Subtract removes other from the interval and returns the zero to two
// closed intervals that remain. Both intervals are closed at ref first.
func (iv Interval) Subtract(other Interval, ref int) []Interval {
	a := iv.ClosedAt(ref)
	b := other.ClosedAt(ref)

	if *a.End <= a.Start {
		return nil
	}
	if *b.End <= a.Start || b.Start >= *a.End {
		return []Interval{a}
	}

	out := make([]Interval, 0, 2)
	if b.Start > a.Start {
		out = append(out, Closed(a.Start, b.Start))
	}
	if *b.End < *a.End {
		out = append(out, Closed(*b.End, *a.End))
	}
	return out
}

func clampSeconds(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
