package lazyseg

import (
	"fmt"
	"strconv"
	"strings"
)

// BoundKind tells how the value of a Bound is to be interpreted.
type BoundKind uint8

// Kinds of range bounds.
const (
	Unbounded BoundKind = iota // value is ignored
	Included                   // value belongs to the range
	Excluded                   // value does not belong to the range
)

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Value int
}

// Range is an index range with independently bounded ends. The zero value
// is the unbounded range.
type Range struct {
	Start, End Bound
}

// Span returns the half-open range [l, r).
func Span(l, r int) Range {
	return Range{Start: Bound{Included, l}, End: Bound{Excluded, r}}
}

// Closed returns the closed range [l, r].
func Closed(l, r int) Range {
	return Range{Start: Bound{Included, l}, End: Bound{Included, r}}
}

// From returns the range [l, ∞).
func From(l int) Range {
	return Range{Start: Bound{Included, l}}
}

// To returns the range [0, r).
func To(r int) Range {
	return Range{End: Bound{Excluded, r}}
}

// Through returns the range [0, r].
func Through(r int) Range {
	return Range{End: Bound{Included, r}}
}

// All returns the unbounded range.
func All() Range {
	return Range{}
}

// Point returns the range [i, i+1).
func Point(i int) Range {
	return Closed(i, i)
}

// Resolve normalizes r to a half-open interval [lo, hi) clipped to [0, n).
// If lo >= hi the range is empty.
func (r Range) Resolve(n int) (lo, hi int) {
	switch r.Start.Kind {
	case Included:
		lo = r.Start.Value
	case Excluded:
		lo = r.Start.Value
		if lo < n {
			lo++
		}
	}
	hi = n
	switch r.End.Kind {
	case Included:
		hi = r.End.Value
		if hi < n {
			hi++
		}
	case Excluded:
		hi = r.End.Value
	}
	lo = max(lo, 0)
	hi = min(hi, n)
	return lo, hi
}

// IsEmpty reports whether r contains no index of a sequence of length n.
func (r Range) IsEmpty(n int) bool {
	lo, hi := r.Resolve(n)
	return lo >= hi
}

// String renders r in interval notation, e.g. "[1,4)" or "[2,)".
func (r Range) String() string {
	var b strings.Builder
	switch r.Start.Kind {
	case Included, Unbounded:
		b.WriteByte('[')
	case Excluded:
		b.WriteByte('(')
	}
	if r.Start.Kind != Unbounded {
		b.WriteString(strconv.Itoa(r.Start.Value))
	}
	b.WriteByte(',')
	if r.End.Kind != Unbounded {
		b.WriteString(strconv.Itoa(r.End.Value))
	}
	switch r.End.Kind {
	case Included:
		b.WriteByte(']')
	default:
		b.WriteByte(')')
	}
	return b.String()
}

// ParseRange parses interval notation as produced by Range.String.
// An empty side is unbounded, regardless of its bracket.
//
//	[1,4)  (0,4]  [2,)  [,5]  [,)
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	opening, closing := s[0], s[len(s)-1]
	if (opening != '[' && opening != '(') || (closing != ']' && closing != ')') {
		return Range{}, fmt.Errorf("%w: %q lacks brackets", ErrInvalidRange, s)
	}
	left, right, found := strings.Cut(s[1:len(s)-1], ",")
	if !found {
		return Range{}, fmt.Errorf("%w: %q lacks a comma", ErrInvalidRange, s)
	}
	var r Range
	var err error
	if r.Start, err = parseBound(left, opening == '['); err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	if r.End, err = parseBound(right, closing == ']'); err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	return r, nil
}

func parseBound(s string, inclusive bool) (Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Bound{}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Bound{}, err
	}
	if inclusive {
		return Bound{Included, v}, nil
	}
	return Bound{Excluded, v}, nil
}
