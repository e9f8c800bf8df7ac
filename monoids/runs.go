package monoids

// Runs summarizes a sequence of bits by its longest runs of zeros and ones.
//
// Max0/Max1 are the longest runs anywhere, L0/L1 the runs starting at the
// left end, R0/R1 the runs ending at the right end, W the number of bits.
type Runs struct {
	Max0, Max1 int
	L0, L1     int
	R0, R1     int
	W          int
}

// Bit returns the summary of a single bit.
func Bit(b bool) Runs {
	if b {
		return Runs{Max1: 1, L1: 1, R1: 1, W: 1}
	}
	return Runs{Max0: 1, L0: 1, R0: 1, W: 1}
}

// Bits converts a string of '0' and '1' characters to leaf summaries.
// Any character other than '1' counts as zero.
func Bits(s string) []Runs {
	out := make([]Runs, len(s))
	for i := range len(s) {
		out[i] = Bit(s[i] == '1')
	}
	return out
}

// Flip is the action inverting every bit of a range if true.
type Flip bool

// FlipRuns is longest-run queries with range flips.
type FlipRuns struct{}

// Identity returns the summary of no bits.
func (FlipRuns) Identity() Runs { return Runs{} }

// Op concatenates two summaries.
func (FlipRuns) Op(x, y Runs) Runs {
	r := Runs{
		Max0: max(x.Max0, y.Max0, x.R0+y.L0),
		Max1: max(x.Max1, y.Max1, x.R1+y.L1),
		L0:   x.L0,
		L1:   x.L1,
		R0:   y.R0,
		R1:   y.R1,
		W:    x.W + y.W,
	}
	if x.L0 == x.W {
		r.L0 = x.L0 + y.L0
	}
	if x.L1 == x.W {
		r.L1 = x.L1 + y.L1
	}
	if y.R0 == y.W {
		r.R0 = x.R0 + y.R0
	}
	if y.R1 == y.W {
		r.R1 = x.R1 + y.R1
	}
	return r
}

// Noop returns false.
func (FlipRuns) Noop() Flip { return false }

// Apply exchanges the roles of zeros and ones if f is set.
func (FlipRuns) Apply(f Flip, x Runs) Runs {
	if !f {
		return x
	}
	x.Max0, x.Max1 = x.Max1, x.Max0
	x.L0, x.L1 = x.L1, x.L0
	x.R0, x.R1 = x.R1, x.R0
	return x
}

// Compose flips twice to nothing.
func (FlipRuns) Compose(newer, older Flip) Flip { return newer != older }
