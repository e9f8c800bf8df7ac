package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const minAddScript = `
# range minimum with range add
algebra min-add
size 6
values 0 0 0 0 0 0
apply [1,4) 1
apply 2 5 -2   # elements 2, 3 and 4
query [0,2)
set 4 -10
get 4
query [,)
`

func outputs(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Output
	}
	return out
}

func TestParseText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()

	s, err := Parse(strings.NewReader(minAddScript))
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(s.Algebra, "min-add"))
	qt.Check(t, qt.Equals(s.Size, 6))
	qt.Assert(t, qt.HasLen(s.Ops, 7))
	qt.Check(t, qt.Equals(s.Ops[0].Kind, OpValues))
	qt.Check(t, qt.DeepEquals(s.Ops[0].Values, []string{"0", "0", "0", "0", "0", "0"}))
	qt.Check(t, qt.Equals(s.Ops[1].Range, lazyseg.Span(1, 4)))
	qt.Check(t, qt.Equals(s.Ops[1].Action, "1"))
	qt.Check(t, qt.Equals(s.Ops[2].Range, lazyseg.Span(2, 5)))
	qt.Check(t, qt.Equals(s.Ops[2].Action, "-2"))
	qt.Check(t, qt.Equals(s.Ops[2].Line, 7))
	qt.Check(t, qt.Equals(s.Ops[4].String(), "set 4 -10"))
	qt.Check(t, qt.Equals(s.Ops[6].Range, lazyseg.All()))
}

func TestParseTextErrors(t *testing.T) {
	for input, want := range map[string]error{
		"apply [1,3)":       ErrSyntax,
		"size x":            ErrSyntax,
		"size 0":            ErrSyntax,
		"set 1":             ErrSyntax,
		"get one":           ErrSyntax,
		"build now":         ErrSyntax,
		"query [1,3":        ErrSyntax,
		"query 1 x":         ErrSyntax,
		"frobnicate 1 2":    ErrUnknownOp,
		"size 3\nflip 0 1":  ErrUnknownOp,
		"algebra min add":   ErrSyntax,
		"values 1\nquery":   ErrSyntax,
		"apply [1,2) 3 4 5": ErrSyntax,
	} {
		_, err := Parse(strings.NewReader(input))
		if !errors.Is(err, want) {
			t.Errorf("%q: expected %v, got %v", input, want, err)
		}
	}
}

func TestRunText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()

	s, err := Parse(strings.NewReader(minAddScript))
	qt.Assert(t, qt.IsNil(err))
	for _, v := range []Variant{Iterative, TopDown} {
		results, err := s.Run(Options{Variant: v})
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.DeepEquals(outputs(results), []string{"0", "-10", "-10"}), qt.Commentf("variant %s", v))
		qt.Check(t, qt.Equals(results[1].Op.Kind, OpGet))
	}
}

const sumAddYAML = `
algebra: sum-add
size: 5
values: [1, 2, 3, 4, 5]
ops:
  - {op: apply, range: "[1,3]", action: 10}
  - {op: query, range: [0, 5]}
  - {op: set, index: 2, value: 7}
  - {op: get, index: 2}
  - op: query
`

func TestParseYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()

	s, err := ParseYAML(strings.NewReader(sumAddYAML))
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(s.Algebra, "sum-add"))
	qt.Check(t, qt.Equals(s.Size, 5))
	qt.Assert(t, qt.HasLen(s.Ops, 6))
	qt.Check(t, qt.DeepEquals(s.Ops[0].Values, []string{"1", "2", "3", "4", "5"}))
	qt.Check(t, qt.Equals(s.Ops[1].Kind, OpApply))
	qt.Check(t, qt.Equals(s.Ops[1].Range, lazyseg.Closed(1, 3)))
	qt.Check(t, qt.Equals(s.Ops[1].Action, "10"))
	qt.Check(t, qt.Equals(s.Ops[1].Line, 6))
	qt.Check(t, qt.Equals(s.Ops[2].Range, lazyseg.Span(0, 5)))
	qt.Check(t, qt.Equals(s.Ops[3].Value, "7"))
	qt.Check(t, qt.Equals(s.Ops[5].Range, lazyseg.All()))

	results, err := s.Run(Options{})
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.DeepEquals(outputs(results), []string{"45", "7", "39"}))
}

func TestParseYAMLErrors(t *testing.T) {
	for input, want := range map[string]error{
		"ops:\n  - {op: frobnicate}":           ErrUnknownOp,
		"ops:\n  - {op: set, index: 1}":        ErrSyntax,
		"ops:\n  - {op: set, value: 1}":        ErrSyntax,
		"ops:\n  - op: get":                    ErrSyntax,
		"ops:\n  - {op: apply, range: [0, 1]}": ErrSyntax,
		"ops:\n  - {op: query, range: [0]}":    ErrSyntax,
		"size: [1":                             ErrSyntax,
	} {
		_, err := ParseYAML(strings.NewReader(input))
		if !errors.Is(err, want) {
			t.Errorf("%q: expected %v, got %v", input, want, err)
		}
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	s, err := ParseYAML(strings.NewReader(""))
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.HasLen(s.Ops, 0))
}

func TestRunAlgebras(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()

	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{"max-add", "values 3 1 4 1 5\napply [0,2] 2\nquery [0,3)\nquery [3,5)\nquery [2,2)",
			[]string{"6", "5", "-inf"}},
		{"min-add", "values 3 1 4\nquery [1,1)", []string{"+inf"}},
		{"min-assign", "values 3 1 4 1 5\napply [1,3] 9\nquery [0,4)\nget 1\nquery [4,]",
			[]string{"3", "9", "5"}},
		{"max-assign", "values 3 1 4 1 5\napply [,) 2\nset 0 6\nquery [,)\nquery [1,)",
			[]string{"6", "2"}},
		{"flip-runs", "values 0 0 1 1 1 0 1\nquery [,)\napply [0,2) 1\nquery [,)\nquery [5,6)",
			[]string{"zeros=2 ones=3", "zeros=1 ones=5", "zeros=1 ones=0"}},
		{"decimal-sum", "values 0.1 0.2 0.3\nquery [,)\napply [0,1] 0.05\nquery [,)\nget 2",
			[]string{"0.6", "0.7", "0.3"}},
	}
	for _, test := range tests {
		s, err := Parse(strings.NewReader(test.script))
		qt.Assert(t, qt.IsNil(err))
		for _, v := range []Variant{Iterative, TopDown} {
			results, err := s.Run(Options{Algebra: test.name, Size: 7, Variant: v})
			qt.Assert(t, qt.IsNil(err), qt.Commentf("%s on %s", test.name, v))
			qt.Check(t, qt.DeepEquals(outputs(results), test.want), qt.Commentf("%s on %s", test.name, v))
		}
	}
}

func TestRunErrors(t *testing.T) {
	s, err := Parse(strings.NewReader("values 1 2 x\nquery [,)"))
	qt.Assert(t, qt.IsNil(err))
	_, err = s.Run(Options{Size: 3})
	qt.Check(t, qt.ErrorIs(err, ErrUnknownAlgebra))
	_, err = s.Run(Options{Algebra: "median"})
	qt.Check(t, qt.ErrorIs(err, ErrUnknownAlgebra))
	_, err = s.Run(Options{Algebra: "sum-add"})
	qt.Check(t, qt.ErrorIs(err, ErrNoSize))
	_, err = s.Run(Options{Algebra: "sum-add", Size: 3})
	qt.Check(t, qt.ErrorIs(err, ErrValue))
	qt.Check(t, qt.ErrorMatches(err, `line 1: values: .*"x" is not an integer`))
	_, err = s.Run(Options{Algebra: "sum-add", Size: 3, Variant: "sideways"})
	qt.Check(t, qt.IsNotNil(err))

	s, err = Parse(strings.NewReader("get 0\nset 3 1\nget 1"))
	qt.Assert(t, qt.IsNil(err))
	results, err := s.Run(Options{Algebra: "min-add", Size: 3})
	qt.Check(t, qt.ErrorIs(err, lazyseg.ErrIndexOutOfRange))
	qt.Check(t, qt.ErrorMatches(err, `line 2: set: .*`))
	qt.Check(t, qt.DeepEquals(outputs(results), []string{"+inf"}))
}

func TestAlgebrasAreSorted(t *testing.T) {
	var names []string
	for _, a := range Algebras() {
		qt.Check(t, qt.Not(qt.Equals(a.Description, "")))
		names = append(names, a.Name)
	}
	qt.Check(t, qt.DeepEquals(names, []string{
		"decimal-sum", "flip-runs", "max-add", "max-assign", "min-add", "min-assign", "sum-add",
	}))
	_, err := Lookup("sum-add")
	qt.Check(t, qt.IsNil(err))
}
