package lazyseg_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/lazyseg/monoids"
	"github.com/npillmayer/lazyseg/topdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// scenario drives a tree with integer inputs and renders results as text.
type scenario interface {
	set(i int, v int64) error
	apply(r lazyseg.Range, f int64)
	query(r lazyseg.Range) string
	values() string
}

type harness[M, A any] struct {
	tree   lazyseg.RangeMonoid[M, A]
	value  func(int64) M
	action func(int64) A
	format func(M) string
}

func (h harness[M, A]) set(i int, v int64) error       { return h.tree.Set(i, h.value(v)) }
func (h harness[M, A]) apply(r lazyseg.Range, f int64) { h.tree.OperateRange(r, h.action(f)) }
func (h harness[M, A]) query(r lazyseg.Range) string   { return h.format(h.tree.Query(r)) }
func (h harness[M, A]) values() string {
	var parts []string
	for _, v := range h.tree.Values() {
		parts = append(parts, h.format(v))
	}
	return strings.Join(parts, " ")
}

func newTree[M, A any](variant string, alg lazyseg.Algebra[M, A], n int) (lazyseg.RangeMonoid[M, A], error) {
	cfg := lazyseg.Config[M, A]{Algebra: alg}
	if variant == "topdown" {
		return topdown.New(cfg, n)
	}
	return lazyseg.New(cfg, n)
}

func newScenario(variant, algebra string, n int) (scenario, error) {
	formatInt := func(v int64) string { return strconv.FormatInt(v, 10) }
	identity := func(v int64) int64 { return v }
	switch algebra {
	case "min-add":
		tree, err := newTree[int64, int64](variant, monoids.IntMinAdd(), n)
		return harness[int64, int64]{tree, identity, identity, formatInt}, err
	case "max-assign":
		tree, err := newTree[int64, monoids.Assignment[int64]](variant, monoids.IntMaxAssign(), n)
		return harness[int64, monoids.Assignment[int64]]{tree, identity, monoids.Assign[int64], formatInt}, err
	case "sum-add":
		tree, err := newTree[monoids.Sized[int64], int64](variant, monoids.SumAdd[int64]{}, n)
		format := func(s monoids.Sized[int64]) string { return formatInt(s.Sum) }
		return harness[monoids.Sized[int64], int64]{tree, monoids.Leaf[int64], identity, format}, err
	case "flip-runs":
		tree, err := newTree[monoids.Runs, monoids.Flip](variant, monoids.FlipRuns{}, n)
		bit := func(v int64) monoids.Runs { return monoids.Bit(v != 0) }
		flip := func(v int64) monoids.Flip { return monoids.Flip(v != 0) }
		format := func(r monoids.Runs) string {
			if r.W == 1 {
				return strconv.Itoa(r.Max1)
			}
			return fmt.Sprintf("zeros=%d ones=%d", r.Max0, r.Max1)
		}
		return harness[monoids.Runs, monoids.Flip]{tree, bit, flip, format}, err
	}
	return nil, fmt.Errorf("unknown algebra %q", algebra)
}

func scanRange(t *testing.T, d *datadriven.TestData) lazyseg.Range {
	if d.HasArg("range") {
		var s string
		d.ScanArgs(t, "range", &s)
		r, err := lazyseg.ParseRange(s)
		if err != nil {
			d.Fatalf(t, "%v", err)
		}
		return r
	}
	var l, r int
	d.ScanArgs(t, "l", &l)
	d.ScanArgs(t, "r", &r)
	return lazyseg.Span(l, r)
}

func runScenarios(t *testing.T, variant string) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()

	var sc scenario
	datadriven.RunTest(t, "testdata/scenarios", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "init":
			var algebra string
			d.ScanArgs(t, "algebra", &algebra)
			fields := strings.Fields(d.Input)
			var err error
			if sc, err = newScenario(variant, algebra, len(fields)); err != nil {
				return err.Error()
			}
			for i, f := range fields {
				v, err := strconv.ParseInt(f, 10, 64)
				if err != nil {
					d.Fatalf(t, "bad value %q: %v", f, err)
				}
				if err := sc.set(i, v); err != nil {
					return err.Error()
				}
			}
			return sc.values()
		case "set":
			var i int
			var v int64
			d.ScanArgs(t, "i", &i)
			d.ScanArgs(t, "v", &v)
			if err := sc.set(i, v); err != nil {
				return err.Error()
			}
			return "ok"
		case "apply":
			var f int64
			d.ScanArgs(t, "f", &f)
			sc.apply(scanRange(t, d), f)
			return "ok"
		case "values":
			return sc.values()
		case "query":
			return sc.query(scanRange(t, d))
		default:
			d.Fatalf(t, "unknown command %q", d.Cmd)
			return ""
		}
	})
}

func TestScenariosBottomUp(t *testing.T) {
	runScenarios(t, "bottomup")
}

func TestScenariosTopDown(t *testing.T) {
	runScenarios(t, "topdown")
}
