package script

import (
	"fmt"
	"io"

	"github.com/npillmayer/lazyseg"
	"gopkg.in/yaml.v3"
)

// yamlScript is the YAML representation of a script:
//
//	algebra: sum-add
//	size: 5
//	values: [1, 2, 3, 4, 5]
//	ops:
//	  - {op: apply, range: "[1,3]", action: 10}
//	  - {op: query, range: [0, 5]}
//	  - {op: set, index: 2, value: 7}
//	  - {op: get, index: 2}
//
// A range is either a string in interval notation or a pair [l, r] meaning
// [l,r). A missing range covers everything.
type yamlScript struct {
	Algebra string   `yaml:"algebra"`
	Size    int      `yaml:"size"`
	Values  []scalar `yaml:"values"`
	Ops     []yamlOp `yaml:"ops"`
}

type yamlOp struct {
	Op     string    `yaml:"op"`
	Index  *int      `yaml:"index"`
	Value  scalar    `yaml:"value"`
	Values []scalar  `yaml:"values"`
	Range  yamlRange `yaml:"range"`
	Action scalar    `yaml:"action"`
	line   int
}

func (o *yamlOp) UnmarshalYAML(n *yaml.Node) error {
	type plain yamlOp
	if err := n.Decode((*plain)(o)); err != nil {
		return err
	}
	o.line = n.Line
	return nil
}

// scalar keeps the literal text of any YAML scalar, so numbers are not
// rounded through float64 before an algebra reads them.
type scalar string

func (s *scalar) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", n.Line)
	}
	*s = scalar(n.Value)
	return nil
}

type yamlRange struct {
	lazyseg.Range
}

func (r *yamlRange) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		parsed, err := lazyseg.ParseRange(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		r.Range = parsed
		return nil
	case yaml.SequenceNode:
		var pair []int
		if err := n.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: range needs two bounds, has %d", n.Line, len(pair))
		}
		r.Range = lazyseg.Span(pair[0], pair[1])
		return nil
	}
	return fmt.Errorf("line %d: invalid range", n.Line)
}

func literals(values []scalar) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// ParseYAML reads a script in YAML format.
func ParseYAML(r io.Reader) (*Script, error) {
	var doc yamlScript
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return &Script{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	s := &Script{Algebra: doc.Algebra, Size: doc.Size}
	if len(doc.Values) > 0 {
		s.Ops = append(s.Ops, Op{Kind: OpValues, Values: literals(doc.Values)})
	}
	for _, y := range doc.Ops {
		kind, ok := opKind(y.Op)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownOp, y.line, y.Op)
		}
		op := Op{
			Kind:   kind,
			Line:   y.line,
			Value:  string(y.Value),
			Values: literals(y.Values),
			Range:  y.Range.Range,
			Action: string(y.Action),
		}
		if (kind == OpSet && op.Value == "") || (kind == OpApply && op.Action == "") {
			return nil, fmt.Errorf("%w: line %d: %s lacks its argument", ErrSyntax, y.line, kind)
		}
		if kind == OpSet || kind == OpGet {
			if y.Index == nil {
				return nil, fmt.Errorf("%w: line %d: %s lacks an index", ErrSyntax, y.line, kind)
			}
			op.Index = *y.Index
		}
		s.Ops = append(s.Ops, op)
	}
	tracer().Debugf("script: parsed %d operations from YAML", len(s.Ops))
	return s, nil
}
