package script

import "fmt"

// Options override the settings of a script.
type Options struct {
	Algebra string  // algebra name, overrides the script's
	Size    int     // tree size, overrides the script's if positive
	Variant Variant // tree variant, defaults to Iterative
}

// Result is the output of a single get or query operation.
type Result struct {
	Op     Op
	Output string
}

// Run executes the script on a new tree and collects the output of every
// get and query operation. Execution stops at the first failing operation;
// results collected up to that point are returned together with the error.
func (s *Script) Run(opts Options) ([]Result, error) {
	name := s.Algebra
	if opts.Algebra != "" {
		name = opts.Algebra
	}
	if name == "" {
		return nil, fmt.Errorf("%w: none given", ErrUnknownAlgebra)
	}
	alg, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	n := s.Size
	if opts.Size > 0 {
		n = opts.Size
	}
	if n <= 0 {
		return nil, ErrNoSize
	}
	m, err := alg.Open(opts.Variant, n)
	if err != nil {
		return nil, err
	}
	tracer().Infof("script: running %d operations, algebra %s, size %d", len(s.Ops), name, n)
	var results []Result
	for _, op := range s.Ops {
		tracer().Debugf("script: %s", op)
		out, hasOutput, err := exec(m, op)
		if err != nil {
			return results, fmt.Errorf("line %d: %s: %w", op.Line, op.Kind, err)
		}
		if hasOutput {
			results = append(results, Result{Op: op, Output: out})
		}
	}
	return results, nil
}

func exec(m Machine, op Op) (string, bool, error) {
	switch op.Kind {
	case OpSet:
		return "", false, m.Set(op.Index, op.Value)
	case OpValues:
		for i, v := range op.Values {
			if err := m.Set(i, v); err != nil {
				return "", false, err
			}
		}
		return "", false, nil
	case OpGet:
		v, err := m.Get(op.Index)
		return v, err == nil, err
	case OpBuild:
		m.Build()
		return "", false, nil
	case OpApply:
		return "", false, m.Apply(op.Range, op.Action)
	case OpQuery:
		return m.Query(op.Range), true, nil
	}
	return "", false, fmt.Errorf("%w: %s", ErrUnknownOp, op.Kind)
}
