package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/lazyseg"
)

// OpKind is the type of a script operation.
type OpKind int

// Kinds of operations.
const (
	OpSet    OpKind = iota // set element Index to Value
	OpValues               // set elements 0, 1, … to Values
	OpGet                  // output element Index
	OpBuild                // build the tree
	OpApply                // apply Action to Range
	OpQuery                // output product of Range
)

var opNames = map[OpKind]string{
	OpSet:    "set",
	OpValues: "values",
	OpGet:    "get",
	OpBuild:  "build",
	OpApply:  "apply",
	OpQuery:  "query",
}

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return "op(" + strconv.Itoa(int(k)) + ")"
}

func opKind(name string) (OpKind, bool) {
	for k, n := range opNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Op is a single operation of a script. Value, Values and Action are
// literals, to be read by an algebra.
type Op struct {
	Kind   OpKind
	Line   int
	Index  int
	Value  string
	Values []string
	Range  lazyseg.Range
	Action string
}

func (op Op) String() string {
	switch op.Kind {
	case OpSet:
		return fmt.Sprintf("set %d %s", op.Index, op.Value)
	case OpValues:
		return "values " + strings.Join(op.Values, " ")
	case OpGet:
		return fmt.Sprintf("get %d", op.Index)
	case OpApply:
		return fmt.Sprintf("apply %s %s", op.Range, op.Action)
	case OpQuery:
		return fmt.Sprintf("query %s", op.Range)
	}
	return op.Kind.String()
}

// Script is a parsed sequence of operations. Algebra and Size are optional
// and may be supplied when running the script.
type Script struct {
	Algebra string
	Size    int
	Ops     []Op
}

// Parse reads a script in text format.
func Parse(r io.Reader) (*Script, error) {
	s := &Script{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := s.parseLine(line, fields); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("script: parsed %d operations", len(s.Ops))
	return s, nil
}

func (s *Script) parseLine(line int, fields []string) error {
	keyword, args := fields[0], fields[1:]
	syntaxErr := func(format string, v ...any) error {
		return fmt.Errorf("%w: line %d: %s", ErrSyntax, line, fmt.Sprintf(format, v...))
	}
	switch keyword {
	case "algebra":
		if len(args) != 1 {
			return syntaxErr("algebra expects a name")
		}
		s.Algebra = args[0]
		return nil
	case "size":
		if len(args) != 1 {
			return syntaxErr("size expects one argument")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return syntaxErr("invalid size %q", args[0])
		}
		s.Size = n
		return nil
	}
	kind, ok := opKind(keyword)
	if !ok {
		return fmt.Errorf("%w: line %d: %q", ErrUnknownOp, line, keyword)
	}
	op := Op{Kind: kind, Line: line}
	switch kind {
	case OpSet:
		if len(args) != 2 {
			return syntaxErr("set expects index and value")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return syntaxErr("invalid index %q", args[0])
		}
		op.Index, op.Value = i, args[1]
	case OpValues:
		op.Values = args
	case OpGet:
		if len(args) != 1 {
			return syntaxErr("get expects an index")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return syntaxErr("invalid index %q", args[0])
		}
		op.Index = i
	case OpBuild:
		if len(args) != 0 {
			return syntaxErr("build takes no arguments")
		}
	case OpApply:
		if len(args) < 2 {
			return syntaxErr("apply expects a range and an action")
		}
		r, err := parseRange(args[:len(args)-1])
		if err != nil {
			return syntaxErr("%v", err)
		}
		op.Range, op.Action = r, args[len(args)-1]
	case OpQuery:
		r, err := parseRange(args)
		if err != nil {
			return syntaxErr("%v", err)
		}
		op.Range = r
	}
	s.Ops = append(s.Ops, op)
	return nil
}

// parseRange accepts either one interval token or two integers l r.
func parseRange(args []string) (lazyseg.Range, error) {
	switch len(args) {
	case 1:
		return lazyseg.ParseRange(args[0])
	case 2:
		l, err := strconv.Atoi(args[0])
		if err != nil {
			return lazyseg.Range{}, fmt.Errorf("invalid range start %q", args[0])
		}
		r, err := strconv.Atoi(args[1])
		if err != nil {
			return lazyseg.Range{}, fmt.Errorf("invalid range end %q", args[1])
		}
		return lazyseg.Span(l, r), nil
	}
	return lazyseg.Range{}, fmt.Errorf("expected a range, got %d arguments", len(args))
}
