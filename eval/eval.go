package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arithlang/arith/ast"
)

// Operators interpreted by the evaluator. Calls to any other operator are
// inert and reduce to placeholderValue.
const (
	opAdd  = "+"
	opSub  = "-"
	opRead = "read"
)

const placeholderValue = int64(0)

const readPrompt = "> "

// Evaluator reduces an expression tree to a single integer. The line
// source behind the read primitive is injectable so callers can supply
// deterministic input.
type Evaluator struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates an Evaluator. A nil reader or writer selects standard input
// and standard output.
func New(in io.Reader, out io.Writer) *Evaluator {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Evaluate reduces node to an integer using a fresh environment. The
// environment lives for exactly one call: sequential Evaluate calls don't
// share bindings.
func (ev *Evaluator) Evaluate(node ast.Node) (int64, error) {
	return ev.eval(node, NewEnvironment())
}

func (ev *Evaluator) eval(node ast.Node, env *Environment) (int64, error) {
	switch node := node.(type) {

	case *ast.Number:
		return node.Value, nil

	case *ast.Var:
		v, ok := env.Get(node.Name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnboundVariable, node.Name)
		}
		return v, nil

	case *ast.Let:
		// binding values land in the shared environment as soon as they
		// are computed, so later bindings can read earlier ones
		for _, b := range node.Bindings {
			v, err := ev.eval(b.Value, env)
			if err != nil {
				return 0, err
			}
			env.Set(b.Name, v)
		}
		return ev.eval(node.Body, env)

	case *ast.Call:
		return ev.evalCall(node, env)

	default:
		panic("unknown node type")
	}
}

func (ev *Evaluator) evalCall(call *ast.Call, env *Environment) (int64, error) {
	switch call.Operator {

	case opAdd:
		var sum int64
		for _, arg := range call.Args {
			v, err := ev.eval(arg, env)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil

	case opSub:
		if len(call.Args) == 0 {
			return 0, fmt.Errorf("%w: %q needs at least one argument", ErrArityMismatch, call.Operator)
		}
		result, err := ev.eval(call.Args[0], env)
		if err != nil {
			return 0, err
		}
		for _, arg := range call.Args[1:] {
			v, err := ev.eval(arg, env)
			if err != nil {
				return 0, err
			}
			result -= v
		}
		return result, nil

	case opRead:
		if len(call.Args) != 0 {
			return 0, fmt.Errorf("%w: %q takes no arguments", ErrArityMismatch, call.Operator)
		}
		return ev.read()

	default:
		return placeholderValue, nil
	}
}

// read prompts on the output stream and consumes one line from the input
// stream, expecting a base-10 integer.
func (ev *Evaluator) read() (int64, error) {
	fmt.Fprint(ev.out, readPrompt)

	if !ev.in.Scan() {
		if err := ev.in.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidNumericInput, err)
		}
		return 0, fmt.Errorf("%w: no input", ErrInvalidNumericInput)
	}

	line := strings.TrimSpace(ev.in.Text())
	v, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumericInput, line)
	}
	return v, nil
}
