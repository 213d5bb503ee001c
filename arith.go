// Package arith wires the pipeline stages together: lexing, parsing,
// canonical printing, evaluation and constant folding for a small
// S-expression arithmetic language.
package arith

import (
	"io"
	"strings"

	"github.com/arithlang/arith/ast"
	"github.com/arithlang/arith/eval"
	"github.com/arithlang/arith/parser"
)

// Parse turns source text into an expression tree.
func Parse(src string) (ast.Node, error) {
	return parser.New(strings.NewReader(src)).Parse()
}

// Format returns the canonical text form of an expression tree.
func Format(node ast.Node) string {
	return string(ast.Encode(node))
}

// Eval parses and evaluates source text. The read primitive is wired to
// standard input and standard output.
func Eval(src string) (int64, error) {
	return EvalReader(src, nil, nil)
}

// EvalReader parses and evaluates source text with the read primitive
// wired to the given streams; nil streams select standard input and
// standard output.
func EvalReader(src string, in io.Reader, out io.Writer) (int64, error) {
	node, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return eval.New(in, out).Evaluate(node)
}

// PartialEval parses source text and folds its constant subexpressions,
// returning the reduced tree.
func PartialEval(src string) (ast.Node, error) {
	node, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return eval.PartialEval(node), nil
}
