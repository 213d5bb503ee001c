package eval

import (
	"github.com/arithlang/arith/ast"
)

// PartialEval folds constant subexpressions of node and returns the
// reduced tree. Effectful and unrecognized calls are left untouched, so
// the rewrite is semantics-preserving and free of side effects. It builds
// new nodes bottom-up and never modifies its input; worst case it returns
// the input unchanged.
func PartialEval(node ast.Node) ast.Node {
	switch node := node.(type) {

	case *ast.Call:
		switch node.Operator {
		case opAdd:
			return foldSum(node)
		case opSub:
			return foldDifference(node)
		}
		// read is effectful and unknown operators are opaque: neither is
		// folded nor recursed into
		return node

	default:
		// numbers are already fully reduced; let, var and binding nodes
		// are outside the call grammar this pass rewrites
		return node
	}
}

// foldSum reduces every argument, adds all constant results into one sum
// and keeps the rest in order. All-constant sums collapse to a number;
// otherwise the folded constant leads the rebuilt call.
func foldSum(call *ast.Call) ast.Node {
	var sum int64
	residual := []ast.Node{}

	for _, arg := range call.Args {
		switch folded := PartialEval(arg).(type) {
		case *ast.Number:
			sum += folded.Value
		default:
			residual = append(residual, folded)
		}
	}

	if len(residual) == 0 {
		return ast.NewNumber(call.Token(), sum)
	}

	args := append([]ast.Node{ast.NewNumber(nil, sum)}, residual...)
	return ast.NewCall(call.Token(), opAdd, args)
}

// foldDifference reduces the minuend and the subtrahends separately. The
// subtrahend constants collapse into one total which merges into the
// minuend when that folded to a number, and otherwise trails the residual
// subtrahends, keeping "minuend minus the sum of everything after it".
func foldDifference(call *ast.Call) ast.Node {
	if len(call.Args) == 0 {
		return call
	}

	minuend := PartialEval(call.Args[0])

	var sum int64
	residual := []ast.Node{}

	for _, arg := range call.Args[1:] {
		switch folded := PartialEval(arg).(type) {
		case *ast.Number:
			sum += folded.Value
		default:
			residual = append(residual, folded)
		}
	}

	if m, ok := minuend.(*ast.Number); ok {
		if len(residual) == 0 {
			return ast.NewNumber(call.Token(), m.Value-sum)
		}
		args := append([]ast.Node{ast.NewNumber(nil, m.Value-sum)}, residual...)
		return ast.NewCall(call.Token(), opSub, args)
	}

	if len(residual) == 0 {
		return ast.NewCall(call.Token(), opSub, []ast.Node{minuend, ast.NewNumber(nil, sum)})
	}

	args := append([]ast.Node{minuend}, residual...)
	args = append(args, ast.NewNumber(nil, sum))
	return ast.NewCall(call.Token(), opSub, args)
}
