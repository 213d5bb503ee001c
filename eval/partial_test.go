package eval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithlang/arith/ast"
)

func TestPartialEvalFolding(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `42`,
			Out: `42`,
		},
		{
			In:  `(+ 2 (- 4 2))`,
			Out: `4`,
		},
		{
			In:  `(+ 20 1 15 (- 10 3))`,
			Out: `43`,
		},
		{
			// folded constant goes first
			In:  `(+ 1 (read) 2)`,
			Out: `(+ 3 (read))`,
		},
		{
			In:  `(+ (read) (read))`,
			Out: `(+ 0 (read) (read))`,
		},
		{
			// constant minuend, no residual subtrahends
			In:  `(- 10 3 2)`,
			Out: `5`,
		},
		{
			// constant minuend, residual subtrahends
			In:  `(- 10 (read) 3)`,
			Out: `(- 7 (read))`,
		},
		{
			// opaque minuend, no residual subtrahends
			In:  `(- (read) 3 2)`,
			Out: `(- (read) 5)`,
		},
		{
			// opaque minuend, residual subtrahends: constant total goes last
			In:  `(- (read) 3 (read) 2)`,
			Out: `(- (read) (read) 5)`,
		},
		{
			// nested folding happens before the outer split
			In:  `(- (read) (+ 1 2) (- 5 1))`,
			Out: `(- (read) 7)`,
		},
		{
			In:  `(- 100 (+ 3 4 (read)))`,
			Out: `(- 100 (+ 7 (read)))`,
		},
		{
			// unrecognized operators are opaque, their arguments included
			In:  `(frobnicate (+ 1 2))`,
			Out: `(frobnicate (+ 1 2))`,
		},
		{
			In:  `(+ 1 2 (frobnicate (+ 1 2)))`,
			Out: `(+ 3 (frobnicate (+ 1 2)))`,
		},
	}

	for i := range testCases {
		root := mustParse(t, testCases[i].In)
		folded := PartialEval(root)

		assert.Equal(t, testCases[i].Out, string(ast.Encode(folded)), "case %d", i)
	}
}

func TestPartialEvalOpacity(t *testing.T) {
	read := ast.NewCall(nil, "read", nil)

	folded := PartialEval(read)

	_, isNumber := folded.(*ast.Number)
	assert.False(t, isNumber)
	assert.True(t, ast.Equal(read, folded))
}

func TestPartialEvalIdempotence(t *testing.T) {
	testCases := []string{
		`42`,
		`(+ 2 (- 4 2))`,
		`(+ 1 (read) 2)`,
		`(+ (read) (read))`,
		`(- (read))`,
		`(- (read) 3 (read) 2)`,
		`(- 10 (read) 3)`,
		`(frobnicate (+ 1 2))`,
		`(let ((x 2)) x)`,
	}

	for i := range testCases {
		once := PartialEval(mustParse(t, testCases[i]))
		twice := PartialEval(once)

		assert.True(t, ast.Equal(once, twice), "case %d: %s vs %s", i, ast.Encode(once), ast.Encode(twice))
	}
}

func TestPartialEvalPreservesSemantics(t *testing.T) {
	// for read-free expressions over recognized operators the folded tree
	// evaluates to the same value as the original
	testCases := []string{
		`42`,
		`(+ 2 (- 4 2))`,
		`(+ 20 1 15 (- 10 3))`,
		`(- 100 3 4 5)`,
		`(- 5)`,
		`(+)`,
		`(+ 1 (- 2 (+ 3 4)) 5)`,
	}

	for i := range testCases {
		root := mustParse(t, testCases[i])

		direct, err := New(strings.NewReader(""), nil).Evaluate(root)
		require.NoError(t, err)

		folded, err := New(strings.NewReader(""), nil).Evaluate(PartialEval(root))
		require.NoError(t, err)

		assert.Equal(t, direct, folded, "case %d", i)
	}
}

func TestPartialEvalDoesNotMutate(t *testing.T) {
	root := mustParse(t, `(+ 1 (read) 2)`)
	before := string(ast.Encode(root))

	_ = PartialEval(root)

	assert.Equal(t, before, string(ast.Encode(root)))
}
