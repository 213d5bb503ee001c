package eval

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithlang/arith/ast"
	"github.com/arithlang/arith/parser"
)

func mustParse(t *testing.T, in string) ast.Node {
	t.Helper()

	root, err := parser.Parse([]byte(in))
	require.NoError(t, err)
	return root
}

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		In  string
		Out int64
	}{
		{
			In:  `42`,
			Out: 42,
		},
		{
			In:  `(+ 2 (- 4 2))`,
			Out: 4,
		},
		{
			In:  `(+ 20 1 15 (- 10 3))`,
			Out: 43,
		},
		{
			In:  `(+)`,
			Out: 0,
		},
		{
			In:  `(- 5)`,
			Out: 5,
		},
		{
			In:  `(- 100 3 4 5)`,
			Out: 88,
		},
		{
			// unrecognized operators are inert
			In:  `(frobnicate 1 2 3)`,
			Out: 0,
		},
		{
			In:  `(+ 5 (frobnicate 1 2 3))`,
			Out: 5,
		},
		{
			In:  `(let ((x 2)) x)`,
			Out: 2,
		},
		{
			In:  `(let ((x 2) (y 3)) (let ((z (+ x y))) (+ z 1)))`,
			Out: 6,
		},
		{
			// a later binding can read an earlier one from the same let
			In:  `(let ((x 2) (y (+ x 1))) y)`,
			Out: 3,
		},
		{
			// rebinding a name overwrites the mapping
			In:  `(let ((x 2) (x 5)) x)`,
			Out: 5,
		},
	}

	for i := range testCases {
		ev := New(strings.NewReader(""), nil)

		v, err := ev.Evaluate(mustParse(t, testCases[i].In))
		assert.NoError(t, err, "case %d", i)
		assert.Equal(t, testCases[i].Out, v, "case %d", i)
	}
}

func TestEvaluateDynamicExtent(t *testing.T) {
	// a binding from a let must stay visible to a sibling expression
	// evaluated after the let returns
	root := mustParse(t, `(+ (let ((x 2)) x) x)`)

	ev := New(strings.NewReader(""), nil)
	v, err := ev.Evaluate(root)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), v)
}

func TestEvaluateFreshEnvironmentPerCall(t *testing.T) {
	ev := New(strings.NewReader(""), nil)

	v, err := ev.Evaluate(mustParse(t, `(let ((x 2)) x)`))
	require.NoError(t, err)
	require.Equal(t, int64(2), v)

	// x must not leak into the next top-level call
	_, err = ev.Evaluate(mustParse(t, `x`))
	assert.True(t, errors.Is(err, ErrUnboundVariable), "got: %v", err)
}

func TestEvaluateRead(t *testing.T) {
	in := strings.NewReader("40\n 2 \n")
	out := &bytes.Buffer{}

	ev := New(in, out)

	v, err := ev.Evaluate(mustParse(t, `(+ (read) (read))`))
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)

	// one prompt per read, no trailing newline
	assert.Equal(t, "> > ", out.String())
}

func TestEvaluateReadOrder(t *testing.T) {
	// the minuend reads before any subtrahend
	in := strings.NewReader("100\n1\n2\n")
	ev := New(in, &bytes.Buffer{})

	v, err := ev.Evaluate(mustParse(t, `(- (read) (read) (read))`))
	assert.NoError(t, err)
	assert.Equal(t, int64(97), v)
}

func TestEvaluateReadThroughLet(t *testing.T) {
	in := strings.NewReader("5\n")
	out := &bytes.Buffer{}
	ev := New(in, out)

	v, err := ev.Evaluate(mustParse(t, `(let ((x (read))) (+ x x))`))
	assert.NoError(t, err)
	assert.Equal(t, int64(10), v)
	assert.Equal(t, "> ", out.String())
}

func TestEvaluateErrors(t *testing.T) {
	testCases := []struct {
		In    string
		Input string
		Err   error
	}{
		{
			In:  `q`,
			Err: ErrUnboundVariable,
		},
		{
			In:  `(+ 1 q)`,
			Err: ErrUnboundVariable,
		},
		{
			In:    `(read)`,
			Input: "not a number\n",
			Err:   ErrInvalidNumericInput,
		},
		{
			In:    `(read)`,
			Input: "",
			Err:   ErrInvalidNumericInput,
		},
		{
			In:  `(-)`,
			Err: ErrArityMismatch,
		},
		{
			In:    `(read 1)`,
			Input: "1\n",
			Err:   ErrArityMismatch,
		},
	}

	for i := range testCases {
		ev := New(strings.NewReader(testCases[i].Input), &bytes.Buffer{})

		_, err := ev.Evaluate(mustParse(t, testCases[i].In))
		assert.Error(t, err, "case %d", i)
		assert.True(t, errors.Is(err, testCases[i].Err), "case %d: %v", i, err)
	}
}

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()

	_, ok := env.Get("x")
	assert.False(t, ok)

	env.Set("x", 2)
	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(2), v)

	env.Set("x", 5)
	v, _ = env.Get("x")
	assert.Equal(t, int64(5), v)
}
