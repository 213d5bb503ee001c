package ast

import (
	"fmt"

	"github.com/arithlang/arith/lexer"
)

// Node is the interface shared by every expression variant. The set of
// variants is closed: Number, Call, Let, Var and Binding. Consumers are
// expected to type-switch over all of them.
type Node interface {
	Type() NodeType
	Token() *lexer.Token
}

// Number is a literal integer.
type Number struct {
	tok *lexer.Token

	Value int64
}

// NewNumber creates a node holding a literal integer
func NewNumber(tok *lexer.Token, v int64) *Number {
	return &Number{tok: tok, Value: v}
}

// Type returns the type of the node
func (n Number) Type() NodeType {
	return NodeTypeNumber
}

// Token returns the token associated to the node
func (n Number) Token() *lexer.Token {
	return n.tok
}

func (n Number) String() string {
	return fmt.Sprintf("(%v): %d", n.Type(), n.Value)
}

// Call is an operator name applied to an ordered sequence of argument
// expressions.
type Call struct {
	tok *lexer.Token

	Operator string
	Args     []Node
}

// NewCall creates a node holding an operator call
func NewCall(tok *lexer.Token, operator string, args []Node) *Call {
	if args == nil {
		args = []Node{}
	}
	return &Call{tok: tok, Operator: operator, Args: args}
}

// Type returns the type of the node
func (n Call) Type() NodeType {
	return NodeTypeCall
}

// Token returns the token associated to the node
func (n Call) Token() *lexer.Token {
	return n.tok
}

func (n Call) String() string {
	return fmt.Sprintf("(%v %q)[%d]", n.Type(), n.Operator, len(n.Args))
}

// Let is an ordered sequence of bindings followed by a body expression.
type Let struct {
	tok *lexer.Token

	Bindings []*Binding
	Body     Node
}

// NewLet creates a node holding a let form
func NewLet(tok *lexer.Token, bindings []*Binding, body Node) *Let {
	return &Let{tok: tok, Bindings: bindings, Body: body}
}

// Type returns the type of the node
func (n Let) Type() NodeType {
	return NodeTypeLet
}

// Token returns the token associated to the node
func (n Let) Token() *lexer.Token {
	return n.tok
}

func (n Let) String() string {
	return fmt.Sprintf("(%v)[%d]", n.Type(), len(n.Bindings))
}

// Var is a reference to a previously bound name.
type Var struct {
	tok *lexer.Token

	Name string
}

// NewVar creates a node holding a variable reference
func NewVar(tok *lexer.Token, name string) *Var {
	return &Var{tok: tok, Name: name}
}

// Type returns the type of the node
func (n Var) Type() NodeType {
	return NodeTypeVar
}

// Token returns the token associated to the node
func (n Var) Token() *lexer.Token {
	return n.tok
}

func (n Var) String() string {
	return fmt.Sprintf("(%v): %s", n.Type(), n.Name)
}

// Binding associates a name with a value expression. Bindings only appear
// inside a Let.
type Binding struct {
	tok *lexer.Token

	Name  string
	Value Node
}

// NewBinding creates a node associating a name with a value expression
func NewBinding(tok *lexer.Token, name string, value Node) *Binding {
	return &Binding{tok: tok, Name: name, Value: value}
}

// Type returns the type of the node
func (n Binding) Type() NodeType {
	return NodeTypeBinding
}

// Token returns the token associated to the node
func (n Binding) Token() *lexer.Token {
	return n.tok
}

func (n Binding) String() string {
	return fmt.Sprintf("(%v): %s", n.Type(), n.Name)
}

// Equal reports whether two nodes are structurally equal. Token positions
// are ignored, so nodes built by hand compare equal to parsed ones.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	switch a := a.(type) {
	case *Number:
		b, ok := b.(*Number)
		return ok && a.Value == b.Value

	case *Call:
		b, ok := b.(*Call)
		if !ok || a.Operator != b.Operator || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true

	case *Let:
		b, ok := b.(*Let)
		if !ok || len(a.Bindings) != len(b.Bindings) {
			return false
		}
		for i := range a.Bindings {
			if !Equal(a.Bindings[i], b.Bindings[i]) {
				return false
			}
		}
		return Equal(a.Body, b.Body)

	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name

	case *Binding:
		b, ok := b.(*Binding)
		return ok && a.Name == b.Name && Equal(a.Value, b.Value)

	default:
		panic("unknown node type")
	}
}
