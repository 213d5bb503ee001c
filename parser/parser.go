package parser

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/arithlang/arith/ast"
	"github.com/arithlang/arith/lexer"
)

// TokenEOF is handed out once the lexer's token stream is exhausted.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

// Parser reads the lexer's token stream and builds a single expression
// tree out of it. A single cursor with one token of lookahead drives the
// grammar; the first structural defect aborts the whole parse.
type Parser struct {
	lx *lexer.Lexer

	lastTok *lexer.Token
	nextTok *lexer.Token
}

// New creates a parser that reads source text from r.
func New(r io.Reader) *Parser {
	p := &Parser{}
	p.lx = lexer.New(r)
	return p
}

// Parse consumes the whole input and returns the root expression. Tokens
// left over after the root expression are malformed input.
func (p *Parser) Parse() (ast.Node, error) {
	errCh := make(chan error)

	go func() {
		errCh <- p.lx.Scan()
	}()

	root, err := p.parseExpression()

	if err == nil {
		if tok := p.next(); !tok.Is(lexer.TokenEOF) {
			root, err = nil, syntaxError(ErrUnexpectedToken, tok)
		}
	}

	// let the lexer run to completion
	for !p.next().Is(lexer.TokenEOF) {
	}

	if lexErr := <-errCh; lexErr != nil && err == nil {
		return nil, lexErr
	}

	if err != nil {
		return nil, err
	}
	return root, nil
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) read() *lexer.Token {
	tok, ok := <-p.lx.Tokens()
	if ok {
		return &tok
	}
	return TokenEOF
}

func (p *Parser) peek() *lexer.Token {
	if p.nextTok != nil {
		return p.nextTok
	}

	p.nextTok = p.read()
	return p.nextTok
}

func (p *Parser) next() *lexer.Token {
	if p.nextTok != nil {
		tok := p.nextTok
		p.lastTok, p.nextTok = tok, nil
		return tok
	}

	tok := p.read()
	p.lastTok, p.nextTok = tok, nil
	return tok
}

func (p *Parser) expect(tt lexer.TokenType) (*lexer.Token, error) {
	tok := p.next()
	if tok.Is(lexer.TokenEOF) {
		return nil, syntaxError(ErrUnexpectedEOF, tok)
	}
	if !tok.Is(tt) {
		return nil, syntaxError(ErrUnexpectedToken, tok)
	}
	return tok, nil
}

// expr := NUMBER | WORD | '(' 'let' '(' binding+ ')' expr ')' | '(' WORD expr* ')'
func (p *Parser) parseExpression() (ast.Node, error) {
	tok := p.next()

	switch tok.Type() {

	case lexer.TokenInteger:
		v, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, syntaxError(ErrUnexpectedToken, tok)
		}
		return ast.NewNumber(tok, v), nil

	case lexer.TokenWord:
		return ast.NewVar(tok, tok.Text()), nil

	case lexer.TokenOpenExpression:
		return p.parseForm(tok)

	case lexer.TokenEOF:
		return nil, syntaxError(ErrUnexpectedEOF, tok)

	default:
		return nil, syntaxError(ErrUnexpectedToken, tok)
	}
}

// parseForm dispatches on the head word right after an open parenthesis:
// the literal "let" selects the binding-list grammar, anything else is a
// generic call of any arity.
func (p *Parser) parseForm(open *lexer.Token) (ast.Node, error) {
	head, err := p.expect(lexer.TokenWord)
	if err != nil {
		return nil, err
	}

	if head.Text() == "let" {
		return p.parseLet(open)
	}

	args := []ast.Node{}
	for {
		tok := p.peek()

		if tok.Is(lexer.TokenCloseExpression) {
			p.next()
			return ast.NewCall(open, head.Text(), args), nil
		}
		if tok.Is(lexer.TokenEOF) {
			return nil, syntaxError(ErrUnexpectedEOF, tok)
		}

		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

func (p *Parser) parseLet(open *lexer.Token) (ast.Node, error) {
	if _, err := p.expect(lexer.TokenOpenExpression); err != nil {
		return nil, err
	}

	bindings := []*ast.Binding{}
	for {
		tok := p.peek()

		if tok.Is(lexer.TokenCloseExpression) {
			p.next()
			break
		}
		if tok.Is(lexer.TokenEOF) {
			return nil, syntaxError(ErrUnexpectedEOF, tok)
		}

		binding, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding)
	}

	// the grammar asks for at least one binding
	if len(bindings) == 0 {
		return nil, syntaxError(ErrUnexpectedToken, p.curr())
	}

	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.TokenCloseExpression); err != nil {
		return nil, err
	}

	return ast.NewLet(open, bindings, body), nil
}

// binding := '(' WORD expr ')'
func (p *Parser) parseBinding() (*ast.Binding, error) {
	open, err := p.expect(lexer.TokenOpenExpression)
	if err != nil {
		return nil, err
	}

	name, err := p.expect(lexer.TokenWord)
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.TokenCloseExpression); err != nil {
		return nil, err
	}

	return ast.NewBinding(open, name.Text(), value), nil
}

// Parse takes an array of bytes and returns the expression tree within it.
func Parse(in []byte) (ast.Node, error) {
	return New(bytes.NewReader(in)).Parse()
}

func syntaxError(err error, tok *lexer.Token) error {
	line, col := tok.Pos()
	if tok.Is(lexer.TokenEOF) {
		return fmt.Errorf("%w at %d:%d", err, line, col)
	}
	return fmt.Errorf("%w %q at %d:%d", err, tok.Text(), line, col)
}
