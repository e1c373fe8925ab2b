// Package expr parses and evaluates the small f(t) language used for custom
// FDM channel signals.
//
// The grammar is fixed: numbers, the variable t, the constants pi and e, the
// functions sin and cos, unary + and -, the binary operators + - * / ^ and
// parentheses. Juxtaposition multiplies, so "2t", "3sin(t)" and "(t+1)(t-1)"
// are valid. Nothing is ever executed as code; Parse builds a typed tree that
// is evaluated per sample.
package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"CommLab/pkg/commerr"
)

var (
	ErrSyntax     = fmt.Errorf("%w: invalid expression", commerr.ErrConfiguration)
	ErrIdentifier = fmt.Errorf("%w: unknown identifier", commerr.ErrConfiguration)
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func lex(src string) ([]token, error) {
	var toks []token
	rs := []rune(src)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || r == '.':
			j := i
			for j < len(rs) && (unicode.IsDigit(rs[j]) || rs[j] == '.') {
				j++
			}
			// an exponent only binds when digits follow, so 2e is still 2·e
			if k := exponentEnd(rs, j); k > j {
				j = k
			}
			toks = append(toks, token{tokNumber, string(rs[i:j]), i})
			i = j
		case unicode.IsLetter(r):
			j := i
			for j < len(rs) && unicode.IsLetter(rs[j]) {
				j++
			}
			toks = append(toks, token{tokIdent, strings.ToLower(string(rs[i:j])), i})
			i = j
		case strings.ContainsRune("+-*/^", r):
			toks = append(toks, token{tokOp, string(r), i})
			i++
		case r == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(rs)}), nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) isOp(ops string) bool {
	tok := p.peek()
	return tok.kind == tokOp && strings.Contains(ops, tok.text)
}

// startsPrimary reports whether the next token can begin an implicit factor.
func (p *parser) startsPrimary() bool {
	switch p.peek().kind {
	case tokNumber, tokIdent, tokLParen:
		return true
	}
	return false
}

// Parse builds the expression tree of src.
func Parse(src string) (Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.peek().kind == tokEOF {
		return nil, fmt.Errorf("%w: empty", ErrSyntax)
	}
	n, err := p.sum()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, tok.text, tok.pos)
	}
	return n, nil
}

// MustParse panics on error. It is meant for literals.
func MustParse(src string) Node {
	n, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) sum() (Node, error) {
	l, err := p.product()
	if err != nil {
		return nil, err
	}
	for p.isOp("+-") {
		op := p.next().text[0]
		r, err := p.product()
		if err != nil {
			return nil, err
		}
		l = Binary{Op: op, L: l, R: r}
	}
	return l, nil
}

func (p *parser) product() (Node, error) {
	l, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		switch {
		case p.isOp("*/"):
			op = p.next().text[0]
		case p.startsPrimary():
			op = '*'
		default:
			return l, nil
		}
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		l = Binary{Op: op, L: l, R: r}
	}
}

func (p *parser) unary() (Node, error) {
	if p.isOp("+-") {
		op := p.next().text
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == "-" {
			return Neg{X: x}, nil
		}
		return x, nil
	}
	return p.power()
}

// power is right associative and binds tighter than unary minus on its left.
func (p *parser) power() (Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return Binary{Op: '^', L: base, R: exp}, nil
}

func (p *parser) primary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q at %d", ErrSyntax, tok.text, tok.pos)
		}
		return Number(v), nil
	case tokIdent:
		return p.ident(tok)
	case tokLParen:
		return p.group()
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, tok.text, tok.pos)
}

func (p *parser) group() (Node, error) {
	n, err := p.sum()
	if err != nil {
		return nil, err
	}
	if tok := p.next(); tok.kind != tokRParen {
		return nil, fmt.Errorf("%w: missing ) at %d", ErrSyntax, tok.pos)
	}
	return n, nil
}

func (p *parser) ident(tok token) (Node, error) {
	if tok.text == "t" {
		return Var{}, nil
	}
	if v, ok := constants[tok.text]; ok {
		return Number(v), nil
	}
	if _, ok := functions[tok.text]; ok {
		if open := p.next(); open.kind != tokLParen {
			return nil, fmt.Errorf("%w: %s needs (...) at %d", ErrSyntax, tok.text, open.pos)
		}
		arg, err := p.group()
		if err != nil {
			return nil, err
		}
		return Call{Func: tok.text, Arg: arg}, nil
	}
	return nil, fmt.Errorf("%w %q at %d", ErrIdentifier, tok.text, tok.pos)
}

// exponentEnd returns the index past an [eE][+-]?digits suffix starting at
// i, or i when there is none.
func exponentEnd(rs []rune, i int) int {
	if i >= len(rs) || (rs[i] != 'e' && rs[i] != 'E') {
		return i
	}
	j := i + 1
	if j < len(rs) && (rs[j] == '+' || rs[j] == '-') {
		j++
	}
	if j >= len(rs) || !unicode.IsDigit(rs[j]) {
		return i
	}
	for j < len(rs) && unicode.IsDigit(rs[j]) {
		j++
	}
	return j
}
