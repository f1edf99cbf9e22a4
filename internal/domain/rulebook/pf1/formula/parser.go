// Package formula parses roll formulas such as "min(10, @cl)d6 + 4" into an
// expression tree and rewrites the dice terms in them. Rewrites splice text by
// node span, so anything a rule does not touch comes back byte-for-byte.
package formula

import (
	"fmt"
	"regexp"

	"github.com/alecthomas/participle/v2/lexer"
)

var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
	{Name: "Var", Pattern: `@[a-zA-Z_][\w.]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Flavor", Pattern: `\[[^\]]*\]`},
	{Name: "Punct", Pattern: `\*\*|[-+*/%(),]`},
})

var (
	symbols    = formulaLexer.Symbols()
	tokNumber  = symbols["Number"]
	tokVar     = symbols["Var"]
	tokIdent   = symbols["Ident"]
	tokFlavor  = symbols["Flavor"]
	tokPunct   = symbols["Punct"]
	tokSpace   = symbols["Whitespace"]
	diceSuffix = regexp.MustCompile(`^[dD](\d+)$`)
)

// Node is one expression in a parsed formula
type Node interface {
	// Span is the [start, end) byte range of the node in the source
	Span() (int, int)
	// Children returns sub-expressions in source order
	Children() []Node
}

type pos struct{ start, end int }

func (p pos) Span() (int, int) { return p.start, p.end }

// Number is a numeric literal
type Number struct {
	pos
	Text string
}

func (*Number) Children() []Node { return nil }

// Var is a roll data reference such as @cl
type Var struct {
	pos
	Name string
}

func (*Var) Children() []Node { return nil }

// Call is a function application such as floor(x)
type Call struct {
	pos
	Name string
	Args []Node
}

func (c *Call) Children() []Node { return c.Args }

// Group is a parenthesized expression
type Group struct {
	pos
	Inner Node
}

func (g *Group) Children() []Node { return []Node{g.Inner} }

// Unary is a signed expression
type Unary struct {
	pos
	Op string
	X  Node
}

func (u *Unary) Children() []Node { return []Node{u.X} }

// Binary is an arithmetic operation
type Binary struct {
	pos
	Op   string
	X, Y Node
}

func (b *Binary) Children() []Node { return []Node{b.X, b.Y} }

// Dice is a count-d-faces roll
type Dice struct {
	pos
	Count Node
	Faces Node
}

func (d *Dice) Children() []Node { return []Node{d.Count, d.Faces} }

// Flavored is an expression followed by a flavor tag such as [fire]
type Flavored struct {
	pos
	X      Node
	Flavor string
}

func (f *Flavored) Children() []Node { return []Node{f.X} }

// Parse builds the expression tree for src
func Parse(src string) (Node, error) {
	lex, err := formulaLexer.LexString("", src)
	if err != nil {
		return nil, fmt.Errorf("lex formula: %w", err)
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("lex formula: %w", err)
	}

	toks := make([]lexer.Token, 0, len(all))
	for _, t := range all {
		if t.Type == tokSpace {
			continue
		}
		toks = append(toks, t)
	}

	p := &parser{toks: toks}
	root, err := p.additive()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		t := p.peek()
		return nil, fmt.Errorf("unexpected %q at offset %d", t.Value, t.Pos.Offset)
	}
	return root, nil
}

type parser struct {
	toks []lexer.Token
	i    int
}

func (p *parser) peek() lexer.Token {
	if p.i >= len(p.toks) {
		return lexer.EOFToken(lexer.Position{})
	}
	return p.toks[p.i]
}

func (p *parser) atEOF() bool {
	return p.i >= len(p.toks) || p.toks[p.i].EOF()
}

func (p *parser) next() lexer.Token {
	t := p.peek()
	if !p.atEOF() {
		p.i++
	}
	return t
}

func (p *parser) isPunct(values ...string) bool {
	t := p.peek()
	if t.Type != tokPunct {
		return false
	}
	for _, v := range values {
		if t.Value == v {
			return true
		}
	}
	return false
}

func (p *parser) expectPunct(v string) (lexer.Token, error) {
	if !p.isPunct(v) {
		t := p.peek()
		return t, fmt.Errorf("expected %q at offset %d, got %q", v, t.Pos.Offset, t.Value)
	}
	return p.next(), nil
}

func tokenEnd(t lexer.Token) int {
	return t.Pos.Offset + len(t.Value)
}

func spanOf(n Node) pos {
	s, e := n.Span()
	return pos{s, e}
}

func (p *parser) additive() (Node, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.isPunct("+", "-") {
		op := p.next().Value
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{pos: pos{spanOf(left).start, spanOf(right).end}, Op: op, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) multiplicative() (Node, error) {
	left, err := p.power()
	if err != nil {
		return nil, err
	}
	for p.isPunct("*", "/", "%") {
		op := p.next().Value
		right, err := p.power()
		if err != nil {
			return nil, err
		}
		left = &Binary{pos: pos{spanOf(left).start, spanOf(right).end}, Op: op, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) power() (Node, error) {
	base, err := p.unary()
	if err != nil {
		return nil, err
	}
	if p.isPunct("**") {
		p.next()
		exp, err := p.power()
		if err != nil {
			return nil, err
		}
		return &Binary{pos: pos{spanOf(base).start, spanOf(exp).end}, Op: "**", X: base, Y: exp}, nil
	}
	return base, nil
}

func (p *parser) unary() (Node, error) {
	if p.isPunct("+", "-") {
		t := p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{pos: pos{t.Pos.Offset, spanOf(x).end}, Op: t.Value, X: x}, nil
	}
	return p.postfix()
}

func (p *parser) postfix() (Node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()
		end := spanOf(n).end
		switch {
		case t.Type == tokIdent && t.Pos.Offset == end && diceSuffix.MatchString(t.Value):
			// "2d6": the faces live inside the identifier token
			p.next()
			faces := &Number{pos: pos{t.Pos.Offset + 1, tokenEnd(t)}, Text: t.Value[1:]}
			n = &Dice{pos: pos{spanOf(n).start, tokenEnd(t)}, Count: n, Faces: faces}
		case t.Type == tokIdent && t.Pos.Offset == end && (t.Value == "d" || t.Value == "D") && p.facesFollow(t):
			p.next()
			faces, err := p.primary()
			if err != nil {
				return nil, err
			}
			n = &Dice{pos: pos{spanOf(n).start, spanOf(faces).end}, Count: n, Faces: faces}
		case t.Type == tokFlavor:
			p.next()
			n = &Flavored{pos: pos{spanOf(n).start, tokenEnd(t)}, X: n, Flavor: t.Value}
		default:
			return n, nil
		}
	}
}

// facesFollow reports whether a bare "d" is directly followed by a number or group
func (p *parser) facesFollow(d lexer.Token) bool {
	if p.i+1 >= len(p.toks) {
		return false
	}
	t := p.toks[p.i+1]
	if t.Pos.Offset != tokenEnd(d) {
		return false
	}
	return t.Type == tokNumber || (t.Type == tokPunct && t.Value == "(")
}

func (p *parser) primary() (Node, error) {
	t := p.peek()
	switch {
	case t.EOF():
		return nil, fmt.Errorf("unexpected end of formula")
	case t.Type == tokNumber:
		p.next()
		return &Number{pos: pos{t.Pos.Offset, tokenEnd(t)}, Text: t.Value}, nil
	case t.Type == tokVar:
		p.next()
		return &Var{pos: pos{t.Pos.Offset, tokenEnd(t)}, Name: t.Value}, nil
	case t.Type == tokIdent:
		p.next()
		if !p.isPunct("(") {
			return nil, fmt.Errorf("unexpected identifier %q at offset %d", t.Value, t.Pos.Offset)
		}
		p.next()
		call := &Call{Name: t.Value}
		if !p.isPunct(")") {
			for {
				arg, err := p.additive()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
				if !p.isPunct(",") {
					break
				}
				p.next()
			}
		}
		closing, err := p.expectPunct(")")
		if err != nil {
			return nil, err
		}
		call.pos = pos{t.Pos.Offset, tokenEnd(closing)}
		return call, nil
	case t.Type == tokPunct && t.Value == "(":
		p.next()
		inner, err := p.additive()
		if err != nil {
			return nil, err
		}
		closing, err := p.expectPunct(")")
		if err != nil {
			return nil, err
		}
		return &Group{pos: pos{t.Pos.Offset, tokenEnd(closing)}, Inner: inner}, nil
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", t.Value, t.Pos.Offset)
	}
}

// Walk visits n and every descendant, parents first
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// rewriteFunc returns replacement text for a node, or false to keep its source text
type rewriteFunc func(n Node, render func(Node) string) (string, bool)

// render reproduces src with rewritten nodes spliced in
func render(src string, root Node, rw rewriteFunc) string {
	var rec func(Node) string
	rec = func(n Node) string {
		if rw != nil {
			if s, ok := rw(n, rec); ok {
				return s
			}
		}
		start, end := n.Span()
		cursor := start
		out := make([]byte, 0, end-start)
		for _, c := range n.Children() {
			cs, ce := c.Span()
			out = append(out, src[cursor:cs]...)
			out = append(out, rec(c)...)
			cursor = ce
		}
		out = append(out, src[cursor:end]...)
		return string(out)
	}

	start, end := root.Span()
	return src[:start] + rec(root) + src[end:]
}
