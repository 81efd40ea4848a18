package pattern

import (
	"strings"

	"github.com/kmizu/JavaSee/internal/syntax"
)

type precedence int

const (
	precNone precedence = iota
	precEquality
	precComparison // < <= > >= instanceof
	precShift
	precTerm
	precFactor
	precUnary
	precPostfix // . [] ++ --
)

func infixPrecedence(t tokenType) precedence {
	switch t { //nolint:exhaustive
	case tokEq, tokNe:
		return precEquality
	case tokLt, tokLe, tokGt, tokGe, tokInstanceof:
		return precComparison
	case tokShl, tokShr, tokUShr:
		return precShift
	case tokPlus, tokMinus:
		return precTerm
	case tokStar, tokSlash, tokPercent:
		return precFactor
	case tokDot, tokLBracket, tokInc, tokDec:
		return precPostfix
	default:
		return precNone
	}
}

var binaryTokens = map[tokenType]syntax.Op{
	tokEq:      syntax.OpEq,
	tokNe:      syntax.OpNe,
	tokLt:      syntax.OpLt,
	tokLe:      syntax.OpLe,
	tokGt:      syntax.OpGt,
	tokGe:      syntax.OpGe,
	tokShl:     syntax.OpShl,
	tokShr:     syntax.OpShr,
	tokUShr:    syntax.OpUShr,
	tokPlus:    syntax.OpAdd,
	tokMinus:   syntax.OpSub,
	tokStar:    syntax.OpMul,
	tokSlash:   syntax.OpDiv,
	tokPercent: syntax.OpRem,
}

// Compile parses pattern text, including an optional trailing context
// suffix such as `[conditional]` or `[!discarded]`.
func Compile(src string) (*Pattern, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, tokens: tokens}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	pat := &Pattern{Expr: expr, Kind: KindAny, Source: strings.TrimSpace(src)}

	if tok := p.peek(); tok.typ == tokKind {
		p.advance()

		inner := strings.TrimSuffix(strings.TrimPrefix(tok.text, "["), "]")
		pat.Negated = strings.HasPrefix(inner, "!")

		switch strings.TrimPrefix(inner, "!") {
		case "conditional":
			pat.Kind = KindConditional
		case "discarded":
			pat.Kind = KindDiscarded
		}
	}

	if tok := p.peek(); tok.typ != tokEOF {
		return nil, p.errorAt(tok, "unexpected token")
	}

	return pat, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Pattern {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}

	return p
}

type parser struct {
	src    string
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}

	return p.tokens[p.pos+n]
}

func (p *parser) previous() token {
	if p.pos == 0 {
		return p.tokens[0]
	}

	return p.tokens[p.pos-1]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.typ != tokEOF {
		p.pos++
	}

	return tok
}

func (p *parser) check(t tokenType) bool {
	return p.peek().typ == t
}

func (p *parser) match(t tokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}

	return false
}

func (p *parser) consume(t tokenType, msg string) (token, error) {
	if p.check(t) {
		return p.advance(), nil
	}

	return token{}, p.errorAt(p.peek(), msg)
}

func (p *parser) errorAt(tok token, msg string) error {
	return &CompileError{Pattern: p.src, Column: tok.col, Token: tok.text, Msg: msg}
}

// spanFrom covers start up to the last consumed token.
func (p *parser) spanFrom(start int) at {
	return at{Loc: Location{Start: start, End: p.previous().end()}}
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parsePrecedence(precEquality)
}

func (p *parser) parsePrecedence(min precedence) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for min <= infixPrecedence(p.peek().typ) {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

//nolint:cyclop,funlen // one case per prefix token
func (p *parser) parsePrefix() (Expr, error) {
	tok := p.advance()
	start := tok.col

	switch tok.typ { //nolint:exhaustive
	case tokUnderscore:
		return &Wildcard{at: p.spanFrom(start)}, nil

	case tokIdent:
		if p.check(tokLParen) {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}

			return &FunctionCall{at: p.spanFrom(start), Name: tok.text, Args: args}, nil
		}

		return &Ident{at: p.spanFrom(start), Name: tok.text}, nil

	case tokInt:
		v, err := syntax.ParseIntLiteral(tok.text)
		if err != nil {
			return nil, p.errorAt(tok, "malformed integer literal")
		}

		return &IntLiteral{at: p.spanFrom(start), Value: v}, nil

	case tokDouble:
		v, err := syntax.ParseDoubleLiteral(tok.text)
		if err != nil {
			return nil, p.errorAt(tok, "malformed floating point literal")
		}

		return &DoubleLiteral{at: p.spanFrom(start), Value: v}, nil

	case tokString:
		s, err := syntax.UnquoteString(tok.text)
		if err != nil {
			return nil, p.errorAt(tok, "malformed string literal")
		}

		return &StringLiteral{at: p.spanFrom(start), Value: s}, nil

	case tokTrue, tokFalse:
		return &BooleanLiteral{at: p.spanFrom(start), Value: tok.typ == tokTrue}, nil

	case tokNull:
		return &NullLiteral{at: p.spanFrom(start)}, nil

	case tokThis:
		return &ThisLiteral{at: p.spanFrom(start)}, nil

	case tokLiteralWildcard:
		switch tok.text[1:] {
		case "int":
			return &LiteralWildcard{at: p.spanFrom(start), Literal: LiteralInt}, nil
		case "double":
			return &LiteralWildcard{at: p.spanFrom(start), Literal: LiteralDouble}, nil
		case "string":
			return &LiteralWildcard{at: p.spanFrom(start), Literal: LiteralString}, nil
		case "boolean":
			return &LiteralWildcard{at: p.spanFrom(start), Literal: LiteralBoolean}, nil
		default:
			return &Lambda{at: p.spanFrom(start)}, nil
		}

	case tokNew:
		name, err := p.parseTypeName()
		if err != nil {
			return nil, err
		}

		if !p.check(tokLParen) {
			return nil, p.errorAt(p.peek(), "expected ( after type name")
		}

		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}

		return &InstanceCreation{at: p.spanFrom(start), TypeName: name, Args: args}, nil

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(tokRParen, "expected )"); err != nil {
			return nil, err
		}

		return inner, nil

	case tokPlus, tokMinus, tokBang:
		operand, err := p.parsePrecedence(precUnary)
		if err != nil {
			return nil, err
		}

		op := map[tokenType]syntax.Op{tokPlus: syntax.OpPlus, tokMinus: syntax.OpMinus, tokBang: syntax.OpNot}[tok.typ]

		return &Unary{at: p.spanFrom(start), Op: op, Operand: operand}, nil

	case tokInc, tokDec:
		operand, err := p.parsePrecedence(precUnary)
		if err != nil {
			return nil, err
		}

		op := syntax.OpPreInc
		if tok.typ == tokDec {
			op = syntax.OpPreDec
		}

		return &Update{at: p.spanFrom(start), Op: op, Operand: operand}, nil

	case tokEllipsis:
		return nil, p.errorAt(tok, "... is only allowed as the only argument of a call")

	case tokEOF:
		return nil, p.errorAt(tok, "unexpected end of pattern")

	default:
		return nil, p.errorAt(tok, "expected expression")
	}
}

func (p *parser) parseInfix(left Expr) (Expr, error) {
	tok := p.advance()
	start := left.Location().Start

	switch tok.typ { //nolint:exhaustive
	case tokDot:
		name, err := p.consume(tokIdent, "expected member name after .")
		if err != nil {
			return nil, err
		}

		if p.check(tokLParen) {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}

			return &MethodCall{at: p.spanFrom(start), Receiver: left, Name: name.text, Args: args}, nil
		}

		return &FieldSelection{at: p.spanFrom(start), Receiver: left, Name: name.text}, nil

	case tokLBracket:
		index, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(tokRBracket, "expected ]"); err != nil {
			return nil, err
		}

		return &ArrayAccess{at: p.spanFrom(start), Array: left, Index: index}, nil

	case tokInc:
		return &Update{at: p.spanFrom(start), Op: syntax.OpPostInc, Operand: left}, nil

	case tokDec:
		return &Update{at: p.spanFrom(start), Op: syntax.OpPostDec, Operand: left}, nil

	case tokInstanceof:
		name, err := p.parseTypeName()
		if err != nil {
			return nil, err
		}

		return &InstanceOf{at: p.spanFrom(start), Target: left, TypeName: name}, nil
	}

	op, ok := binaryTokens[tok.typ]
	if !ok {
		return nil, p.errorAt(tok, "unexpected token")
	}

	right, err := p.parsePrecedence(infixPrecedence(tok.typ) + 1)
	if err != nil {
		return nil, err
	}

	return &Binary{at: p.spanFrom(start), Op: op, LHS: left, RHS: right}, nil
}

// parseArgs parses a parenthesised argument list; the current token is (.
func (p *parser) parseArgs() ([]Expr, error) {
	if _, err := p.consume(tokLParen, "expected ("); err != nil {
		return nil, err
	}

	if p.match(tokRParen) {
		return []Expr{}, nil
	}

	if p.check(tokEllipsis) && p.peekAt(1).typ == tokRParen {
		tok := p.advance()
		p.advance()

		return []Expr{&Rest{at: at{Loc: Location{Start: tok.col, End: tok.end()}}}}, nil
	}

	var args []Expr

	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		if p.match(tokComma) {
			continue
		}

		if _, err := p.consume(tokRParen, "expected , or )"); err != nil {
			return nil, err
		}

		return args, nil
	}
}

// parseTypeName reads a dotted name with optional type arguments and returns
// its simple name.
func (p *parser) parseTypeName() (string, error) {
	first, err := p.consume(tokIdent, "expected type name")
	if err != nil {
		return "", err
	}

	name := first.text

	for p.check(tokDot) && p.peekAt(1).typ == tokIdent {
		p.advance()
		name = p.advance().text
	}

	if p.check(tokLt) {
		if err := p.skipTypeArguments(); err != nil {
			return "", err
		}
	}

	return name, nil
}

func (p *parser) skipTypeArguments() error {
	depth := 0

	for {
		tok := p.advance()

		switch tok.typ { //nolint:exhaustive
		case tokLt:
			depth++
		case tokGt:
			depth--
		case tokShr:
			depth -= 2
		case tokUShr:
			depth -= 3
		case tokIdent, tokDot, tokComma:
		case tokEOF:
			return p.errorAt(tok, "unterminated type arguments")
		default:
			return p.errorAt(tok, "unexpected token in type arguments")
		}

		if depth < 0 {
			return p.errorAt(tok, "unbalanced type arguments")
		}

		if depth == 0 {
			return nil
		}
	}
}
