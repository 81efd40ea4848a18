package pattern

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenType uint8

const (
	tokEOF tokenType = iota
	tokIdent
	tokInt
	tokDouble
	tokString
	tokUnderscore
	tokEllipsis
	tokLiteralWildcard // :int, :double, :string, :boolean, :lambda
	tokKind            // [conditional], [!discarded], ...
	tokTrue
	tokFalse
	tokNull
	tokThis
	tokNew
	tokInstanceof
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokDot
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokBang
	tokEq
	tokNe
	tokLt
	tokLe
	tokGt
	tokGe
	tokShl
	tokShr
	tokUShr
	tokInc
	tokDec
)

var keywords = map[string]tokenType{
	"true":       tokTrue,
	"false":      tokFalse,
	"null":       tokNull,
	"this":       tokThis,
	"new":        tokNew,
	"instanceof": tokInstanceof,
}

var kindSuffixes = []string{
	"[conditional]",
	"[!conditional]",
	"[discarded]",
	"[!discarded]",
}

var literalWildcards = []string{"int", "double", "string", "boolean", "lambda"}

// operators are tried longest first.
var operators = []struct {
	text string
	typ  tokenType
}{
	{">>>", tokUShr},
	{"...", tokEllipsis},
	{"==", tokEq},
	{"!=", tokNe},
	{"<=", tokLe},
	{">=", tokGe},
	{"<<", tokShl},
	{">>", tokShr},
	{"++", tokInc},
	{"--", tokDec},
	{"(", tokLParen},
	{")", tokRParen},
	{"[", tokLBracket},
	{"]", tokRBracket},
	{",", tokComma},
	{".", tokDot},
	{"+", tokPlus},
	{"-", tokMinus},
	{"*", tokStar},
	{"/", tokSlash},
	{"%", tokPercent},
	{"!", tokBang},
	{"<", tokLt},
	{">", tokGt},
}

type token struct {
	typ  tokenType
	text string
	// col is the 1-based column of the first character.
	col int
}

func (t token) end() int {
	return t.col + utf8.RuneCountInString(t.text)
}

func (t token) describe() string {
	if t.typ == tokEOF {
		return "end of pattern"
	}

	return fmt.Sprintf("%q", t.text)
}

type lexer struct {
	src     string
	start   int
	current int
}

// tokenize splits src into tokens, ending with tokEOF.
func tokenize(src string) ([]token, error) {
	l := &lexer{src: src}

	var out []token

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		out = append(out, tok)

		if tok.typ == tokEOF {
			return out, nil
		}
	}
}

func (l *lexer) column(offset int) int {
	return utf8.RuneCountInString(l.src[:offset]) + 1
}

func (l *lexer) emit(typ tokenType) token {
	return token{typ: typ, text: l.src[l.start:l.current], col: l.column(l.start)}
}

func (l *lexer) errorf(format string, args ...any) error {
	return &CompileError{
		Pattern: l.src,
		Column:  l.column(l.start),
		Token:   l.src[l.start:l.current],
		Msg:     fmt.Sprintf(format, args...),
	}
}

func (l *lexer) peekRune(offset int) rune {
	if l.current+offset >= len(l.src) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.current+offset:])

	return r
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

//nolint:cyclop // one branch per token class
func (l *lexer) next() (token, error) {
	for l.current < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.current:])
		if !unicode.IsSpace(r) {
			break
		}

		l.current += size
	}

	l.start = l.current

	if l.current >= len(l.src) {
		return token{typ: tokEOF, col: l.column(l.current)}, nil
	}

	rest := l.src[l.current:]
	r := l.peekRune(0)

	switch {
	case r == '"':
		return l.string()

	case r >= '0' && r <= '9', r == '.' && l.peekRune(1) >= '0' && l.peekRune(1) <= '9':
		return l.number()

	case isIdentStart(r):
		for l.current < len(l.src) {
			c, size := utf8.DecodeRuneInString(l.src[l.current:])
			if !isIdentPart(c) {
				break
			}

			l.current += size
		}

		text := l.src[l.start:l.current]
		if text == "_" {
			return l.emit(tokUnderscore), nil
		}

		if typ, ok := keywords[text]; ok {
			return l.emit(typ), nil
		}

		return l.emit(tokIdent), nil

	case r == ':':
		for _, w := range literalWildcards {
			if strings.HasPrefix(rest[1:], w) && !isIdentPart(runeAt(rest, 1+len(w))) {
				l.current += 1 + len(w)
				return l.emit(tokLiteralWildcard), nil
			}
		}

		l.current++

		return token{}, l.errorf("unknown literal wildcard")

	case r == '[':
		for _, s := range kindSuffixes {
			if strings.HasPrefix(rest, s) {
				l.current += len(s)
				return l.emit(tokKind), nil
			}
		}
	}

	for _, op := range operators {
		if strings.HasPrefix(rest, op.text) {
			l.current += len(op.text)
			return l.emit(op.typ), nil
		}
	}

	_, size := utf8.DecodeRuneInString(rest)
	l.current += size

	return token{}, l.errorf("unexpected character")
}

func runeAt(s string, offset int) rune {
	if offset >= len(s) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s[offset:])

	return r
}

func (l *lexer) string() (token, error) {
	l.current++

	for l.current < len(l.src) {
		switch l.src[l.current] {
		case '\\':
			l.current += 2
		case '"':
			l.current++
			return l.emit(tokString), nil
		default:
			l.current++
		}
	}

	l.current = len(l.src)

	return token{}, l.errorf("unterminated string literal")
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// number scans Java-style numeric literals. Whether the literal is integral
// is decided by the presence of a fraction, an exponent or a float suffix.
func (l *lexer) number() (token, error) {
	src := l.src
	double := false
	hex := strings.HasPrefix(src[l.current:], "0x") || strings.HasPrefix(src[l.current:], "0X")

	if hex {
		l.current += 2
	}

	digit := func(c byte) bool {
		if hex {
			return isHexDigit(c) || c == '_'
		}

		return (c >= '0' && c <= '9') || c == '_'
	}

	for l.current < len(src) {
		c := src[l.current]

		switch {
		case digit(c):
			l.current++
		case c == '.' && !double && l.current+1 < len(src) && src[l.current+1] == '.':
			// "1..." is an int followed by an ellipsis
			return l.emit(tokInt), nil
		case c == '.' && !double:
			double = true
			l.current++
		case (!hex && (c == 'e' || c == 'E')) || (hex && (c == 'p' || c == 'P')):
			double = true
			l.current++

			if l.current < len(src) && (src[l.current] == '+' || src[l.current] == '-') {
				l.current++
			}

			hex = false
		default:
			return l.finishNumber(double)
		}
	}

	return l.finishNumber(double)
}

func (l *lexer) finishNumber(double bool) (token, error) {
	if l.current < len(l.src) {
		switch l.src[l.current] {
		case 'l', 'L':
			if double {
				l.current++
				return token{}, l.errorf("malformed number")
			}

			l.current++
		case 'f', 'F', 'd', 'D':
			l.current++
			double = true
		}
	}

	if l.current < len(l.src) && isIdentPart(l.peekRune(0)) {
		l.current++
		return token{}, l.errorf("malformed number")
	}

	if double {
		return l.emit(tokDouble), nil
	}

	return l.emit(tokInt), nil
}
