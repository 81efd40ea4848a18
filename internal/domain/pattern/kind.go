package pattern

import "github.com/kmizu/JavaSee/internal/syntax"

// Kind restricts where in the tree a pattern may match.
type Kind uint8

const (
	// KindAny places no restriction.
	KindAny Kind = iota
	// KindConditional requires the node to be the test of an if, loop or
	// ternary. Negated, the operand of a `!` test also qualifies.
	KindConditional
	// KindDiscarded requires the node's value to be thrown away by an
	// expression statement. Negated, it requires the value to be used.
	KindDiscarded
)

// Pattern is a compiled top-level pattern: an expression shape and the
// context it must appear in.
type Pattern struct {
	Expr    Expr
	Kind    Kind
	Negated bool
	// Source is the text the pattern was compiled from.
	Source string
}

// Any wraps e without a context restriction.
func Any(e Expr) *Pattern {
	return &Pattern{Expr: e, Kind: KindAny, Source: e.String()}
}

// Conditional wraps e so it only matches in a condition.
func Conditional(e Expr, negated bool) *Pattern {
	p := &Pattern{Expr: e, Kind: KindConditional, Negated: negated}
	p.Source = p.String()

	return p
}

// Discarded wraps e so it only matches when its value is discarded (or, with
// negated, consumed).
func Discarded(e Expr, negated bool) *Pattern {
	p := &Pattern{Expr: e, Kind: KindDiscarded, Negated: negated}
	p.Source = p.String()

	return p
}

// Matches reports whether pair.Node has the pattern's shape and sits in the
// required context.
func (p *Pattern) Matches(pair syntax.Pair) bool {
	if p == nil || !Test(p.Expr, pair.Node) {
		return false
	}

	switch p.Kind {
	case KindConditional:
		return pair.InCondition(p.Negated)
	case KindDiscarded:
		if p.Negated {
			return pair.IsConsumed()
		}

		return pair.IsDiscarded()
	default:
		return true
	}
}

func (p *Pattern) String() string {
	if p == nil || p.Expr == nil {
		return ""
	}

	suffix := ""

	switch p.Kind {
	case KindConditional:
		suffix = "conditional"
	case KindDiscarded:
		suffix = "discarded"
	default:
		return p.Expr.String()
	}

	if p.Negated {
		suffix = "!" + suffix
	}

	return p.Expr.String() + " [" + suffix + "]"
}
