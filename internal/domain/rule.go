package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kmizu/JavaSee/internal/domain/pattern"
	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/kmizu/JavaSee/internal/syntax"
)

// ErrNoPatterns is returned when a rule has nothing to match.
var ErrNoPatterns = errors.New("rule has no patterns")

// Rule is a compiled rule. It is immutable once built and safe to share
// between workers.
type Rule struct {
	ID             string
	Message        string
	Patterns       []*pattern.Pattern
	Justifications []*pattern.Pattern
	Tags           []string
	Before         []string
	After          []string
}

// RuleCompileError ties a pattern error to the rule that owns it.
type RuleCompileError struct {
	RuleID string
	// Source is the pattern text that failed, empty when the rule itself is
	// malformed.
	Source string
	Err    error
}

func (e *RuleCompileError) Error() string {
	return fmt.Sprintf("rule %s: %v", e.RuleID, e.Err)
}

func (e *RuleCompileError) Unwrap() error {
	return e.Err
}

// CompileRule compiles every pattern and justification of spec. The first
// failure aborts the rule.
func CompileRule(spec m.RuleSpec) (*Rule, error) {
	if len(spec.Patterns) == 0 {
		return nil, &RuleCompileError{RuleID: spec.ID, Err: ErrNoPatterns}
	}

	patterns, err := compileAll(spec.ID, spec.Patterns)
	if err != nil {
		return nil, err
	}

	justifications, err := compileAll(spec.ID, spec.Justifications)
	if err != nil {
		return nil, err
	}

	return &Rule{
		ID:             spec.ID,
		Message:        spec.Message,
		Patterns:       patterns,
		Justifications: justifications,
		Tags:           spec.Tags,
		Before:         spec.Before,
		After:          spec.After,
	}, nil
}

func compileAll(ruleID string, sources []string) ([]*pattern.Pattern, error) {
	out := make([]*pattern.Pattern, 0, len(sources))

	for _, src := range sources {
		p, err := pattern.Compile(src)
		if err != nil {
			return nil, &RuleCompileError{RuleID: ruleID, Source: src, Err: err}
		}

		out = append(out, p)
	}

	return out, nil
}

// CompileRules compiles specs in order. Rules that fail are reported as
// RuleErrors and left out of the returned set.
func CompileRules(specs []m.RuleSpec) ([]*Rule, []RuleError) {
	rules := make([]*Rule, 0, len(specs))

	var failures []RuleError

	for _, spec := range specs {
		rule, err := CompileRule(spec)
		if err != nil {
			failures = append(failures, RuleError{RuleID: spec.ID, Err: err})
			continue
		}

		rules = append(rules, rule)
	}

	return rules, failures
}

// AppliesTo reports whether some pattern matches pair and no justification
// does.
func (r *Rule) AppliesTo(pair syntax.Pair) bool {
	matched := false

	for _, p := range r.Patterns {
		if p.Matches(pair) {
			matched = true
			break
		}
	}

	if !matched {
		return false
	}

	for _, j := range r.Justifications {
		if j.Matches(pair) {
			return false
		}
	}

	return true
}

// Summary is the first line of the message.
func (r *Rule) Summary() string {
	line, _, _ := strings.Cut(strings.TrimSpace(r.Message), "\n")

	return strings.TrimSpace(line)
}

// Selects reports whether id names this rule, either exactly or as a dotted
// prefix such as "com.example" for "com.example.debug_print".
func (r *Rule) Selects(id string) bool {
	return matchesRuleID(r.ID, id)
}

func matchesRuleID(ruleID, selector string) bool {
	return ruleID == selector || strings.HasPrefix(ruleID, selector+".")
}
