package domain

import (
	"fmt"

	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/kmizu/JavaSee/internal/syntax"
)

// Script is a parsed source file.
type Script struct {
	Path m.Path
	// Rel is the root-relative, slash separated path starting with "/".
	Rel  string
	File *syntax.File
}

// Outcome is one entry of an analysis result: an Issue, a ScriptError or a
// RuleError.
//
//sumtype:decl
type Outcome interface {
	outcome()
}

// Issue is a rule match.
type Issue struct {
	Script *Script
	Rule   *Rule
	Pair   syntax.Pair
}

// Span is the matched node's location.
func (i Issue) Span() syntax.Span {
	return i.Pair.Node.Span
}

// SourceLine is the text of the line the match starts on.
func (i Issue) SourceLine() string {
	if i.Script == nil || i.Script.File == nil {
		return ""
	}

	return i.Script.File.Line(i.Span().Start.Line)
}

// ScriptError reports a script that could not be loaded or parsed.
type ScriptError struct {
	Path m.Path
	Err  error
}

// RuleError reports a rule that could not be compiled.
type RuleError struct {
	RuleID string
	Err    error
}

func (Issue) outcome()       {}
func (ScriptError) outcome() {}
func (RuleError) outcome()   {}

// FatalError aborts a run. It wraps panics recovered from workers and other
// failures that leave no meaningful partial result.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %v", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Report is the ordered result of a run.
type Report struct {
	Outcomes []Outcome
	// Truncated is set when the run stopped at its issue limit.
	Truncated bool
}

// Issues returns the issues in order.
func (r Report) Issues() []Issue {
	var out []Issue

	for _, o := range r.Outcomes {
		if issue, ok := o.(Issue); ok {
			out = append(out, issue)
		}
	}

	return out
}

// ScriptErrors returns the script errors in order.
func (r Report) ScriptErrors() []ScriptError {
	var out []ScriptError

	for _, o := range r.Outcomes {
		if se, ok := o.(ScriptError); ok {
			out = append(out, se)
		}
	}

	return out
}

// RuleErrors returns the rule errors in order.
func (r Report) RuleErrors() []RuleError {
	var out []RuleError

	for _, o := range r.Outcomes {
		if re, ok := o.(RuleError); ok {
			out = append(out, re)
		}
	}

	return out
}

// HasIssues reports whether any rule matched.
func (r Report) HasIssues() bool {
	for _, o := range r.Outcomes {
		if _, ok := o.(Issue); ok {
			return true
		}
	}

	return false
}
