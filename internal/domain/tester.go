package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmizu/JavaSee/internal/adapter"
	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/kmizu/JavaSee/internal/syntax"
)

const exampleFile = "JavaSeeExample.java"

// ExampleKind tells before examples (must match) from after examples (must
// not match).
type ExampleKind int

// Available ExampleKind values.
const (
	ExampleBefore ExampleKind = iota
	ExampleAfter
)

func (k ExampleKind) String() string {
	if k == ExampleAfter {
		return "after"
	}

	return "before"
}

// ExampleResult is the verdict for one example snippet.
type ExampleResult struct {
	RuleID  string
	Kind    ExampleKind
	Example string
	Passed  bool
	// Err is set when the snippet does not parse.
	Err error
}

// TestReport summarizes `javasee test`.
type TestReport struct {
	Rules      int
	Examples   []ExampleResult
	Duplicates []string
	RuleErrors []RuleError
}

// Failures returns the examples that did not pass.
func (r TestReport) Failures() []ExampleResult {
	var out []ExampleResult

	for _, ex := range r.Examples {
		if !ex.Passed {
			out = append(out, ex)
		}
	}

	return out
}

// Failed reports whether anything in the configuration needs fixing.
func (r TestReport) Failed() bool {
	return len(r.Duplicates) > 0 || len(r.RuleErrors) > 0 || len(r.Failures()) > 0
}

// RuleTester checks rules against their own examples.
type RuleTester struct {
	java adapter.JavaFileAdapter
}

// NewRuleTester creates a RuleTester parsing snippets with java.
func NewRuleTester(java adapter.JavaFileAdapter) *RuleTester {
	return &RuleTester{java: java}
}

// Test compiles specs, reports duplicate ids and runs every example.
func (t *RuleTester) Test(ctx context.Context, specs []m.RuleSpec) TestReport {
	report := TestReport{Rules: len(specs), Duplicates: duplicateIDs(specs)}

	rules, failures := CompileRules(specs)
	report.RuleErrors = failures

	for _, rule := range rules {
		for _, ex := range rule.Before {
			report.Examples = append(report.Examples, t.run(ctx, rule, ExampleBefore, ex))
		}

		for _, ex := range rule.After {
			report.Examples = append(report.Examples, t.run(ctx, rule, ExampleAfter, ex))
		}
	}

	return report
}

func (t *RuleTester) run(ctx context.Context, rule *Rule, kind ExampleKind, example string) ExampleResult {
	res := ExampleResult{RuleID: rule.ID, Kind: kind, Example: example}

	file, err := t.java.Parse(ctx, exampleFile, []byte(wrapExample(example)))
	if err != nil {
		res.Err = fmt.Errorf("example does not parse: %w", err)
		return res
	}

	matched := false

	syntax.Walk(file.Root, func(pair syntax.Pair) bool {
		matched = rule.AppliesTo(pair)
		return !matched
	})

	res.Passed = matched == (kind == ExampleBefore)

	return res
}

// wrapExample places snippet in a method body as a statement.
func wrapExample(snippet string) string {
	body := strings.TrimSpace(snippet)
	if !strings.HasSuffix(body, ";") && !strings.HasSuffix(body, "}") {
		body += ";"
	}

	return "class JavaSeeExample {\n  void example() {\n    " + body + "\n  }\n}\n"
}

func duplicateIDs(specs []m.RuleSpec) []string {
	seen := make(map[string]int, len(specs))

	var dups []string

	for _, spec := range specs {
		seen[spec.ID]++
		if seen[spec.ID] == 2 {
			dups = append(dups, spec.ID)
		}
	}

	return dups
}
