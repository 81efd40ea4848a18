package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kmizu/JavaSee/internal/adapter"
	"github.com/kmizu/JavaSee/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// issueLine formats an issue the way editors and grep-style tools expect:
// path:line:column, the source line and the rule summary.
func issueLine(issue domain.Issue, src string) string {
	start := issue.Span().Start

	return fmt.Sprintf("%s:%d:%d\t%s\t%s(%s)",
		issuePath(issue), start.Line, start.Column, src, issue.Rule.Summary(), issue.Rule.ID)
}

func issuePath(issue domain.Issue) string {
	if issue.Script == nil {
		return ""
	}

	return string(issue.Script.Path)
}

// highlightMatch styles the matched part of the issue's first line.
func highlightMatch(issue domain.Issue, style lipgloss.Style) string {
	line := issue.SourceLine()
	span := issue.Span()

	from := clamp(span.Start.Column-1, 0, len(line))
	to := len(line)

	if span.End.Line == span.Start.Line {
		to = clamp(span.End.Column, from, len(line))
	}

	if from == to {
		return line
	}

	return line[:from] + style.Render(line[from:to]) + line[to:]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// writeRuleSummary renders an issue count per rule.
func writeRuleSummary(w io.Writer, issues []domain.Issue) {
	counts := make(map[string]int)
	for _, issue := range issues {
		counts[issue.Rule.ID]++
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Issues"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, id := range ids {
		table.Append([]string{id, fmt.Sprintf("%d", counts[id])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Rules %d", len(ids)),
		fmt.Sprintf("%d", len(issues)),
	})

	table.Render()
	_, _ = fmt.Fprintf(w, "\n%s", tableBuffer.String())
}

// writeTestReport renders duplicates, broken rules and failing examples.
func writeTestReport(w io.Writer, report domain.TestReport) {
	for _, id := range report.Duplicates {
		_, _ = fmt.Fprintf(w, "duplicate rule id: %s\n", id)
	}

	for _, re := range report.RuleErrors {
		_, _ = fmt.Fprintf(w, "rule %s does not compile: %s\n", re.RuleID, ruleErrorMessage(re))
	}

	failures := report.Failures()

	if len(failures) > 0 {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Rule", "Example", "Kind", "Problem"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)

		for _, ex := range failures {
			table.Append([]string{ex.RuleID, oneLine(ex.Example), ex.Kind.String(), exampleProblem(ex)})
		}

		table.Render()
		_, _ = fmt.Fprintf(w, "\n%s\n", tableBuffer.String())
	}

	_, _ = fmt.Fprintf(w, "%d rules, %d examples, %d failures\n", report.Rules, len(report.Examples), len(failures))
}

func exampleProblem(ex domain.ExampleResult) string {
	switch {
	case ex.Err != nil:
		return fmt.Sprintf("does not parse: %v", ex.Err)
	case ex.Kind == domain.ExampleBefore:
		return "no match"
	default:
		return "unexpected match"
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ruleErrorMessage drops the rule id prefix RuleCompileError adds.
func ruleErrorMessage(re domain.RuleError) string {
	var compileErr *domain.RuleCompileError
	if errors.As(re.Err, &compileErr) {
		return compileErr.Err.Error()
	}

	return re.Err.Error()
}

// describeError renders a failure that ended the run.
func describeError(err error) string {
	var configErr *adapter.ConfigError
	if errors.As(err, &configErr) {
		return fmt.Sprintf("Failed to load configuration: %s\n%v\n", configErr.Path, err)
	}

	var fatal *domain.FatalError
	if errors.As(err, &fatal) {
		return fmt.Sprintf("Fatal error: %v\n", fatal.Err)
	}

	return fmt.Sprintf("Error: %v\n", err)
}
