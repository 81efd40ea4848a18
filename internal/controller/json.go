package controller

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/kmizu/JavaSee/internal/adapter"
	"github.com/kmizu/JavaSee/internal/domain"
)

// JSONUI writes one JSON document per call to output.
type JSONUI struct {
	output io.Writer
}

// NewJSONUI creates a new JSONUI.
func NewJSONUI(output io.Writer) *JSONUI {
	return &JSONUI{output: output}
}

type jsonMessage struct {
	Message string `json:"message"`
}

type jsonRule struct {
	ID             string   `json:"id"`
	Message        string   `json:"message"`
	Justifications []string `json:"justifications"`
}

type jsonLocation struct {
	Start [2]int `json:"start"`
	End   [2]int `json:"end"`
}

type jsonIssue struct {
	Script   string       `json:"script"`
	Rule     jsonRule     `json:"rule"`
	Location jsonLocation `json:"location"`
}

type jsonPathError struct {
	Path  string      `json:"path"`
	Error jsonMessage `json:"error"`
}

type jsonRuleError struct {
	Rule  string      `json:"rule"`
	Error jsonMessage `json:"error"`
}

type jsonReport struct {
	Issues     []jsonIssue     `json:"issues"`
	Errors     []jsonPathError `json:"errors"`
	RuleErrors []jsonRuleError `json:"rule_errors"`
	Truncated  bool            `json:"truncated,omitempty"`
}

type jsonExample struct {
	Rule    string `json:"rule"`
	Kind    string `json:"kind"`
	Example string `json:"example"`
	Passed  bool   `json:"passed"`
	Error   string `json:"error,omitempty"`
}

type jsonTestReport struct {
	Rules      int             `json:"rules"`
	Examples   []jsonExample   `json:"examples"`
	Duplicates []string        `json:"duplicates"`
	RuleErrors []jsonRuleError `json:"rule_errors"`
}

// Start initializes the UI.
func (j *JSONUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (j *JSONUI) Close() {

}

// DisplayReport writes issues, script errors and rule errors.
func (j *JSONUI) DisplayReport(report domain.Report) error {
	out := jsonReport{
		Issues:     []jsonIssue{},
		Errors:     []jsonPathError{},
		RuleErrors: []jsonRuleError{},
		Truncated:  report.Truncated,
	}

	for _, o := range report.Outcomes {
		switch o := o.(type) {
		case domain.Issue:
			out.Issues = append(out.Issues, toJSONIssue(o))
		case domain.ScriptError:
			out.Errors = append(out.Errors, jsonPathError{Path: string(o.Path), Error: jsonMessage{Message: o.Err.Error()}})
		case domain.RuleError:
			out.RuleErrors = append(out.RuleErrors, jsonRuleError{Rule: o.RuleID, Error: jsonMessage{Message: ruleErrorMessage(o)}})
		}
	}

	return j.encode(out)
}

func toJSONIssue(issue domain.Issue) jsonIssue {
	justifications := make([]string, 0, len(issue.Rule.Justifications))
	for _, p := range issue.Rule.Justifications {
		justifications = append(justifications, p.Source)
	}

	span := issue.Span()

	return jsonIssue{
		Script: issuePath(issue),
		Rule: jsonRule{
			ID:             issue.Rule.ID,
			Message:        issue.Rule.Message,
			Justifications: justifications,
		},
		Location: jsonLocation{
			Start: [2]int{span.Start.Line, span.Start.Column},
			End:   [2]int{span.End.Line, span.End.Column},
		},
	}
}

// DisplayTestReport writes every example verdict.
func (j *JSONUI) DisplayTestReport(report domain.TestReport) error {
	out := jsonTestReport{
		Rules:      report.Rules,
		Examples:   make([]jsonExample, 0, len(report.Examples)),
		Duplicates: append([]string{}, report.Duplicates...),
		RuleErrors: make([]jsonRuleError, 0, len(report.RuleErrors)),
	}

	for _, ex := range report.Examples {
		item := jsonExample{Rule: ex.RuleID, Kind: ex.Kind.String(), Example: ex.Example, Passed: ex.Passed}
		if ex.Err != nil {
			item.Error = ex.Err.Error()
		}

		out.Examples = append(out.Examples, item)
	}

	for _, re := range report.RuleErrors {
		out.RuleErrors = append(out.RuleErrors, jsonRuleError{Rule: re.RuleID, Error: jsonMessage{Message: ruleErrorMessage(re)}})
	}

	return j.encode(out)
}

// DisplayError writes config errors as config_errors and anything else as
// fatal_error.
func (j *JSONUI) DisplayError(err error) error {
	var configErr *adapter.ConfigError
	if errors.As(err, &configErr) {
		return j.encode(map[string][]jsonPathError{
			"config_errors": {{Path: string(configErr.Path), Error: jsonMessage{Message: configErr.Error()}}},
		})
	}

	msg := err.Error()

	var fatal *domain.FatalError
	if errors.As(err, &fatal) {
		msg = fatal.Err.Error()
	}

	return j.encode(map[string]jsonMessage{"fatal_error": {Message: msg}})
}

// DisplayNotice writes msg as {"notice": msg}.
func (j *JSONUI) DisplayNotice(msg string) {
	_ = j.encode(map[string]string{"notice": msg})
}

func (j *JSONUI) encode(v any) error {
	enc := json.NewEncoder(j.output)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
