package controller

import (
	"fmt"
	"strings"

	"github.com/kmizu/JavaSee/internal/domain"
	"github.com/spf13/cobra"
)

// SimpleUI writes plain text through the cobra command's streams. Issues go
// to stdout one per line, everything else to stderr.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayReport prints issues in order, with script and rule errors
// interleaved on stderr.
func (s *SimpleUI) DisplayReport(report domain.Report) error {
	for _, o := range report.Outcomes {
		switch o := o.(type) {
		case domain.Issue:
			s.printf("%s\n", issueLine(o, o.SourceLine()))
		case domain.ScriptError:
			s.errorf("Failed to load script: %s\n%v\n", o.Path, o.Err)
		case domain.RuleError:
			s.errorf("Failed to compile rule: %s\n%s\n", o.RuleID, ruleErrorMessage(o))
		}
	}

	issues := report.Issues()
	if len(issues) > 0 {
		writeRuleSummary(s.cmd.ErrOrStderr(), issues)
	}

	if report.Truncated {
		s.errorf("stopped after %d issues\n", len(issues))
	}

	return nil
}

// DisplayTestReport prints the example table.
func (s *SimpleUI) DisplayTestReport(report domain.TestReport) error {
	writeTestReport(s.cmd.OutOrStdout(), report)

	return nil
}

// DisplayError prints err to stderr.
func (s *SimpleUI) DisplayError(err error) error {
	s.errorf("%s", describeError(err))

	return nil
}

// DisplayNotice prints msg to stdout.
func (s *SimpleUI) DisplayNotice(msg string) {
	s.printf("%s\n", strings.TrimRight(msg, "\n"))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
