package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmizu/JavaSee/internal/domain"
	"golang.org/x/term"
)

var (
	matchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI renders results for an interactive terminal. Reports that fit on the
// screen are printed with highlighting, longer ones open an issue browser.
type TUI struct {
	output    io.Writer
	errOutput io.Writer
	// interactive is false in tests so a browser is never started.
	interactive bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, errOutput io.Writer) *TUI {
	return &TUI{output: output, errOutput: errOutput, interactive: true}
}

// Start initializes the UI.
func (t *TUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {

}

// DisplayReport prints or browses the report's issues. Script and rule
// errors always go to the error stream.
func (t *TUI) DisplayReport(report domain.Report) error {
	for _, o := range report.Outcomes {
		switch o := o.(type) {
		case domain.ScriptError:
			_, _ = fmt.Fprintf(t.errOutput, "%s %s\n%v\n", errorStyle.Render("Failed to load script:"), o.Path, o.Err)
		case domain.RuleError:
			_, _ = fmt.Fprintf(t.errOutput, "%s %s\n%s\n", errorStyle.Render("Failed to compile rule:"), o.RuleID, ruleErrorMessage(o))
		}
	}

	model := newIssueModel(report.Issues(), report.Truncated)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !t.interactive || !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(t.output, model.summary())

	return err
}

// DisplayTestReport prints the example table with a colored verdict.
func (t *TUI) DisplayTestReport(report domain.TestReport) error {
	var b strings.Builder

	writeTestReport(&b, report)

	verdict := noticeStyle.Render("all examples pass")
	if report.Failed() {
		verdict = errorStyle.Render("rule examples need attention")
	}

	_, err := fmt.Fprintf(t.output, "%s%s\n", b.String(), verdict)

	return err
}

// DisplayError prints err in red on the error stream.
func (t *TUI) DisplayError(err error) error {
	msg := describeError(err)
	head, rest, _ := strings.Cut(msg, "\n")

	_, _ = fmt.Fprintf(t.errOutput, "%s\n%s", errorStyle.Render(head), rest)

	return nil
}

// DisplayNotice prints msg in green.
func (t *TUI) DisplayNotice(msg string) {
	_, _ = fmt.Fprintln(t.output, noticeStyle.Render(strings.TrimRight(msg, "\n")))
}
