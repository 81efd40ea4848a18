package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmizu/JavaSee/internal/domain"
)

// issueItem adapts an issue to bubbles/list.
type issueItem struct {
	issue domain.Issue
}

func (i issueItem) FilterValue() string {
	return issuePath(i.issue) + " " + i.issue.Rule.ID + " " + i.issue.Rule.Summary()
}

func (i issueItem) location() string {
	start := i.issue.Span().Start

	return fmt.Sprintf("%s:%d:%d", issuePath(i.issue), start.Line, start.Column)
}

type issueDelegate struct{}

func (d issueDelegate) Height() int  { return 1 }
func (d issueDelegate) Spacing() int { return 0 }
func (d issueDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d issueDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(issueItem)
	if !ok {
		return
	}

	ruleWidth := 32
	locWidth := max(m.Width()-ruleWidth-2, 10)

	loc := truncateToWidth(it.location(), locWidth)
	rule := truncateToWidth(it.issue.Rule.ID, ruleWidth)

	if index == m.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		_, _ = fmt.Fprint(w, selected.Render(fmt.Sprintf("%-*s  %s", locWidth, loc, rule)))

		return
	}

	_, _ = fmt.Fprintf(w, "%s  %s",
		pathStyle.Width(locWidth).Render(loc),
		ruleStyle.Render(rule),
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// issueModel browses issues that do not fit on one screen.
type issueModel struct {
	width      int
	height     int
	issues     []domain.Issue
	truncated  bool
	issueList  list.Model
	showDetail bool
}

func newIssueModel(issues []domain.Issue, truncated bool) issueModel {
	items := make([]list.Item, 0, len(issues))
	for _, issue := range issues {
		items = append(items, issueItem{issue: issue})
	}

	issueList := list.New(items, issueDelegate{}, 80, 20)
	issueList.SetShowPagination(false)
	issueList.SetShowFilter(true)
	issueList.SetShowHelp(false)
	issueList.SetShowTitle(false)
	issueList.SetShowStatusBar(false)
	issueList.FilterInput.Placeholder = "Filter by path or rule…"

	return issueModel{
		issues:     issues,
		truncated:  truncated,
		issueList:  issueList,
		showDetail: true,
	}
}

// needsPagination reports whether the static view would scroll off screen.
// An unknown height never paginates.
func (m issueModel) needsPagination() bool {
	if m.height <= 0 {
		return false
	}

	return len(m.issues)+2 > m.height
}

func (m issueModel) Init() tea.Cmd {
	return nil
}

func (m issueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.issueList.SetWidth(m.width)

	case tea.KeyMsg:
		if m.issueList.FilterState() == list.Filtering {
			m.issueList, cmd = m.issueList.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", " ":
			m.showDetail = !m.showDetail
			return m, nil
		default:
			m.issueList, cmd = m.issueList.Update(msg)
			return m, cmd
		}
	}

	return m, cmd
}

func (m issueModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("JavaSee Issues")
	summary := summaryStyle.Render(m.summary())

	detail := ""
	if m.showDetail {
		detail = m.renderDetail()
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • enter detail • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderList(lipgloss.Height(detail)),
		detail,
		footer,
	)
}

func (m issueModel) renderList(detailHeight int) string {
	// title, summary, footer, border and header take nine lines
	listHeight := max(m.height-9-detailHeight, 5)
	listWidth := max(m.width-6, 20)

	m.issueList.SetHeight(listHeight)
	m.issueList.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render("Location / Rule")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.issueList.View()))
}

func (m issueModel) renderDetail() string {
	it, ok := m.issueList.SelectedItem().(issueItem)
	if !ok {
		return ""
	}

	lines := []string{
		pathStyle.Render(it.location()) + "  " + ruleStyle.Render(it.issue.Rule.ID),
		strings.TrimSpace(highlightMatch(it.issue, matchStyle)),
		it.issue.Rule.Message,
	}

	for _, j := range it.issue.Rule.Justifications {
		lines = append(lines, mutedStyle.Render("justified when: "+j.Source))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Margin(0, 1).
		Padding(0, 1).
		Width(max(m.width-4, 20)).
		Render(strings.Join(lines, "\n"))
}

func (m issueModel) summary() string {
	files := make(map[string]struct{})
	rules := make(map[string]struct{})

	for _, issue := range m.issues {
		files[issuePath(issue)] = struct{}{}
		rules[issue.Rule.ID] = struct{}{}
	}

	s := fmt.Sprintf("Issues: %d  •  Files: %d  •  Rules: %d", len(m.issues), len(files), len(rules))
	if m.truncated {
		s += "  •  stopped at the limit"
	}

	return s
}

// staticView lists every issue with its match highlighted.
func (m issueModel) staticView() string {
	if len(m.issues) == 0 {
		return noticeStyle.Render("No issues found") + "\n"
	}

	var b strings.Builder

	for _, issue := range m.issues {
		b.WriteString(issueLine(issue, highlightMatch(issue, matchStyle)))
		b.WriteByte('\n')
	}

	b.WriteString(mutedStyle.Render(m.summary()))
	b.WriteByte('\n')

	return b.String()
}
