package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kmizu/JavaSee/internal/adapter"
	adaptermocks "github.com/kmizu/JavaSee/internal/adapter/mocks"
	"github.com/kmizu/JavaSee/internal/domain"
	domainmocks "github.com/kmizu/JavaSee/internal/domain/mocks"
	"github.com/kmizu/JavaSee/internal/domain/pattern"
	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const exampleRoot = "../../examples"

func newLocalWorkflow(ui domain.UI) domain.Workflow {
	fs := adapter.NewLocalSourceFSAdapter()

	return domain.NewWorkflow(fs, adapter.NewLocalJavaFileAdapter(), adapter.NewLocalConfigAdapter(fs), ui, nil)
}

func expectQuietUI(ui *domainmocks.MockUI) {
	ui.EXPECT().Start().Return(nil)
	ui.EXPECT().Close().Return()
}

func TestWorkflow_Check_BasicExample(t *testing.T) {
	ui := domainmocks.NewMockUI(t)
	expectQuietUI(ui)

	var got domain.Report

	ui.EXPECT().DisplayReport(mock.Anything).Run(func(report domain.Report) {
		got = report
	}).Return(nil)

	err := newLocalWorkflow(ui).Check(context.Background(), domain.CheckArgs{
		Paths:  []m.Path{m.Path(filepath.Join(exampleRoot, "basic", "src"))},
		Config: m.Path(filepath.Join(exampleRoot, "basic", "javasee.yml")),
		Root:   m.Path(filepath.Join(exampleRoot, "basic")),
	})
	require.ErrorIs(t, err, domain.ErrIssuesFound)

	issues := got.Issues()
	require.Len(t, issues, 3)
	assert.Equal(t, "com.example.debug_print", issues[0].Rule.ID)
	assert.Equal(t, "/src/com/example/Main.java", issues[0].Script.Rel)
	assert.Equal(t, `        System.out.println("debug");`, issues[0].SourceLine())
	assert.Equal(t, "com.example.null_check", issues[1].Rule.ID)
	assert.Equal(t, "com.example.equals_null", issues[2].Rule.ID)
}

func TestWorkflow_Check_RuleFilter(t *testing.T) {
	ui := domainmocks.NewMockUI(t)
	expectQuietUI(ui)
	ui.EXPECT().DisplayReport(mock.MatchedBy(func(report domain.Report) bool {
		issues := report.Issues()
		return len(issues) == 1 && issues[0].Rule.ID == "com.example.null_check"
	})).Return(nil)

	err := newLocalWorkflow(ui).Check(context.Background(), domain.CheckArgs{
		Paths:  []m.Path{m.Path(filepath.Join(exampleRoot, "basic", "src"))},
		Config: m.Path(filepath.Join(exampleRoot, "basic", "javasee.yml")),
		Rule:   "com.example.null_check",
	})
	require.ErrorIs(t, err, domain.ErrIssuesFound)
}

func TestWorkflow_Check_UnknownRuleFilter(t *testing.T) {
	ui := domainmocks.NewMockUI(t)
	expectQuietUI(ui)
	ui.EXPECT().DisplayError(mock.Anything).Return(nil)

	err := newLocalWorkflow(ui).Check(context.Background(), domain.CheckArgs{
		Paths:  []m.Path{m.Path(filepath.Join(exampleRoot, "basic", "src"))},
		Config: m.Path(filepath.Join(exampleRoot, "basic", "javasee.yml")),
		Rule:   "org.nothing",
	})
	require.ErrorIs(t, err, domain.ErrNoRuleMatched)
}

func TestWorkflow_Check_ConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		class adapter.ConfigErrorClass
	}{
		{name: "not found", err: &adapter.ConfigError{Class: adapter.ConfigNotFound}, class: adapter.ConfigNotFound},
		{name: "schema", err: &adapter.ConfigError{Class: adapter.ConfigSchema}, class: adapter.ConfigSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := adaptermocks.NewMockSourceFSAdapter(t)
			java := adaptermocks.NewMockJavaFileAdapter(t)
			config := adaptermocks.NewMockConfigAdapter(t)
			ui := domainmocks.NewMockUI(t)

			expectQuietUI(ui)
			config.EXPECT().Load(m.Path("javasee.yml")).Return(nil, tt.err)
			ui.EXPECT().DisplayError(tt.err).Return(nil)

			err := domain.NewWorkflow(fs, java, config, ui, nil).Check(context.Background(), domain.CheckArgs{})

			var configErr *adapter.ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.class, configErr.Class)
		})
	}
}

func TestWorkflow_Check_WithMocks(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	java := adaptermocks.NewMockJavaFileAdapter(t)
	config := adaptermocks.NewMockConfigAdapter(t)
	ui := domainmocks.NewMockUI(t)

	src := []byte("class A { void m() { foo(); bar(); } }")
	parsed, err := adapter.NewLocalJavaFileAdapter().Parse(context.Background(), "/p/A.java", src)
	require.NoError(t, err)

	expectQuietUI(ui)
	config.EXPECT().Load(m.Path("custom.yml")).Return(&m.Config{
		Rules: []m.RuleSpec{
			{ID: "calls.foo", Message: "no foo", Patterns: []string{"foo()"}},
			{ID: "calls.broken", Message: "broken", Patterns: []string{"foo(a, ...)"}},
		},
	}, nil)
	fs.EXPECT().Get([]m.Path{"/p"}).Return([]m.Source{{Path: "/p/A.java"}, {Path: "/p/B.java"}}, nil)
	fs.EXPECT().RelPath(mock.Anything, mock.Anything).Return("A.java", nil)
	fs.EXPECT().ReadFile(m.Path("/p/A.java")).Return(src, nil)
	fs.EXPECT().ReadFile(m.Path("/p/B.java")).Return(nil, os.ErrPermission)
	java.EXPECT().Parse(mock.Anything, m.Path("/p/A.java"), src).Return(parsed, nil)

	ui.EXPECT().DisplayReport(mock.Anything).Run(func(report domain.Report) {
		require.Len(t, report.Outcomes, 3)

		ruleErr, ok := report.Outcomes[0].(domain.RuleError)
		require.True(t, ok)
		assert.Equal(t, "calls.broken", ruleErr.RuleID)

		var compileErr *pattern.CompileError
		assert.True(t, errors.As(ruleErr.Err, &compileErr))

		issue, ok := report.Outcomes[1].(domain.Issue)
		require.True(t, ok)
		assert.Equal(t, "calls.foo", issue.Rule.ID)
		assert.Equal(t, "/A.java", issue.Script.Rel)

		scriptErr, ok := report.Outcomes[2].(domain.ScriptError)
		require.True(t, ok)
		assert.ErrorIs(t, scriptErr.Err, os.ErrPermission)
	}).Return(nil)

	err = domain.NewWorkflow(fs, java, config, ui, nil).Check(context.Background(), domain.CheckArgs{
		Paths:   []m.Path{"/p"},
		Config:  "custom.yml",
		Root:    "/p",
		Workers: 2,
	})
	require.ErrorIs(t, err, domain.ErrIssuesFound)
}

func TestWorkflow_Check_NoIssues(t *testing.T) {
	ui := domainmocks.NewMockUI(t)
	expectQuietUI(ui)
	ui.EXPECT().DisplayReport(mock.MatchedBy(func(report domain.Report) bool {
		return !report.HasIssues()
	})).Return(nil)

	err := newLocalWorkflow(ui).Check(context.Background(), domain.CheckArgs{
		Paths:  []m.Path{m.Path(filepath.Join(exampleRoot, "basic", "src", "com", "example", "Util.java"))},
		Config: m.Path(filepath.Join(exampleRoot, "basic", "javasee.yml")),
	})
	require.NoError(t, err)
}

func TestWorkflow_Find(t *testing.T) {
	t.Run("reports matches without failing", func(t *testing.T) {
		ui := domainmocks.NewMockUI(t)
		expectQuietUI(ui)
		ui.EXPECT().DisplayReport(mock.MatchedBy(func(report domain.Report) bool {
			return len(report.Issues()) == 3 && !report.Truncated
		})).Return(nil)

		err := newLocalWorkflow(ui).Find(context.Background(), domain.FindArgs{
			Pattern: "_.println(...)",
			Paths:   []m.Path{m.Path(filepath.Join(exampleRoot, "basic", "src"))},
		})
		require.NoError(t, err)
	})

	t.Run("limit truncates", func(t *testing.T) {
		ui := domainmocks.NewMockUI(t)
		expectQuietUI(ui)
		ui.EXPECT().DisplayReport(mock.MatchedBy(func(report domain.Report) bool {
			return len(report.Issues()) == 1 && report.Truncated
		})).Return(nil)

		err := newLocalWorkflow(ui).Find(context.Background(), domain.FindArgs{
			Pattern: "_.println(...)",
			Paths:   []m.Path{m.Path(filepath.Join(exampleRoot, "basic", "src"))},
			Limit:   1,
			Workers: 4,
		})
		require.NoError(t, err)
	})

	t.Run("bad pattern", func(t *testing.T) {
		ui := domainmocks.NewMockUI(t)
		expectQuietUI(ui)
		ui.EXPECT().DisplayError(mock.Anything).Return(nil)

		err := newLocalWorkflow(ui).Find(context.Background(), domain.FindArgs{Pattern: "foo("})

		var compileErr *pattern.CompileError
		require.True(t, errors.As(err, &compileErr))
	})

	t.Run("broken scripts are reported", func(t *testing.T) {
		ui := domainmocks.NewMockUI(t)
		expectQuietUI(ui)
		ui.EXPECT().DisplayReport(mock.MatchedBy(func(report domain.Report) bool {
			errs := report.ScriptErrors()
			if len(errs) != 1 {
				return false
			}

			var parseErr *adapter.ParseError

			return errors.As(errs[0].Err, &parseErr)
		})).Return(nil)

		err := newLocalWorkflow(ui).Find(context.Background(), domain.FindArgs{
			Pattern: "_",
			Paths:   []m.Path{m.Path(filepath.Join(exampleRoot, "broken"))},
		})
		require.NoError(t, err)
	})
}

func TestWorkflow_Test(t *testing.T) {
	t.Run("example config passes", func(t *testing.T) {
		ui := domainmocks.NewMockUI(t)
		expectQuietUI(ui)
		ui.EXPECT().DisplayTestReport(mock.MatchedBy(func(report domain.TestReport) bool {
			return report.Rules == 3 && !report.Failed()
		})).Return(nil)

		err := newLocalWorkflow(ui).Test(context.Background(), domain.TestArgs{
			Config: m.Path(filepath.Join(exampleRoot, "basic", "javasee.yml")),
		})
		require.NoError(t, err)
	})

	t.Run("failing examples", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "javasee.yml")
		require.NoError(t, os.WriteFile(path, []byte(`rules:
  - id: a
    message: a
    pattern: foo()
    before: [bar()]
`), 0o600))

		ui := domainmocks.NewMockUI(t)
		expectQuietUI(ui)
		ui.EXPECT().DisplayTestReport(mock.Anything).Return(nil)

		err := newLocalWorkflow(ui).Test(context.Background(), domain.TestArgs{Config: m.Path(path)})
		require.ErrorIs(t, err, domain.ErrTestsFailed)
	})
}

func TestWorkflow_Init(t *testing.T) {
	t.Run("writes the template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "javasee.yml")

		ui := domainmocks.NewMockUI(t)
		expectQuietUI(ui)
		ui.EXPECT().DisplayNotice(mock.Anything).Return()

		err := newLocalWorkflow(ui).Init(context.Background(), domain.InitArgs{Config: m.Path(path)})
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		fs := adapter.NewLocalSourceFSAdapter()
		assert.Equal(t, adapter.NewLocalConfigAdapter(fs).Template(), content)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "javasee.yml")
		require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0o600))

		ui := domainmocks.NewMockUI(t)
		expectQuietUI(ui)
		ui.EXPECT().DisplayError(mock.Anything).Return(nil)

		err := newLocalWorkflow(ui).Init(context.Background(), domain.InitArgs{Config: m.Path(path)})
		require.ErrorIs(t, err, domain.ErrConfigExists)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "rules: []\n", string(content))
	})

	t.Run("force overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "javasee.yml")
		require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0o600))

		ui := domainmocks.NewMockUI(t)
		expectQuietUI(ui)
		ui.EXPECT().DisplayNotice(mock.Anything).Return()

		err := newLocalWorkflow(ui).Init(context.Background(), domain.InitArgs{Config: m.Path(path), Force: true})
		require.NoError(t, err)
	})
}
