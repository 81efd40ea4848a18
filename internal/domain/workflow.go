// Package domain holds the use cases of JavaSee: compiling rules, analyzing
// scripts and checking rule examples.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kmizu/JavaSee/internal/adapter"
	"github.com/kmizu/JavaSee/internal/domain/pattern"
	m "github.com/kmizu/JavaSee/internal/model"
)

// Sentinel results of the workflows. The CLI maps them to exit statuses.
var (
	ErrIssuesFound   = errors.New("issues found")
	ErrTestsFailed   = errors.New("rule tests failed")
	ErrConfigExists  = errors.New("configuration file already exists")
	ErrNoRuleMatched = errors.New("no rule matches the filter")
)

// DefaultConfig is the configuration file used when none is given.
const DefaultConfig = "javasee.yml"

// findRuleID names the ad-hoc rule built by Find.
const findRuleID = "find"

// CheckArgs are the inputs of Check.
type CheckArgs struct {
	Paths  []m.Path
	Config m.Path
	// Root is what check paths are relative to. Defaults to the working
	// directory.
	Root m.Path
	// Rule restricts the run to one rule id or id prefix.
	Rule    string
	Workers int
}

// FindArgs are the inputs of Find.
type FindArgs struct {
	Pattern string
	Paths   []m.Path
	Root    m.Path
	Workers int
	// Limit stops after that many matches. Zero means no limit.
	Limit int
}

// TestArgs are the inputs of Test.
type TestArgs struct {
	Config m.Path
}

// InitArgs are the inputs of Init.
type InitArgs struct {
	Config m.Path
	Force  bool
}

// Workflow defines the use cases behind the CLI commands.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	Find(ctx context.Context, args FindArgs) error
	Test(ctx context.Context, args TestArgs) error
	Init(ctx context.Context, args InitArgs) error
}

type workflow struct {
	fsAdapter     adapter.SourceFSAdapter
	javaAdapter   adapter.JavaFileAdapter
	configAdapter adapter.ConfigAdapter
	ui            UI
	logger        *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	javaAdapter adapter.JavaFileAdapter,
	configAdapter adapter.ConfigAdapter,
	ui UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &workflow{
		fsAdapter:     fsAdapter,
		javaAdapter:   javaAdapter,
		configAdapter: configAdapter,
		ui:            ui,
		logger:        logger,
	}
}

// Check loads the configuration, analyzes every script under args.Paths and
// renders the outcomes. It returns ErrIssuesFound when a rule matched.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	cfg, err := w.loadConfig(args.Config)
	if err != nil {
		return w.fail(err)
	}

	rules, ruleErrors := CompileRules(cfg.Rules)
	for _, re := range ruleErrors {
		w.logger.Warn("disabling rule", "rule", re.RuleID, "error", re.Err)
	}

	analyzer := NewAnalyzer(rules,
		WithRuleFilter(args.Rule),
		WithChecks(cfg.Checks),
		WithWorkers(args.Workers),
		WithLogger(w.logger),
	)

	if args.Rule != "" && len(analyzer.Rules()) == 0 {
		return w.fail(fmt.Errorf("%w: %s", ErrNoRuleMatched, args.Rule))
	}

	report, err := w.analyze(ctx, analyzer, args.Paths, args.Root)
	if err != nil {
		return w.fail(err)
	}

	outcomes := make([]Outcome, 0, len(ruleErrors)+len(report.Outcomes))
	for _, re := range ruleErrors {
		outcomes = append(outcomes, re)
	}

	report.Outcomes = append(outcomes, report.Outcomes...)

	if err := w.ui.DisplayReport(report); err != nil {
		return err
	}

	if report.HasIssues() {
		return ErrIssuesFound
	}

	return nil
}

// Find compiles a single pattern and reports every match. Matches are not
// failures.
func (w *workflow) Find(ctx context.Context, args FindArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	p, err := pattern.Compile(args.Pattern)
	if err != nil {
		return w.fail(err)
	}

	rule := &Rule{ID: findRuleID, Message: p.Source, Patterns: []*pattern.Pattern{p}}

	analyzer := NewAnalyzer([]*Rule{rule},
		WithWorkers(args.Workers),
		WithLimit(args.Limit),
		WithLogger(w.logger),
	)

	report, err := w.analyze(ctx, analyzer, args.Paths, args.Root)
	if err != nil {
		return w.fail(err)
	}

	return w.ui.DisplayReport(report)
}

// Test checks duplicate ids, pattern errors and rule examples.
func (w *workflow) Test(ctx context.Context, args TestArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	cfg, err := w.loadConfig(args.Config)
	if err != nil {
		return w.fail(err)
	}

	report := NewRuleTester(w.javaAdapter).Test(ctx, cfg.Rules)

	if err := w.ui.DisplayTestReport(report); err != nil {
		return err
	}

	if report.Failed() {
		return ErrTestsFailed
	}

	return nil
}

// Init writes the template configuration.
func (w *workflow) Init(_ context.Context, args InitArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	path := configPath(args.Config)

	if _, err := w.fsAdapter.FileInfo(path); err == nil && !args.Force {
		return w.fail(fmt.Errorf("%w: %s", ErrConfigExists, path))
	}

	if err := w.fsAdapter.WriteFile(path, w.configAdapter.Template(), 0o644); err != nil {
		return w.fail(fmt.Errorf("failed to write %s: %w", path, err))
	}

	w.ui.DisplayNotice(fmt.Sprintf("wrote %s", path))

	return nil
}

func (w *workflow) fail(err error) error {
	if displayErr := w.ui.DisplayError(err); displayErr != nil {
		w.logger.Error("failed to display error", "error", displayErr)
	}

	return err
}

func configPath(path m.Path) m.Path {
	if path == "" {
		return DefaultConfig
	}

	return path
}

func (w *workflow) loadConfig(path m.Path) (*m.Config, error) {
	path = configPath(path)

	cfg, err := w.configAdapter.Load(path)
	if err != nil {
		return nil, err
	}

	if len(cfg.Preprocessor) > 0 {
		w.logger.Warn("preprocessor is not supported, ignoring it", "config", path.String())
	}

	w.logger.Debug("loaded config", "config", path.String(), "rules", len(cfg.Rules))

	return cfg, nil
}

// analyze enumerates the scripts under paths and runs analyzer over them.
func (w *workflow) analyze(ctx context.Context, analyzer *Analyzer, paths []m.Path, root m.Path) (Report, error) {
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	if root == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(string(root))
	if err != nil {
		return Report{}, fmt.Errorf("root path error: %w", err)
	}

	sources, err := w.fsAdapter.Get(paths)
	if err != nil {
		return Report{}, err
	}

	for i := range sources {
		sources[i].Rel = w.relPath(m.Path(absRoot), sources[i].Path)
	}

	return analyzer.Run(ctx, sources, w.loadScript)
}

func (w *workflow) relPath(root, path m.Path) string {
	rel, err := w.fsAdapter.RelPath(root, path)
	if err != nil {
		rel = path
	}

	slashed := filepath.ToSlash(string(rel))
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}

	return slashed
}

func (w *workflow) loadScript(ctx context.Context, src m.Source) (*Script, error) {
	content, err := w.fsAdapter.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.Path, err)
	}

	file, err := w.javaAdapter.Parse(ctx, src.Path, content)
	if err != nil {
		return nil, err
	}

	return &Script{Path: src.Path, Rel: src.Rel, File: file}, nil
}
