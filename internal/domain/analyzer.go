package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/kmizu/JavaSee/internal/syntax"
	"golang.org/x/sync/errgroup"
)

// ctxCheckInterval is how many nodes are visited between cancellation checks.
const ctxCheckInterval = 256

// ScriptLoader reads and parses one source. Errors become ScriptErrors.
type ScriptLoader func(ctx context.Context, src m.Source) (*Script, error)

// Analyzer applies a fixed rule set to scripts. It is safe for concurrent
// use once constructed.
type Analyzer struct {
	rules   []*Rule
	checks  []m.CheckSpec
	workers int
	limit   int
	logger  *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithWorkers bounds the number of scripts analyzed at once.
func WithWorkers(n int) AnalyzerOption {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// WithLimit stops the run once n issues were found. Zero means no limit.
func WithLimit(n int) AnalyzerOption {
	return func(a *Analyzer) {
		a.limit = n
	}
}

// WithLogger sets the logger used for skipped scripts.
func WithLogger(l *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithChecks restricts, per path prefix, which rules apply.
func WithChecks(checks []m.CheckSpec) AnalyzerOption {
	return func(a *Analyzer) {
		a.checks = checks
	}
}

// WithRuleFilter keeps only the rules selected by id.
func WithRuleFilter(id string) AnalyzerOption {
	return func(a *Analyzer) {
		if id == "" {
			return
		}

		kept := make([]*Rule, 0, len(a.rules))

		for _, r := range a.rules {
			if r.Selects(id) {
				kept = append(kept, r)
			}
		}

		a.rules = kept
	}
}

// NewAnalyzer builds an Analyzer over rules, kept in the given order.
func NewAnalyzer(rules []*Rule, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		rules:   rules,
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.workers <= 0 {
		a.workers = 1
	}

	return a
}

// Rules returns the active rules.
func (a *Analyzer) Rules() []*Rule {
	return a.rules
}

// AnalyzeScript walks script in pre-order and returns an Issue for every
// active rule that applies to a node, rules in configuration order. Ignore
// directives and check filters are honoured. With a limit set, the walk
// stops once that many issues were found.
func (a *Analyzer) AnalyzeScript(ctx context.Context, script *Script) ([]Issue, error) {
	if script == nil || script.File == nil {
		return nil, nil
	}

	rules := a.rulesFor(script.Rel)
	if len(rules) == 0 {
		return nil, nil
	}

	ignores := buildIgnoreIndex(script.File)

	var (
		issues  []Issue
		visited int
		err     error
	)

	syntax.Walk(script.File.Root, func(pair syntax.Pair) bool {
		visited++
		if visited%ctxCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}

		for _, rule := range rules {
			if !rule.AppliesTo(pair) {
				continue
			}

			if ignores.ignores(rule.ID, pair.Node.Span.Start.Line) {
				continue
			}

			issues = append(issues, Issue{Script: script, Rule: rule, Pair: pair})

			if a.limit > 0 && len(issues) >= a.limit {
				return false
			}
		}

		return true
	})

	if err != nil {
		return nil, err
	}

	return issues, nil
}

// rulesFor applies the last check whose path is a prefix of rel.
func (a *Analyzer) rulesFor(rel string) []*Rule {
	var spec *m.CheckSpec

	for i := range a.checks {
		if pathHasPrefix(rel, a.checks[i].Path) {
			spec = &a.checks[i]
		}
	}

	if spec == nil {
		return a.rules
	}

	out := make([]*Rule, 0, len(a.rules))

	for _, r := range a.rules {
		for _, selector := range spec.Rules {
			if r.Selects(selector) {
				out = append(out, r)
				break
			}
		}
	}

	return out
}

func pathHasPrefix(rel, prefix string) bool {
	if rel == "" {
		return false
	}

	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return true
	}

	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return rel == prefix || strings.HasPrefix(rel, prefix+"/")
}

type slot struct {
	outcomes []Outcome
	done     chan struct{}
}

// Run analyzes sources and collects the outcomes. See Stream.
func (a *Analyzer) Run(ctx context.Context, sources []m.Source, load ScriptLoader) (Report, error) {
	var report Report

	truncated, err := a.Stream(ctx, sources, load, func(o Outcome) {
		report.Outcomes = append(report.Outcomes, o)
	})
	if err != nil {
		return Report{}, err
	}

	report.Truncated = truncated

	return report, nil
}

// Stream loads and analyzes sources on up to the configured number of
// workers and hands every outcome to emit on the calling goroutine, in
// source order and then traversal order, exactly as a sequential run would.
// It reports whether the limit was reached. A panic in a worker is
// returned as *FatalError.
func (a *Analyzer) Stream(ctx context.Context, sources []m.Source, load ScriptLoader, emit func(Outcome)) (bool, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	slots := make([]slot, len(sources))
	for i := range slots {
		slots[i].done = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(a.workers)

	a.logger.Debug("analyzing scripts", "scripts", len(sources), "rules", len(a.rules), "workers", a.workers)

	waited := make(chan error, 1)

	go func() {
		for i, src := range sources {
			g.Go(func() error {
				defer close(slots[i].done)

				return a.fill(gctx, src, load, &slots[i])
			})
		}

		waited <- g.Wait()
	}()

	truncated := false
	found := 0

emitting:
	for i := range slots {
		<-slots[i].done

		// gctx is also cancelled once Wait returns, so only the caller's
		// cancellation stops emission here.
		if runCtx.Err() != nil {
			break
		}

		for _, o := range slots[i].outcomes {
			emit(o)

			if _, ok := o.(Issue); !ok || a.limit <= 0 {
				continue
			}

			found++
			if found >= a.limit {
				truncated = true

				cancel()

				break emitting
			}
		}
	}

	if err := <-waited; err != nil {
		return false, err
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	return truncated, nil
}

// fill loads and analyzes one source into its slot.
func (a *Analyzer) fill(ctx context.Context, src m.Source, load ScriptLoader, s *slot) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FatalError{Err: fmt.Errorf("analyzing %s: panic: %v", src.Path, r)}
		}
	}()

	if ctx.Err() != nil {
		return nil
	}

	script, err := load(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		a.logger.Warn("skipping script", "path", src.Path.String(), "error", err)
		s.outcomes = []Outcome{ScriptError{Path: src.Path, Err: err}}

		return nil
	}

	issues, err := a.AnalyzeScript(ctx, script)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		return err
	}

	s.outcomes = make([]Outcome, 0, len(issues))
	for _, issue := range issues {
		s.outcomes = append(s.outcomes, issue)
	}

	return nil
}
