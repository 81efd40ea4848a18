package domain

import (
	"strings"
	"unicode"

	"github.com/kmizu/JavaSee/internal/syntax"
)

const ignoreDirective = "javasee:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(ruleID string) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	id := strings.ToLower(ruleID)
	for name := range r.names {
		if matchesRuleID(id, name) {
			return true
		}
	}

	return false
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimPrefix(s, ignoreDirective)
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		// javasee:ignored and the like are not directives
		return ignoreRule{}, false
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// ignoreIndex holds the directives of one file: those before the first
// declaration cover the whole file, the rest cover a single line.
type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

func (idx ignoreIndex) ignores(ruleID string, line int) bool {
	if idx.file.ignores(ruleID) {
		return true
	}

	r, ok := idx.line[line]

	return ok && r.ignores(ruleID)
}

func buildIgnoreIndex(file *syntax.File) ignoreIndex {
	idx := ignoreIndex{line: make(map[int]ignoreRule)}
	if file == nil {
		return idx
	}

	lineStarts := computeLineStarts(file.Source)

	for _, c := range file.Comments {
		r, ok := parseIgnoreDirective(c.Text)
		if !ok {
			continue
		}

		if c.Span.Start.Offset < file.FirstDecl {
			mergeIgnoreRule(&idx.file, r)
			continue
		}

		pos := c.Span.Start
		if pos.Line <= 0 {
			continue
		}

		targetLine := pos.Line
		if isLeadingComment(pos.Line, pos.Offset, lineStarts, file.Source) {
			targetLine = pos.Line + 1
		}

		current := idx.line[targetLine]
		mergeIgnoreRule(&current, r)
		idx.line[targetLine] = current
	}

	return idx
}

func computeLineStarts(content []byte) []int {
	return syntax.LineStarts(content)
}

func isLeadingComment(line int, slashOffset int, lineStarts []int, content []byte) bool {
	if line <= 0 || line > len(lineStarts) {
		return false
	}

	start := lineStarts[line-1]
	if slashOffset < start || slashOffset > len(content) {
		return false
	}

	for _, b := range content[start:slashOffset] {
		if !unicode.IsSpace(rune(b)) {
			return false
		}
	}

	return true
}
