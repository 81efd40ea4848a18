package adapter

import (
	"context"
	"fmt"

	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/kmizu/JavaSee/internal/syntax"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// JavaFileAdapter turns Java source bytes into the syntax tree the domain
// layer matches against.
type JavaFileAdapter interface {
	// Parse builds a tree for src. A file containing syntax errors yields a
	// *ParseError.
	Parse(ctx context.Context, path m.Path, src []byte) (*syntax.File, error)
}

// ParseError reports the first syntax error found in a script.
type ParseError struct {
	Path     m.Path
	Position syntax.Position
	Near     string
	Missing  bool
}

func (e *ParseError) Error() string {
	what := "syntax error"
	if e.Missing {
		what = "missing token"
	}

	if e.Near == "" {
		return fmt.Sprintf("%s:%s: %s", e.Path, e.Position, what)
	}

	return fmt.Sprintf("%s:%s: %s near %q", e.Path, e.Position, what, e.Near)
}

// LocalJavaFileAdapter is the tree-sitter backed JavaFileAdapter.
type LocalJavaFileAdapter struct{}

// NewLocalJavaFileAdapter constructs a LocalJavaFileAdapter.
func NewLocalJavaFileAdapter() *LocalJavaFileAdapter {
	return &LocalJavaFileAdapter{}
}

// Parse builds a syntax.File for the provided path/source pair. A fresh
// tree-sitter parser is used per call so the adapter is safe for concurrent use.
func (a *LocalJavaFileAdapter) Parse(ctx context.Context, path m.Path, src []byte) (*syntax.File, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, firstSyntaxError(root, path, src)
	}

	l := &lowerer{src: src, firstDecl: len(src)}
	node := l.lower(root, syntax.RoleNone)

	return syntax.NewFile(string(path), node, l.comments, src, l.firstDecl), nil
}

const maxErrorContext = 40

func firstSyntaxError(root *sitter.Node, path m.Path, src []byte) *ParseError {
	stack := []*sitter.Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.IsError() || n.IsMissing() {
			near := text(n, src)
			if len(near) > maxErrorContext {
				near = near[:maxErrorContext] + "..."
			}

			if n.IsMissing() {
				near = n.Type()
			}

			return &ParseError{
				Path:     path,
				Position: position(n.StartPoint(), n.StartByte(), 1),
				Near:     near,
				Missing:  n.IsMissing(),
			}
		}

		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, n.Child(i))
		}
	}

	return &ParseError{Path: path, Position: syntax.Position{Line: 1, Column: 1}}
}

func text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}

	start, end := n.StartByte(), n.EndByte()
	if end > uint32(len(src)) { //nolint:gosec
		end = uint32(len(src)) //nolint:gosec
	}

	if start > end {
		return ""
	}

	return string(src[start:end])
}

func position(p sitter.Point, offset uint32, columnBase int) syntax.Position {
	return syntax.Position{
		Line:   int(p.Row) + 1,
		Column: int(p.Column) + columnBase,
		Offset: int(offset),
	}
}

func span(n *sitter.Node) syntax.Span {
	return syntax.Span{
		Start: position(n.StartPoint(), n.StartByte(), 1),
		End:   position(n.EndPoint(), n.EndByte(), 0),
	}
}
