package pattern

import "fmt"

// CompileError reports why pattern text could not be compiled.
type CompileError struct {
	Pattern string
	// Column is 1-based.
	Column int
	// Token is the offending text, empty at the end of the pattern.
	Token string
	Msg   string
}

func (e *CompileError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("pattern %q:%d: %s", e.Pattern, e.Column, e.Msg)
	}

	return fmt.Sprintf("pattern %q:%d: %s near %q", e.Pattern, e.Column, e.Msg, e.Token)
}
