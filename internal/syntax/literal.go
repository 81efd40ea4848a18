package syntax

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrMalformedLiteral is returned when literal text cannot be decoded.
var ErrMalformedLiteral = errors.New("malformed literal")

// ParseIntLiteral decodes a Java integer literal: decimal, hex, octal or
// binary, with optional underscores and an optional L suffix. A non-decimal
// int literal that only fits in 32 unsigned bits wraps the way Java does.
func ParseIntLiteral(text string) (int64, error) {
	s := strings.ReplaceAll(text, "_", "")
	long := false

	if strings.HasSuffix(s, "l") || strings.HasSuffix(s, "L") {
		long = true
		s = s[:len(s)-1]
	}

	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLiteral, text)
	}

	base := 10
	digits := s

	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base, digits = 16, s[2:]
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		base, digits = 2, s[2:]
	case len(s) > 1 && s[0] == '0':
		base, digits = 8, s[1:]
	}

	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLiteral, text)
	}

	if base == 10 {
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %q out of range", ErrMalformedLiteral, text)
		}

		return int64(u), nil
	}

	if !long && u <= math.MaxUint32 {
		return int64(int32(uint32(u))), nil //nolint:gosec
	}

	return int64(u), nil //nolint:gosec
}

// ParseDoubleLiteral decodes a Java floating point literal, including hex
// floats and the f/F/d/D suffixes.
func ParseDoubleLiteral(text string) (float64, error) {
	s := strings.ReplaceAll(text, "_", "")

	isHex := strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
	if n := len(s); n > 0 {
		switch s[n-1] {
		case 'f', 'F', 'd', 'D':
			s = s[:n-1]
		}
	}

	if isHex && !strings.ContainsAny(s, "pP") {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLiteral, text)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLiteral, text)
	}

	return v, nil
}

// UnquoteString decodes a double-quoted Java string literal or a text block.
func UnquoteString(text string) (string, error) {
	switch {
	case strings.HasPrefix(text, `"""`) && strings.HasSuffix(text, `"""`) && len(text) >= 6:
		return unescape(textBlockBody(text[3 : len(text)-3]))
	case len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"':
		return unescape(text[1 : len(text)-1])
	default:
		return "", fmt.Errorf("%w: %q", ErrMalformedLiteral, text)
	}
}

// UnquoteChar decodes a single-quoted Java character literal.
func UnquoteChar(text string) (string, error) {
	if len(text) < 3 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return "", fmt.Errorf("%w: %q", ErrMalformedLiteral, text)
	}

	return unescape(text[1 : len(text)-1])
}

// textBlockBody drops the line break after the opening delimiter and the
// common indentation of the content lines.
func textBlockBody(body string) string {
	if i := strings.IndexByte(body, '\n'); i >= 0 && strings.TrimSpace(body[:i]) == "" {
		body = body[i+1:]
	}

	lines := strings.Split(body, "\n")
	indent := -1

	for i, line := range lines {
		if strings.TrimSpace(line) == "" && i != len(lines)-1 {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}

		lines[i] = strings.TrimRight(lines[i], " \t")
	}

	return strings.Join(lines, "\n")
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++

			continue
		}

		if i+1 >= len(s) {
			return "", fmt.Errorf("%w: trailing backslash", ErrMalformedLiteral)
		}

		i++
		esc := s[i]
		i++

		switch esc {
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 's':
			b.WriteByte(' ')
		case '"', '\'', '\\':
			b.WriteByte(esc)
		case '\n':
			// line continuation inside a text block
		case 'u':
			for i < len(s) && s[i] == 'u' {
				i++
			}

			if i+4 > len(s) {
				return "", fmt.Errorf("%w: short unicode escape", ErrMalformedLiteral)
			}

			r, err := strconv.ParseUint(s[i:i+4], 16, 32)
			if err != nil {
				return "", fmt.Errorf("%w: bad unicode escape %q", ErrMalformedLiteral, s[i:i+4])
			}

			i += 4

			if !utf8.ValidRune(rune(r)) {
				b.WriteRune(utf8.RuneError)
			} else {
				b.WriteRune(rune(r))
			}
		case '0', '1', '2', '3', '4', '5', '6', '7':
			limit := 2
			if esc <= '3' {
				limit = 3
			}

			v := int(esc - '0')

			for n := 1; n < limit && i < len(s) && s[i] >= '0' && s[i] <= '7'; n++ {
				v = v*8 + int(s[i]-'0')
				i++
			}

			b.WriteRune(rune(v))
		default:
			return "", fmt.Errorf("%w: unknown escape \\%c", ErrMalformedLiteral, esc)
		}
	}

	return b.String(), nil
}
