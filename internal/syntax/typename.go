package syntax

import "strings"

// SimpleTypeName strips type arguments, array brackets, annotations and
// qualifiers: "java.util.Map<K, V>[]" becomes "Map".
func SimpleTypeName(text string) string {
	s := strings.TrimSpace(text)

	if i := strings.IndexAny(s, "<["); i >= 0 {
		s = s[:i]
	}

	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}

	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[len(fields)-1]
	}

	return s
}
