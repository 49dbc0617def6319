package dailylog

import "strings"

// Prefix returns the literal content prefix of a category row,
// including the trailing space: "[결근] ".
func (c Category) Prefix() string {
	return "[" + string(c) + "] "
}

// SplitAggregate parses an aggregate row's content into its name list.
// ok is false when content does not carry the exact category prefix; such
// rows are skipped, never repaired.
func SplitAggregate(c Category, content string) (names []string, ok bool) {
	rest, found := strings.CutPrefix(content, c.Prefix())
	if !found {
		return nil, false
	}
	for _, part := range strings.Split(rest, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			names = append(names, name)
		}
	}
	return names, true
}

// JoinAggregate renders a name list back into row content.
func JoinAggregate(c Category, names []string) string {
	return c.Prefix() + strings.Join(names, ", ")
}

// AddName appends name to the list unless already present.
func AddName(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

// RemoveName removes every occurrence of name, preserving order.
func RemoveName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
