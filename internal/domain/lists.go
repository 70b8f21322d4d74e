package domain

import "strings"

// SplitList parses a comma-separated form value such as "React, TypeScript, Node.js"
// into trimmed, non-empty items.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
