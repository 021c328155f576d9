package utils

import "strings"

// SplitNonEmpty splits s on sep, trims surrounding whitespace from each
// part and drops empty ones. An empty or separator-only input returns nil,
// which lets callers distinguish "unset" from "set to one value".
func SplitNonEmpty(s, sep string) []string {
	var result []string

	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}
