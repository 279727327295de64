// Package stacktrace reduces raw stack dumps to the frames that matter.
package stacktrace

import "strings"

// InternalPaths returns the internal package frames from a raw stack trace,
// as short "internal/..." file:line strings. It returns nil when the stack
// contains no internal frames.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")

	var paths []string
	for i := 0; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i+1])
		if !strings.Contains(line, "/internal/") || !strings.Contains(line, ".go:") {
			continue
		}

		end := strings.Index(line, ".go:")
		rest := line[end:]
		if sp := strings.Index(rest, " "); sp != -1 {
			line = line[:end+sp]
		}

		if idx := strings.Index(line, "/internal/"); idx != -1 {
			paths = append(paths, line[idx+1:])
		}
	}
	return paths
}
