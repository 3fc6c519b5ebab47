package router

import "strings"

// NormalizePath removes trailing slashes; the empty path becomes "/".
func NormalizePath(path string) string {
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	return path
}

// Match returns the first route whose pattern matches path, together with the
// parameters extracted from "{name}" segments.
func Match(routes []Route, path string) (*Route, map[string]string, bool) {
	path = NormalizePath(path)
	for i := range routes {
		if matchesPattern(routes[i].Path, path) {
			return &routes[i], extractParams(routes[i].Path, path), true
		}
	}
	return nil, nil, false
}

// Pivot finds the first index where current and target chains differ by TypeID.
// All components before the pivot point have matching TypeIDs and are preserved.
// All components at or after the pivot point are recreated.
func Pivot(current, target []ComponentMetadata) int {
	n := min(len(current), len(target))
	for i := 0; i < n; i++ {
		if current[i].TypeID != target[i].TypeID {
			return i
		}
	}
	return n
}

// matchesPattern checks if an actual path matches a route pattern.
// The pattern can contain parameters in curly braces, e.g., "/projects/{id}".
func matchesPattern(pattern, path string) bool {
	pattern = NormalizePath(pattern)
	path = NormalizePath(path)

	if pattern == path {
		return true
	}

	patternParts := segments(pattern)
	pathParts := segments(path)
	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if isParam(patternParts[i]) {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}

// extractParams parses URL parameters from a path based on route pattern.
//
// Example:
//
//	extractParams("/projects/{id}", "/projects/42") returns {"id": "42"}
func extractParams(pattern, path string) map[string]string {
	patternParts := segments(NormalizePath(pattern))
	pathParts := segments(NormalizePath(path))

	params := make(map[string]string)
	for i := range patternParts {
		if i >= len(pathParts) {
			break
		}
		if isParam(patternParts[i]) {
			params[strings.Trim(patternParts[i], "{}")] = pathParts[i]
		}
	}
	return params
}

func segments(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

func isParam(segment string) bool {
	return len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}
