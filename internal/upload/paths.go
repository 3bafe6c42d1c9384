package upload

import "strings"

// NormalizePath canonicalizes an image reference to a public path with
// exactly one leading "/uploads/" segment. It is idempotent and leaves
// the casing of everything after the prefix untouched. Empty input is
// returned unchanged.
func NormalizePath(path string) string {
	if path == "" {
		return path
	}

	clean := strings.TrimLeft(path, "/")
	if strings.HasPrefix(strings.ToLower(clean), "uploads/") {
		return "/" + clean
	}
	return "/uploads/" + clean
}

// NormalizePaths applies NormalizePath to every element.
func NormalizePaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = NormalizePath(p)
	}
	return out
}
