package logparse

import "strings"

// SplitPath decomposes a warning's file path into its directory key and file key.
//
// The file key is the path unchanged. The directory key is the path with the
// final segment removed: "" for a bare file name and the separator itself for
// a file at the root. Both '/' and '\' are treated as separators.
func SplitPath(path string) (dirKey, fileKey string) {
	i := strings.LastIndexAny(path, `/\`)
	switch {
	case i < 0:
		return "", path
	case i == 0:
		return path[:1], path
	default:
		return path[:i], path
	}
}
