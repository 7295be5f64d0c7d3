package errors

import (
	"strings"
	"unicode"
)

// ValidateModuleName validates a module name used as a graph entry point.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
//
// Dotted-path structure is not enforced here; the graph engine tolerates
// identifiers that are not valid dotted paths.
func ValidateModuleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "module name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "module name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "module name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "module name cannot contain path separators: %q", name)
	}

	return nil
}

// ValidateSearchPath validates a search path entry for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateSearchPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "search path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "search path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "search path contains invalid characters")
		}
	}

	return nil
}
