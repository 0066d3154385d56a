package errors

import (
	"strings"
	"unicode"
)

// MaxContentSize bounds a manifest or lock file accepted over HTTP.
const MaxContentSize = 4 << 20

// ValidatePath validates a client-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateContent rejects file contents larger than MaxContentSize or
// containing null bytes. name is used in the message.
func ValidateContent(name, content string) error {
	if len(content) > MaxContentSize {
		return New(ErrCodeInvalidInput, "%s too large (max %d bytes)", name, MaxContentSize)
	}
	if strings.IndexByte(content, 0) >= 0 {
		return New(ErrCodeInvalidInput, "%s contains null bytes", name)
	}
	return nil
}
