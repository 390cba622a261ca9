// Package security guards the file paths the CLI writes artifacts to.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathEscapes is returned when an artifact path resolves outside every
// allowed directory.
var ErrPathEscapes = errors.New("path escapes allowed directories")

// canonicalPath resolves path to an absolute path with symlinks evaluated.
// For a path that does not exist yet, the nearest existing parent is
// resolved and the remaining components are re-appended, so a symlinked
// parent directory cannot redirect a new file.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	for dir := filepath.Dir(abs); ; dir = filepath.Dir(dir) {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			rel, _ := filepath.Rel(dir, abs)
			return filepath.Join(resolved, rel), nil
		}
		if filepath.Dir(dir) == dir {
			return abs, nil
		}
	}
}

// ValidatePathWithinDirectory reports whether filePath stays inside safeDir
// once both are canonicalised.
func ValidatePathWithinDirectory(filePath, safeDir string) error {
	target, err := canonicalPath(filePath)
	if err != nil {
		return err
	}
	base, err := canonicalPath(safeDir)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPathEscapes, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return fmt.Errorf("%w: %s is outside %s", ErrPathEscapes, filePath, safeDir)
	}
	return nil
}

// ValidateArtifactPath checks that filePath ends in ext and lives under the
// working directory or the system temp directory.
func ValidateArtifactPath(filePath, ext string) error {
	if got := strings.ToLower(filepath.Ext(filePath)); got != ext {
		return fmt.Errorf("artifact %s must have %s extension, got %q", filePath, ext, got)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	for _, dir := range []string{cwd, os.TempDir()} {
		if ValidatePathWithinDirectory(filePath, dir) == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %s (allowed: working directory, %s)", ErrPathEscapes, filePath, os.TempDir())
}

// ArtifactFilename builds a file name such as
// "teebox-front-left-to-back-right.png" from a free-form label. Runs of
// characters outside [a-z0-9] collapse to a single dash.
func ArtifactFilename(label, ext string) string {
	const maxLen = 96
	var b strings.Builder
	b.WriteString("teebox")
	dash := true
	for _, r := range strings.ToLower(label) {
		if b.Len() >= maxLen {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash {
				b.WriteByte('-')
				dash = false
			}
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String() + ext
}
