package purity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/schemaguard/schemaguard/internal/violation"
)

// readFileSafely reads a source file, converting every failure mode into a
// file_error violation instead of an error: the per-file contract is that
// nothing aborts the batch. When guardRoots is non-empty the path must
// resolve inside one of the roots (discovery mode); a literal ".." segment
// is rejected in every mode, before any read happens.
func readFileSafely(path string, guardRoots []string) ([]byte, []violation.Violation) {
	fileError := func(message string) (b []byte, vs []violation.Violation) {
		return nil, []violation.Violation{{
			File:     path,
			Line:     1,
			Category: violation.CategoryFileError,
			Message:  message,
		}}
	}

	if len(guardRoots) > 0 && !insideRoots(path, guardRoots) {
		return fileError(fmt.Sprintf(
			"File path '%s' is outside allowed schema directories (security: path traversal prevention)", path))
	}
	if strings.Contains(path, "..") {
		return fileError(fmt.Sprintf(
			"File path '%s' contains path traversal pattern '..' (security: path traversal prevention)", path))
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		return fileError(fmt.Sprintf("File not found: %v", err))
	case errors.Is(err, fs.ErrPermission):
		return fileError(fmt.Sprintf("Permission denied: %v", err))
	default:
		return fileError(fmt.Sprintf("Cannot read file: %v", err))
	}

	if !utf8.Valid(data) {
		return fileError("Unicode decode error: file is not valid UTF-8")
	}
	return data, nil
}

// insideRoots reports whether path resolves inside one of the given roots.
func insideRoots(path string, roots []string) bool {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	resolved = filepath.Clean(resolved)
	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		absRoot = filepath.Clean(absRoot)
		if resolved == absRoot || strings.HasPrefix(resolved, absRoot+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// FindSchemaFiles lists the Python files directly under each existing schema
// root, sorted for deterministic scan order. Missing roots are reported in
// the second return value so batch mode can fail fast when none exist.
func FindSchemaFiles(roots []string) (files []string, missing []string) {
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			missing = append(missing, root)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(root, "*.py"))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, missing
}
