package slop

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schemaguard/schemaguard/internal/violation"
	"github.com/schemaguard/schemaguard/internal/worker"
)

// Exit codes for a slop run.
const (
	ExitClean    = 0
	ExitErrors   = 1
	ExitWarnings = 2
)

// CollectFiles expands the given paths into the concrete file list: plain
// files pass through, directories are walked recursively for *.py files,
// plus *.md files in report mode. The result is sorted for deterministic
// scan order.
func (d *Detector) CollectFiles(paths []string) []string {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		_ = filepath.WalkDir(p, func(path string, entry fs.DirEntry, err error) error {
			if err != nil || entry.IsDir() {
				return nil
			}
			switch {
			case strings.HasSuffix(path, ".py"):
				files = append(files, path)
			case d.Report && strings.HasSuffix(path, ".md"):
				files = append(files, path)
			}
			return nil
		})
	}
	sort.Strings(files)
	return files
}

// Scan checks every file, fanning out over a worker pool and flattening the
// per-file results in input order. Outside report mode, INFO findings are
// filtered out of the result.
func (d *Detector) Scan(ctx context.Context, files []string, concurrency int) []violation.Violation {
	pool := worker.NewPool[string, []violation.Violation](concurrency)
	perFile := pool.Map(files, func(path string) []violation.Violation {
		return d.checkPath(ctx, path)
	})

	var all []violation.Violation
	for _, vs := range perFile {
		all = append(all, vs...)
	}
	if !d.Report {
		filtered := all[:0]
		for _, v := range all {
			if v.Severity == violation.SeverityError || v.Severity == violation.SeverityWarning {
				filtered = append(filtered, v)
			}
		}
		all = filtered
	}
	return all
}

func (d *Detector) checkPath(ctx context.Context, path string) []violation.Violation {
	source, err := os.ReadFile(path)
	if err != nil {
		return []violation.Violation{{
			File:     path,
			Line:     0,
			Category: violation.CheckFileRead,
			Severity: violation.SeverityError,
			Message:  fmt.Sprintf("Cannot read file: %v", err),
		}}
	}
	if strings.HasSuffix(path, ".md") {
		return d.CheckMarkdown(path, source)
	}
	return d.CheckFile(ctx, path, source)
}

// ExitCode maps the collected violations to the process exit code. ERROR
// always blocks; WARNING blocks only in strict mode; report mode never
// changes this rule.
func ExitCode(vs []violation.Violation, strict bool) int {
	if violation.HasSeverity(vs, violation.SeverityError) {
		return ExitErrors
	}
	if strict && violation.HasSeverity(vs, violation.SeverityWarning) {
		return ExitWarnings
	}
	return ExitClean
}
