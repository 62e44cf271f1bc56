package purity

import (
	"context"
	"fmt"

	"github.com/schemaguard/schemaguard/internal/violation"
	"github.com/schemaguard/schemaguard/internal/worker"
)

// ErrNoSchemaDirs is returned by Scan when a configured schema root is
// missing: there is nothing meaningful to check there, which is the one
// condition that surfaces as an error instead of violations.
var ErrNoSchemaDirs = fmt.Errorf("schema directories not found")

// ScanResult is the outcome of a batch scan.
type ScanResult struct {
	Files      []string
	Violations []violation.Violation
}

// Scan discovers the schema files under roots and checks each one, fanning
// the per-file work out over a worker pool. Results are flattened in sorted
// file order, so repeated scans of an unchanged tree are byte-identical.
func (c *Checker) Scan(ctx context.Context, roots []string, concurrency int) (*ScanResult, error) {
	files, missing := FindSchemaFiles(roots)
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoSchemaDirs, missing)
	}

	pool := worker.NewPool[string, []violation.Violation](concurrency)
	perFile := pool.Map(files, func(path string) []violation.Violation {
		return c.CheckFile(ctx, path, roots)
	})

	result := &ScanResult{Files: files}
	for _, vs := range perFile {
		result.Violations = append(result.Violations, vs...)
	}
	return result, nil
}
