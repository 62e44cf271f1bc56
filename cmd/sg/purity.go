package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/schemaguard/schemaguard/internal/config"
	"github.com/schemaguard/schemaguard/internal/purity"
)

var (
	purityWarnOnly bool
	purityWatch    bool
)

var purityCmd = &cobra.Command{
	Use:   "purity [roots...]",
	Short: "Check schema modules for impure imports, calls and env access",
	Long: `Scan Python schema directories for violations of schema purity:
forbidden imports (os, requests, time, ...), forbidden calls
(datetime.now, os.getenv, ...), environment access and naming rules.

Exits 1 when violations are found, 0 when clean. With --warn-only the
scan still reports findings but always exits 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		roots := cfg.Purity.Roots
		if len(args) > 0 {
			roots = args
		}

		checker := purity.NewChecker(purity.DefaultDenylist().Extend(
			cfg.Purity.ExtraForbiddenImports,
			cfg.Purity.ExtraForbiddenCalls,
		))

		if purityWatch {
			return watchPurity(cmd, cfg, checker, roots)
		}

		code, err := runPurityScan(cmd, cfg, checker, roots)
		if err != nil {
			return err
		}
		return exitWithCode(code)
	},
}

// runPurityScan performs one scan and returns the exit code it implies.
func runPurityScan(cmd *cobra.Command, cfg *config.Config, checker *purity.Checker, roots []string) (int, error) {
	result, err := checker.Scan(cmd.Context(), roots, cfg.Concurrency)
	if err != nil {
		if errors.Is(err, purity.ErrNoSchemaDirs) {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			return 1, nil
		}
		return 0, err
	}

	if err := printPurityViolations(cfg, result.Violations); err != nil {
		return 0, err
	}

	if len(result.Violations) == 0 {
		return 0, nil
	}
	if purityWarnOnly {
		fmt.Fprintln(os.Stderr, "⚠️  warn-only mode: not failing the build")
		return 0, nil
	}
	return 1, nil
}

// watchPurity re-runs the scan whenever a watched file changes. Events are
// debounced so one save triggers one scan.
func watchPurity(cmd *cobra.Command, cfg *config.Config, checker *purity.Checker, roots []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch init failed: %w", err)
	}
	defer watcher.Close()

	for _, root := range roots {
		if err := addWatchRecursive(watcher, root); err != nil {
			return fmt.Errorf("watch %s failed: %w", root, err)
		}
	}

	scan := func() {
		if _, err := runPurityScan(cmd, cfg, checker, roots); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		}
	}
	scan()

	var timer *time.Timer
	debounce := 300 * time.Millisecond
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			watchIfNewDir(watcher, ev)
			if !strings.HasSuffix(ev.Name, ".py") && ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, scan)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "❌ watch error: %v\n", err)
		}
	}
}

// watchIfNewDir starts watching directories created after the initial
// recursive add, so files in new subdirectories still trigger rescans.
func watchIfNewDir(w *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Op&fsnotify.Create == 0 {
		return
	}
	if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
		_ = addWatchRecursive(w, ev.Name)
	}
}

func addWatchRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func init() {
	purityCmd.Flags().BoolVar(&purityWarnOnly, "warn-only", false, "Report violations but exit 0")
	purityCmd.Flags().BoolVar(&purityWatch, "watch", false, "Re-run the scan on file changes")
	rootCmd.AddCommand(purityCmd)
}
