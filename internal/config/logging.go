package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// keepLogFiles is how many timestamped log files survive a rotation.
const keepLogFiles = 10

// OpenLogFile opens a fresh timestamped log file under dir and prunes
// older ones past the retention count. The caller owns the handle.
func OpenLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("server-%s.log",
		time.Now().Format("2006-01-02T15-04-05")))

	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	if err := pruneLogFiles(dir, keepLogFiles); err != nil {
		// Pruning is best-effort; the new file is already usable.
		fmt.Fprintf(os.Stderr, "warning: failed to prune old logs: %v\n", err)
	}

	return f, nil
}

func pruneLogFiles(dir string, keep int) error {
	files, err := filepath.Glob(filepath.Join(dir, "server-*.log"))
	if err != nil {
		return err
	}
	if len(files) <= keep {
		return nil
	}

	// Timestamped names sort chronologically
	sort.Strings(files)

	for _, stale := range files[:len(files)-keep] {
		if err := os.Remove(stale); err != nil {
			return fmt.Errorf("remove %s: %w", stale, err)
		}
	}

	return nil
}
