package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// logFile pairs a path with its modification time for age sorting.
type logFile struct {
	path    string
	modTime time.Time
}

// rotate removes the oldest files in dir once the number of
// "tabstrip_*.log" files exceeds maxFiles.
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var files []logFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "tabstrip_") || !strings.HasSuffix(name, ".log") {
			continue
		}
		lf := logFile{path: filepath.Join(dir, name)}
		if info, err := entry.Info(); err == nil {
			lf.modTime = info.ModTime()
		}
		files = append(files, lf)
	}
	if len(files) <= maxFiles {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].modTime.Equal(files[j].modTime) {
			return files[i].path < files[j].path
		}
		return files[i].modTime.Before(files[j].modTime)
	})
	for _, lf := range files[:len(files)-maxFiles] {
		os.Remove(lf.path) // ignore errors
	}
	return nil
}
