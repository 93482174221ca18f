// Package common holds small helpers shared by every command action.
package common

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BaseName returns the file name without directory or extension.
// "docs/report.pdf" -> "report".
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DirBaseName returns the last path element of a directory, tolerating a
// trailing separator. "scans/deed/" -> "deed".
func DirBaseName(path string) string {
	return filepath.Base(strings.TrimRight(path, "/\\"))
}

// EnsurePDFSuffix appends ".pdf" when the path does not already end with it
// (case-insensitive).
func EnsurePDFSuffix(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return path
	}
	return path + ".pdf"
}

// FormatMB renders a byte count as megabytes with two decimals, the way the
// compression summaries report sizes.
func FormatMB(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
}

// FormatKB renders a byte count as kilobytes with one decimal.
func FormatKB(size int64) string {
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}
