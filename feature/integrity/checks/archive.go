package checks

import (
	"errors"
	"fmt"
	"os"

	"game-catalog/core/reconcile"
)

// ArchiveReport describes the archive directory as the reconciler would see it.
type ArchiveReport struct {
	Dir    string `json:"dir"`
	Exists bool   `json:"exists"`
	IsDir  bool   `json:"is_dir"`
	Files  int    `json:"files"`
	Status string `json:"status"` // "ok", "error"
	Error  string `json:"error,omitempty"`
}

// CheckArchive reports whether dir exists, is a directory and how many
// candidate files it holds. Nothing is hashed.
func CheckArchive(dir string, accept func(name string) bool) ArchiveReport {
	report := ArchiveReport{Dir: dir, Status: "error"}

	info, err := os.Stat(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			report.Error = err.Error()
		} else {
			report.Error = "directory does not exist"
		}
		return report
	}
	report.Exists = true

	if !info.IsDir() {
		report.Error = fmt.Sprintf("%s is not a directory", dir)
		return report
	}
	report.IsDir = true

	files, err := reconcile.ScanDir(dir, accept)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.Files = len(files)
	report.Status = "ok"
	return report
}
