package reconcile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ScanDir returns the names of the regular files directly inside dir.
// Symlinks are followed; directories, dangling links and names rejected by
// accept are left out. The order is whatever the filesystem listing yields.
func ScanDir(dir string, accept func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if accept != nil && !accept(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// ReconcileWithPlan scans the archive directory, hashes every file and
// compares it with the stored index. It does NOT write anything; use
// ApplyPlan for that.
//
// A file that cannot be hashed is logged and skipped. Failing to load the
// index or to list the directory fails the whole run.
func ReconcileWithPlan(ctx context.Context, spec *Spec, db *gorm.DB, log *zap.Logger) (*ReconcilePlan, error) {
	index, err := spec.Adapter.LoadIndex(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s index: %w", spec.Adapter.Name(), err)
	}

	names, err := ScanDir(spec.Dir, spec.Accept)
	if err != nil {
		return nil, err
	}

	hash := spec.digestFunc()
	plan := &ReconcilePlan{
		Actions: []Action{},
		Skipped: []SkippedFile{},
	}

	for _, name := range names {
		path := filepath.Join(spec.Dir, name)
		plan.Summary.Scanned++

		sum, err := hash(path, spec.ChunkSize)
		if err != nil {
			log.Warn("Skipping unreadable file", zap.String("file", name), zap.Error(err))
			plan.Skipped = append(plan.Skipped, SkippedFile{Name: name, Reason: err.Error()})
			plan.Summary.Skipped++
			continue
		}

		file := FileInfo{Name: name, Path: path, Size: sum.Size, Digest: sum.Hex}

		entry, found := index[name]
		if !found {
			log.Info("Adding new file", zap.String("file", name), zap.Int64("size", sum.Size))
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionInsert,
				Key:    name,
				Reason: "not registered",
				File:   file,
			})
			plan.Summary.Inserts++
			continue
		}

		if entry.Digest != nil && *entry.Digest == sum.Hex {
			log.Debug("Hash is up to date", zap.String("file", name))
			plan.Summary.Unchanged++
			continue
		}

		old := "<none>"
		if entry.Digest != nil {
			old = *entry.Digest
		}
		log.Info("Updating hash",
			zap.String("file", name),
			zap.String("old", old),
			zap.String("new", sum.Hex),
		)
		plan.Actions = append(plan.Actions, Action{
			Type:   ActionUpdate,
			Key:    name,
			ID:     entry.ID,
			Reason: fmt.Sprintf("digest %s -> %s", old, sum.Hex),
			File:   file,
		})
		plan.Summary.Updates++
	}

	return plan, nil
}
