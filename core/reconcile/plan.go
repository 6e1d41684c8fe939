package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ApplyPlan executes the actions in a reconcile plan inside one transaction.
// Either every write commits at the end or, on the first failure, none does
// and the error is returned. Returns the number of actions executed.
func ApplyPlan(ctx context.Context, spec *Spec, db *gorm.DB, plan *ReconcilePlan, opts ReconcileOptions) (int, error) {
	if opts.DryRun || plan == nil || len(plan.Actions) == 0 {
		return 0, nil
	}

	var (
		updates []Action
		inserts []FileInfo
	)
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionUpdate:
			updates = append(updates, action)
		case ActionInsert:
			inserts = append(inserts, action.File)
		}
	}

	executed := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, action := range updates {
			if err := spec.Adapter.UpdateDigest(ctx, tx, action.ID, action.File); err != nil {
				return fmt.Errorf("failed to update %s: %w", action.Key, err)
			}
			executed++
		}

		if len(inserts) == 0 {
			return nil
		}

		if batch, ok := spec.Adapter.(BatchInserter); ok {
			if err := batch.InsertBatch(ctx, tx, inserts); err != nil {
				return fmt.Errorf("failed to batch insert %d files: %w", len(inserts), err)
			}
			executed += len(inserts)
			return nil
		}

		for _, file := range inserts {
			if err := spec.Adapter.Insert(ctx, tx, file); err != nil {
				return fmt.Errorf("failed to insert %s: %w", file.Name, err)
			}
			executed++
		}
		return nil
	})
	if err != nil {
		// rolled back
		return 0, err
	}

	return executed, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
func ReconcileAndApply(ctx context.Context, spec *Spec, db *gorm.DB, log *zap.Logger, opts ReconcileOptions) (*ReconcilePlan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, db, log)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, spec, db, plan, opts)
	return plan, executed, err
}
