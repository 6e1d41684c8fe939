package reconcile

import (
	"context"
	"fmt"
	"time"

	"game-catalog/core/archive"
	"game-catalog/core/database"
	"game-catalog/core/reconcile"

	"go.uber.org/zap"
)

// Reconciler runs one hash reconciliation of the archive directory against
// the games table.
type Reconciler struct {
	opener  database.Opener
	archive archive.Config
	logger  *zap.Logger
	digest  reconcile.DigestFunc
}

// NewReconciler creates a reconciler.
func NewReconciler(opener database.Opener, cfg archive.Config, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		opener:  opener,
		archive: cfg,
		logger:  logger.With(zap.String("component", "reconcile")),
	}
}

// WithDigest overrides the hash function (tests simulate unreadable files with it).
func (r *Reconciler) WithDigest(fn reconcile.DigestFunc) *Reconciler {
	r.digest = fn
	return r
}

// Spec returns the engine spec for the configured archive.
func (r *Reconciler) Spec() *reconcile.Spec {
	return &reconcile.Spec{
		Adapter:   NewAdapter(r.archive),
		Dir:       r.archive.Dir,
		Accept:    r.archive.Accepts,
		ChunkSize: r.archive.ChunkSize,
		Digest:    r.digest,
	}
}

// Run performs one reconciliation pass on its own read-write connection,
// which is released whatever the outcome. A returned error means the run
// failed as a whole and nothing was committed.
func (r *Reconciler) Run(ctx context.Context, opts reconcile.ReconcileOptions) (*reconcile.ReconcilePlan, int, error) {
	start := time.Now()
	r.logger.Info("Starting reconciliation",
		zap.String("dir", r.archive.Dir),
		zap.Bool("dry_run", opts.DryRun),
	)

	db, err := r.opener.Open(ctx, database.ReadWrite)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			r.logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	plan, executed, err := reconcile.ReconcileAndApply(ctx, r.Spec(), db, r.logger, opts)
	if err != nil {
		r.logger.Error("Reconciliation failed", zap.Error(err))
		return plan, 0, err
	}

	s := plan.Summary
	r.logger.Info("Reconciliation complete",
		zap.Int("scanned", s.Scanned),
		zap.Int("inserts", s.Inserts),
		zap.Int("updates", s.Updates),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("skipped", s.Skipped),
		zap.Int("executed", executed),
		zap.Duration("elapsed", time.Since(start)),
	)

	return plan, executed, nil
}
