package integrity

import (
	"context"
	"fmt"

	"game-catalog/core/archive"
	"game-catalog/core/database"
	"game-catalog/feature/integrity/checks"

	"go.uber.org/zap"
)

// Report combines every integrity check.
type Report struct {
	Healthy bool                 `json:"healthy"`
	Schema  *checks.SchemaReport `json:"schema,omitempty"`
	Archive checks.ArchiveReport `json:"archive"`
	Errors  []string             `json:"errors"`
}

// Service handles integrity checks. It only reads; nothing is ever fixed.
type Service struct {
	opener  database.Opener
	archive archive.Config
	logger  *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opener database.Opener, cfg archive.Config, logger *zap.Logger) *Service {
	return &Service{
		opener:  opener,
		archive: cfg,
		logger:  logger,
	}
}

// CheckSchema compares the games table with the model on a read-only connection.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	db, err := s.opener.Open(ctx, database.ReadOnly)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			s.logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	return checks.CheckSchema(db)
}

// CheckArchive inspects the archive directory.
func (s *Service) CheckArchive() checks.ArchiveReport {
	return checks.CheckArchive(s.archive.Dir, s.archive.Accepts)
}

// Run performs every check. Individual failures are recorded in the report
// rather than returned.
func (s *Service) Run(ctx context.Context) *Report {
	report := &Report{Errors: []string{}}

	schema, err := s.CheckSchema(ctx)
	if err != nil {
		s.logger.Error("Schema check failed", zap.Error(err))
		report.Errors = append(report.Errors, fmt.Sprintf("schema: %v", err))
	} else {
		report.Schema = schema
		for _, e := range schema.Errors {
			report.Errors = append(report.Errors, "schema: "+e)
		}
	}

	report.Archive = s.CheckArchive()
	if report.Archive.Error != "" {
		report.Errors = append(report.Errors, "archive: "+report.Archive.Error)
	}

	report.Healthy = schema != nil && schema.Matched && report.Archive.Status == "ok"
	if report.Healthy {
		s.logger.Info("Integrity check passed", zap.Int("files", report.Archive.Files))
	} else {
		s.logger.Warn("Integrity check found problems", zap.Strings("errors", report.Errors))
	}

	return report
}
