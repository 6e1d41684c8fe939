package games

import (
	"context"
	"fmt"
	"strings"

	"game-catalog/core/archive"
	"game-catalog/core/database"
	"game-catalog/feature/games/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Lister is the catalog read used by the request adapter and the publisher.
type Lister interface {
	List(ctx context.Context, query string) Result
}

// Service is the catalog reader.
type Service struct {
	opener database.Opener
	links  archive.Config
	logger *zap.Logger
}

// NewService creates a new catalog reader.
func NewService(opener database.Opener, links archive.Config, logger *zap.Logger) *Service {
	return &Service{
		opener: opener,
		links:  links,
		logger: logger,
	}
}

// List returns every game ordered by title, or only those whose title or
// filename contains query (case-insensitive) when query is non-empty.
// Failures are returned inside the Result, never as a Go error.
func (s *Service) List(ctx context.Context, query string) Result {
	db, err := s.opener.Open(ctx, database.ReadOnly)
	if err != nil {
		s.logger.Error("Catalog store unavailable", zap.Error(err))
		return Failure(KindStorageUnavailable, fmt.Sprintf("Server setup error: %v", err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			s.logger.Warn("Failed to close catalog store", zap.Error(err))
		}
	}()

	rows, err := findGames(ctx, db, query)
	if err != nil {
		s.logger.Error("Catalog query failed", zap.String("query", query), zap.Error(err))
		return Failure(KindQueryFailed, fmt.Sprintf("Server database error: %v", err))
	}

	games := make([]models.DisplayRecord, 0, len(rows))
	for _, row := range rows {
		games = append(games, row.ToDisplay(s.links))
	}

	return Result{Games: games}
}

// likeEscaper makes LIKE metacharacters in user input match literally.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func findGames(ctx context.Context, db *gorm.DB, query string) ([]models.Game, error) {
	var rows []models.Game

	tx := db.WithContext(ctx).Model(&models.Game{})
	if query != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		tx = tx.Where("lower(title) LIKE ? ESCAPE '!' OR lower(filename) LIKE ? ESCAPE '!'", pattern, pattern)
	}

	if err := tx.Order("title ASC").Order("filename ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
