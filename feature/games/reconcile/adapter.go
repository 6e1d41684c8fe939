package reconcile

import (
	"context"
	"path/filepath"
	"strings"

	"game-catalog/core/archive"
	"game-catalog/core/reconcile"
	"game-catalog/feature/games/models"

	"gorm.io/gorm"
)

// GamesAdapter implements reconcile.Adapter for the games table.
type GamesAdapter struct {
	links archive.Config
}

// NewAdapter creates a games adapter. links builds the url stored on insert.
func NewAdapter(links archive.Config) *GamesAdapter {
	return &GamesAdapter{links: links}
}

// Name returns the unique name of this adapter.
func (a *GamesAdapter) Name() string {
	return "games"
}

// LoadIndex loads id, filename and digest of every game.
// Should a filename appear twice, the oldest record wins.
func (a *GamesAdapter) LoadIndex(ctx context.Context, db *gorm.DB) (map[string]reconcile.Entry, error) {
	var rows []models.Game
	err := db.WithContext(ctx).
		Model(&models.Game{}).
		Select("id", "filename", "sha256_hash").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	index := make(map[string]reconcile.Entry, len(rows))
	for _, row := range rows {
		if _, exists := index[row.Filename]; exists {
			continue
		}
		index[row.Filename] = reconcile.Entry{ID: row.ID, Digest: row.SHA256Hash}
	}
	return index, nil
}

// Insert registers a new game for file.
func (a *GamesAdapter) Insert(ctx context.Context, tx *gorm.DB, file reconcile.FileInfo) error {
	game := a.newGame(file)
	return tx.WithContext(ctx).Create(&game).Error
}

// InsertBatch registers several new games in one statement per 100 rows.
func (a *GamesAdapter) InsertBatch(ctx context.Context, tx *gorm.DB, files []reconcile.FileInfo) error {
	games := make([]models.Game, 0, len(files))
	for _, file := range files {
		games = append(games, a.newGame(file))
	}
	return tx.WithContext(ctx).CreateInBatches(&games, 100).Error
}

// UpdateDigest stores digest and size on the game with the given id.
func (a *GamesAdapter) UpdateDigest(ctx context.Context, tx *gorm.DB, id uint, file reconcile.FileInfo) error {
	return tx.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sha256_hash": file.Digest,
			"size_bytes":  file.Size,
		}).Error
}

func (a *GamesAdapter) newGame(file reconcile.FileInfo) models.Game {
	url := a.links.DownloadURL(file.Name)
	title := DeriveTitle(file.Name)
	size := file.Size
	sum := file.Digest
	return models.Game{
		Filename:   file.Name,
		Title:      &title,
		URL:        &url,
		SizeBytes:  &size,
		SHA256Hash: &sum,
	}
}

// DeriveTitle turns a filename into a display title: the extension is
// dropped and underscores become spaces. Leading dots do not start an
// extension, so ".hidden" keeps its name.
func DeriveTitle(filename string) string {
	stem := filename
	trimmed := strings.TrimLeft(filename, ".")
	if ext := filepath.Ext(trimmed); ext != "" {
		stem = filename[:len(filename)-len(ext)]
	}
	return strings.ReplaceAll(stem, "_", " ")
}
