package games_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"game-catalog/core/archive"
	"game-catalog/core/database"
	"game-catalog/feature/games/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var testLinks = archive.Config{
	DownloadBaseURL: "http://localhost:8080/wii_games/",
	CoverArtBaseURL: "http://localhost:8080/boxart/",
}

func strPtr(s string) *string {
	return &s
}

// seedStore creates a sqlite catalog in a temp dir holding games.
func seedStore(t *testing.T, games ...models.Game) database.ConfigOpener {
	t.Helper()

	cfg := database.Config{Driver: database.DriverSQLite, Path: filepath.Join(t.TempDir(), "games.db")}
	require.NoError(t, os.WriteFile(cfg.Path, nil, 0o644))

	db, err := database.Connect(context.Background(), cfg, database.ReadWrite)
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, db.AutoMigrate(&models.Game{}))
	for i := range games {
		require.NoError(t, db.Create(&games[i]).Error)
	}

	return database.ConfigOpener{Config: cfg}
}

// mockOpener hands out one sqlmock-backed connection.
type mockOpener struct {
	db  *gorm.DB
	err error
}

func (m *mockOpener) Open(ctx context.Context, mode database.Mode) (*gorm.DB, error) {
	return m.db, m.err
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}
