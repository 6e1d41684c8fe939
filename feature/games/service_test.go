package games_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"game-catalog/core/database"
	"game-catalog/feature/games"
	"game-catalog/feature/games/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func catalogFixture() []models.Game {
	size := int64(4699979776)
	return []models.Game{
		{Filename: "zelda_tp.iso", Title: strPtr("Zelda"), URL: strPtr("http://stale-host/zelda_tp.iso"), SizeBytes: &size},
		{Filename: "mario_kart.wbfs", Title: strPtr("Mario Kart"), CoverArtFilename: strPtr("RMCE01.png"), SHA256Hash: strPtr("abc123")},
		{Filename: "metroid.iso", Title: strPtr("Metroid"), Genre: strPtr("Adventure")},
		{Filename: "orange.iso", Title: strPtr("100% Orange Juice")},
		{Filename: "smash.iso", Title: strPtr("brawl")},
		{Filename: "MARIO_PARTY.ISO", Title: strPtr("Party Time")},
	}
}

func titles(records []models.DisplayRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		if r.Title == nil {
			out = append(out, "")
			continue
		}
		out = append(out, *r.Title)
	}
	return out
}

func TestService_ListAll(t *testing.T) {
	opener := seedStore(t, catalogFixture()...)
	svc := games.NewService(opener, testLinks, zap.NewNop())

	result := svc.List(context.Background(), "")
	require.False(t, result.Failed())
	require.Len(t, result.Games, 6)

	got := titles(result.Games)
	assert.True(t, sort.StringsAreSorted(got), "titles not sorted: %v", got)
	assert.Equal(t, "100% Orange Juice", got[0])
	assert.Equal(t, "brawl", got[5]) // binary collation sorts lower case last
}

func TestService_ListSearch(t *testing.T) {
	opener := seedStore(t, catalogFixture()...)
	svc := games.NewService(opener, testLinks, zap.NewNop())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"TitlePrefix", "mar", []string{"Mario Kart", "Party Time"}},
		{"UpperCaseQuery", "MARIO", []string{"Mario Kart", "Party Time"}},
		{"FilenameOnly", "tp.iso", []string{"Zelda"}},
		{"Middle", "roi", []string{"Metroid"}},
		{"PercentIsLiteral", "%", []string{"100% Orange Juice"}},
		{"UnderscoreIsLiteral", "_", []string{"Mario Kart", "Party Time", "Zelda"}},
		{"NoMatch", "sonic", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.List(context.Background(), tt.query)
			require.False(t, result.Failed())
			assert.Equal(t, tt.want, titles(result.Games))

			needle := strings.ToLower(tt.query)
			for _, g := range result.Games {
				matched := strings.Contains(strings.ToLower(*g.Title), needle) ||
					strings.Contains(strings.ToLower(g.Filename), needle)
				assert.True(t, matched, "%s does not match %q", g.Filename, tt.query)
			}
		})
	}
}

func TestService_ListSearchScenario(t *testing.T) {
	opener := seedStore(t,
		models.Game{Filename: "a.iso", Title: strPtr("Mario Kart")},
		models.Game{Filename: "b.iso", Title: strPtr("Metroid")},
	)
	svc := games.NewService(opener, testLinks, zap.NewNop())

	result := svc.List(context.Background(), "mar")
	require.False(t, result.Failed())
	assert.Equal(t, []string{"Mario Kart"}, titles(result.Games))
}

func TestService_ListRebuildsLinks(t *testing.T) {
	opener := seedStore(t, catalogFixture()...)
	svc := games.NewService(opener, testLinks, zap.NewNop())

	result := svc.List(context.Background(), "")
	require.False(t, result.Failed())

	for _, g := range result.Games {
		assert.Equal(t, testLinks.DownloadBaseURL+g.Filename, g.URL)
		if g.CoverArtFilename == nil {
			assert.Nil(t, g.CoverArtURL)
		} else {
			require.NotNil(t, g.CoverArtURL)
			assert.Equal(t, testLinks.CoverArtBaseURL+*g.CoverArtFilename, *g.CoverArtURL)
		}
	}
}

func TestService_ListEmptyStore(t *testing.T) {
	svc := games.NewService(seedStore(t), testLinks, zap.NewNop())

	result := svc.List(context.Background(), "")
	require.False(t, result.Failed())
	assert.NotNil(t, result.Games)
	assert.Empty(t, result.Games)
}

func TestService_ListStorageUnavailable(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		opener := database.ConfigOpener{Config: database.Config{
			Driver: database.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "missing.db"),
		}}
		svc := games.NewService(opener, testLinks, zap.NewNop())

		result := svc.List(context.Background(), "")
		assert.True(t, result.Failed())
		assert.Equal(t, games.KindStorageUnavailable, result.Kind)
		assert.Contains(t, result.Error, "missing.db")
		assert.Nil(t, result.Games)
	})

	t.Run("OpenerError", func(t *testing.T) {
		svc := games.NewService(&mockOpener{err: errors.New("refused")}, testLinks, zap.NewNop())

		result := svc.List(context.Background(), "mario")
		assert.Equal(t, games.KindStorageUnavailable, result.Kind)
	})
}

func TestService_ListQueryFailed(t *testing.T) {
	t.Run("MissingTable", func(t *testing.T) {
		svc := games.NewService(seedStoreWithoutTable(t), testLinks, zap.NewNop())

		result := svc.List(context.Background(), "")
		assert.Equal(t, games.KindQueryFailed, result.Kind)
		assert.Nil(t, result.Games)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `games`").WillReturnError(errors.New("disk I/O error"))
		mock.ExpectClose()

		svc := games.NewService(&mockOpener{db: db}, testLinks, zap.NewNop())
		result := svc.List(context.Background(), "mario")

		assert.Equal(t, games.KindQueryFailed, result.Kind)
		assert.Contains(t, result.Error, "disk I/O error")
		assert.Nil(t, result.Games)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryIsParameterized", func(t *testing.T) {
		db, mock := setupMockDB(t)
		pattern := "%robert'); drop table games;--%"
		mock.ExpectQuery("SELECT \\* FROM `games` WHERE").
			WithArgs(pattern, pattern).
			WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "title"}))
		mock.ExpectClose()

		svc := games.NewService(&mockOpener{db: db}, testLinks, zap.NewNop())
		result := svc.List(context.Background(), "Robert'); DROP TABLE games;--")

		require.False(t, result.Failed())
		assert.Empty(t, result.Games)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func seedStoreWithoutTable(t *testing.T) database.ConfigOpener {
	t.Helper()
	opener := seedStore(t)

	db, err := database.Connect(context.Background(), opener.Config, database.ReadWrite)
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, db.Migrator().DropTable(&models.Game{}))

	return opener
}

func TestService_ListNullTitle(t *testing.T) {
	opener := seedStore(t,
		models.Game{Filename: "mario.iso", Title: strPtr("Mario")},
		models.Game{Filename: "unknown.iso"},
	)
	svc := games.NewService(opener, testLinks, zap.NewNop())

	result := svc.List(context.Background(), "unknown")
	require.False(t, result.Failed())
	require.Len(t, result.Games, 1)
	assert.Nil(t, result.Games[0].Title)

	body, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"title":null`)

	all := svc.List(context.Background(), "")
	assert.Equal(t, []string{"", "Mario"}, titles(all.Games), "NULL titles sort first")
}
