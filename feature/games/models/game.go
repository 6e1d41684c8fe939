package models

import "game-catalog/core/archive"

// Game represents one catalog entry in the 'games' table.
// Filename is the natural key; ID is the identity digest updates are keyed by.
type Game struct {
	ID               uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Filename         string  `gorm:"column:filename;type:varchar(255);uniqueIndex;not null"`
	Title            *string `gorm:"column:title;type:varchar(255)"`
	URL              *string `gorm:"column:url;type:text"` // written on insert, ignored on read
	SizeBytes        *int64  `gorm:"column:size_bytes"`
	Genre            *string `gorm:"column:genre;type:varchar(100)"`
	Description      *string `gorm:"column:description;type:text"`
	SHA256Hash       *string `gorm:"column:sha256_hash;type:varchar(64)"`
	CoverArtFilename *string `gorm:"column:cover_art_filename;type:varchar(255)"`
}

// TableName overrides the table name.
func (Game) TableName() string {
	return "games"
}

// DisplayRecord is the request-scoped view of a Game with absolute links.
type DisplayRecord struct {
	Filename         string  `json:"filename"`
	Title            *string `json:"title"`
	URL              string  `json:"url"`
	SizeBytes        *int64  `json:"size_bytes"`
	Genre            *string `json:"genre"`
	Description      *string `json:"description"`
	SHA256Hash       *string `json:"sha256_hash"`
	CoverArtFilename *string `json:"cover_art_filename"`
	CoverArtURL      *string `json:"cover_art_url"`
}

// ToDisplay builds the display view. Both links come from the configured base
// URLs and the current filenames; the persisted url column is not consulted.
func (g Game) ToDisplay(links archive.Config) DisplayRecord {
	return DisplayRecord{
		Filename:         g.Filename,
		Title:            g.Title,
		URL:              links.DownloadURL(g.Filename),
		SizeBytes:        g.SizeBytes,
		Genre:            g.Genre,
		Description:      g.Description,
		SHA256Hash:       g.SHA256Hash,
		CoverArtFilename: g.CoverArtFilename,
		CoverArtURL:      links.CoverArtURL(g.CoverArtFilename),
	}
}
