package database

import (
	"database/sql"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // pure Go driver, no cgo

	"CalendarScraper/internal/models"
)

// ChannelRepository wraps the sqlite channel→website lookup table consumed
// when decorating scraped records with watch-now links.
type ChannelRepository struct {
	DB *sql.DB
}

// InitDB opens the channel database, creating the schema if needed.
func InitDB(filepath string) (*ChannelRepository, error) {
	db, err := sql.Open("sqlite", filepath)
	if err != nil {
		return nil, eris.Wrap(err, "database: open")
	}
	if err = db.Ping(); err != nil {
		return nil, eris.Wrap(err, "database: ping")
	}

	createChannelsTableSQL := `
	CREATE TABLE IF NOT EXISTS channels (
		"id" INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
		"channel" TEXT UNIQUE,
		"website" TEXT,
		"country" TEXT DEFAULT 'US'
	);`

	if _, err = db.Exec(createChannelsTableSQL); err != nil {
		return nil, eris.Wrap(err, "database: create channels table")
	}

	return &ChannelRepository{DB: db}, nil
}

// Close closes the database connection.
func (repo *ChannelRepository) Close() {
	repo.DB.Close()
}

// SeedFromYAML upserts every channel from the seed file. A missing file is
// not an error; the store just starts empty.
func (repo *ChannelRepository) SeedFromYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			zap.L().Warn("channel seed file not found", zap.String("path", path))
			return nil
		}
		return eris.Wrap(err, "database: read seed file")
	}

	var channels []models.Channel
	if err := yaml.Unmarshal(data, &channels); err != nil {
		return eris.Wrap(err, "database: parse seed file")
	}

	for _, ch := range channels {
		if err := repo.SaveChannel(ch); err != nil {
			return err
		}
	}

	zap.L().Info("channel database seeded", zap.Int("channels", len(channels)))
	return nil
}

// SaveChannel inserts or updates one channel row.
func (repo *ChannelRepository) SaveChannel(ch models.Channel) error {
	query := `
	INSERT INTO channels (channel, website, country) VALUES (?, ?, ?)
	ON CONFLICT(channel) DO UPDATE SET website=excluded.website, country=excluded.country;`

	if _, err := repo.DB.Exec(query, ch.Name, ch.Website, ch.Country); err != nil {
		return eris.Wrapf(err, "database: save channel %q", ch.Name)
	}
	return nil
}

// Lookup returns the website for a channel name. Matching is exact and
// case-insensitive; partial matching picks wrong channels. ok is false when
// the channel is unknown or has no usable website on record.
func (repo *ChannelRepository) Lookup(channel string) (website string, ok bool) {
	row := repo.DB.QueryRow(
		`SELECT website FROM channels WHERE LOWER(channel) = ?`,
		strings.ToLower(strings.TrimSpace(channel)),
	)
	if err := row.Scan(&website); err != nil {
		return "", false
	}
	if website == "" || website == "N/A" {
		return "", false
	}
	return website, true
}

// All returns every stored channel ordered by name.
func (repo *ChannelRepository) All() ([]models.Channel, error) {
	rows, err := repo.DB.Query(`SELECT id, channel, website, country FROM channels ORDER BY channel`)
	if err != nil {
		return nil, eris.Wrap(err, "database: list channels")
	}
	defer rows.Close()

	var channels []models.Channel
	for rows.Next() {
		var ch models.Channel
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.Website, &ch.Country); err != nil {
			zap.L().Warn("error scanning channel row", zap.Error(err))
			continue
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}
