// Package persistence provides SQLite-based storage for generated maps.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexlands/internal/world"
)

// ErrNotFound is returned when a requested map does not exist.
var ErrNotFound = errors.New("map not found")

// DB wraps a SQLite connection for map storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		num_regions INTEGER NOT NULL,
		regions_json TEXT NOT NULL,
		adjacency_json TEXT NOT NULL,
		region_terrain_json TEXT NOT NULL,
		hex_terrain_json TEXT NOT NULL,
		elevation_json TEXT NOT NULL,
		moisture_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS map_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_maps_created ON maps(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// MapSummary is the listing row for a stored map.
type MapSummary struct {
	ID         string `db:"id" json:"id"`
	CreatedAt  string `db:"created_at" json:"created_at"`
	Seed       int64  `db:"seed" json:"seed"`
	Width      int    `db:"width" json:"width"`
	Height     int    `db:"height" json:"height"`
	NumRegions int    `db:"num_regions" json:"num_regions"`
}

// SaveMap stores a generated map and returns its new id.
func (db *DB) SaveMap(m *world.MapData) (string, error) {
	id := uuid.NewString()

	regionsJSON, _ := json.Marshal(m.Regions)
	adjJSON, _ := json.Marshal(m.Adjacency)
	regionTerrainJSON, _ := json.Marshal(m.RegionTerrain)
	hexTerrainJSON, _ := json.Marshal(m.HexTerrain)
	elevJSON, _ := json.Marshal(m.Elevation)
	moistJSON, _ := json.Marshal(m.Moisture)

	_, err := db.conn.Exec(`INSERT INTO maps
		(id, created_at, seed, width, height, num_regions,
		 regions_json, adjacency_json, region_terrain_json, hex_terrain_json,
		 elevation_json, moisture_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), m.Seed,
		m.Grid.Width, m.Grid.Height, len(m.RegionTerrain),
		string(regionsJSON), string(adjJSON), string(regionTerrainJSON),
		string(hexTerrainJSON), string(elevJSON), string(moistJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert map: %w", err)
	}

	slog.Info("map saved", "id", id, "seed", m.Seed, "hexes", m.Grid.Size())
	return id, nil
}

// LoadMap retrieves a stored map by id.
func (db *DB) LoadMap(id string) (*world.MapData, error) {
	var row struct {
		Seed              int64  `db:"seed"`
		Width             int    `db:"width"`
		Height            int    `db:"height"`
		RegionsJSON       string `db:"regions_json"`
		AdjacencyJSON     string `db:"adjacency_json"`
		RegionTerrainJSON string `db:"region_terrain_json"`
		HexTerrainJSON    string `db:"hex_terrain_json"`
		ElevationJSON     string `db:"elevation_json"`
		MoistureJSON      string `db:"moisture_json"`
	}

	err := db.conn.Get(&row, `SELECT seed, width, height,
		regions_json, adjacency_json, region_terrain_json, hex_terrain_json,
		elevation_json, moisture_json
		FROM maps WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", id, err)
	}

	m := &world.MapData{
		Grid: world.Grid{Width: row.Width, Height: row.Height},
		Seed: row.Seed,
	}
	fields := []struct {
		raw string
		dst any
	}{
		{row.RegionsJSON, &m.Regions},
		{row.AdjacencyJSON, &m.Adjacency},
		{row.RegionTerrainJSON, &m.RegionTerrain},
		{row.HexTerrainJSON, &m.HexTerrain},
		{row.ElevationJSON, &m.Elevation},
		{row.MoistureJSON, &m.Moisture},
	}
	for _, f := range fields {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return nil, fmt.Errorf("decode map %s: %w", id, err)
		}
	}

	return m, nil
}

// ListMaps returns the most recent stored maps, newest first.
func (db *DB) ListMaps(limit int) ([]MapSummary, error) {
	var maps []MapSummary
	err := db.conn.Select(&maps, `SELECT id, created_at, seed, width, height, num_regions
		FROM maps ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	return maps, nil
}

// DeleteMap removes a stored map. Deleting a missing map is not an error.
func (db *DB) DeleteMap(id string) error {
	_, err := db.conn.Exec("DELETE FROM maps WHERE id = ?", id)
	return err
}

// SaveMeta stores a key-value pair in map metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO map_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM map_meta WHERE key = ?", key)
	return value, err
}
