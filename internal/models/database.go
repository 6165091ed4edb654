package models

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"
)

// Database stores computed channel metrics snapshots in SQLite Cloud.
// Snapshots back the same-day cache in the metrics handler.
type Database struct {
	db *sqlitecloud.SQCloud
}

// NewDatabase connects to SQLite Cloud and ensures the snapshot table exists.
func NewDatabase(connStr string) (*Database, error) {
	log.Printf("Connecting to SQLite Cloud database: %s", maskConnectionString(connStr))

	db, err := sqlitecloud.Connect(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %v", err)
	}

	database := &Database{db: db}
	if err := database.createTables(); err != nil {
		return nil, err
	}
	return database, nil
}

// maskConnectionString hides the API key in logs.
func maskConnectionString(connStr string) string {
	if strings.Contains(connStr, "apikey=") {
		parts := strings.Split(connStr, "apikey=")
		if len(parts) > 1 {
			return parts[0] + "apikey=***"
		}
	}
	return connStr
}

func (d *Database) createTables() error {
	table := `CREATE TABLE IF NOT EXISTS channel_metrics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		channel_id TEXT NOT NULL,
		channel_title TEXT NOT NULL,
		metrics_data TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if err := d.db.Execute(table); err != nil {
		return fmt.Errorf("failed to create table: %v", err)
	}
	index := `CREATE INDEX IF NOT EXISTS idx_channel_metrics_channel_id
		ON channel_metrics(channel_id)`
	if err := d.db.Execute(index); err != nil {
		return fmt.Errorf("failed to create index: %v", err)
	}
	return nil
}

// StoreMetrics appends a new metrics snapshot for a channel.
func (d *Database) StoreMetrics(metrics *ChannelMetrics) error {
	data, err := json.Marshal(metrics)
	if err != nil {
		return err
	}

	sql := `INSERT INTO channel_metrics (channel_id, channel_title, metrics_data)
			VALUES (?, ?, ?)`

	return d.db.ExecuteArray(sql, []interface{}{metrics.ChannelID, metrics.ChannelTitle, string(data)})
}

// GetLatestMetrics retrieves the most recent snapshot for a channel along
// with its creation time. Returns nil without error when no snapshot exists.
func (d *Database) GetLatestMetrics(channelID string) (*ChannelMetrics, time.Time, error) {
	sql := `SELECT metrics_data, created_at FROM channel_metrics
			WHERE channel_id = ?
			ORDER BY created_at DESC LIMIT 1`

	result, err := d.db.SelectArray(sql, []interface{}{channelID})
	if err != nil {
		return nil, time.Time{}, err
	}

	if result.GetNumberOfRows() == 0 {
		return nil, time.Time{}, nil
	}

	data, err := result.GetStringValue(0, 0)
	if err != nil {
		return nil, time.Time{}, err
	}
	createdRaw, err := result.GetStringValue(0, 1)
	if err != nil {
		return nil, time.Time{}, err
	}

	createdAt, err := time.Parse("2006-01-02 15:04:05", createdRaw)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to parse created_at: %v", err)
	}

	var metrics ChannelMetrics
	if err := json.Unmarshal([]byte(data), &metrics); err != nil {
		return nil, time.Time{}, err
	}
	return &metrics, createdAt, nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
