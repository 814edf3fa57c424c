// Package sqlite provides a Persister backed by a single-file SQLite
// database, for running a durable ledger without standing up Consul.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/scripledger/scrip/pkg/api"
)

// Persister stores the whole partition as one JSON document in a one-row
// table, replaced on every write. A single UPSERT is atomic in SQLite, so
// readers see either the old snapshot or the new one, never a mix.
type Persister struct {
	db *sql.DB
}

func Open(path string) (*Persister, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// The ledger serializes its own writes, and SQLite allows only one
	// writer regardless.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS ranges (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		doc BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create ranges table: %w", err)
	}

	return &Persister{db: db}, nil
}

func (sp *Persister) Close() error {
	return sp.db.Close()
}

func (sp *Persister) GetRanges() ([]*api.Range, error) {
	var doc []byte

	err := sp.db.QueryRow(`SELECT doc FROM ranges WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return []*api.Range{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select ranges: %w", err)
	}

	out := []*api.Range{}
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil, fmt.Errorf("decode ranges: %w", err)
	}

	return out, nil
}

func (sp *Persister) PutRanges(ranges []*api.Range) error {
	doc, err := json.Marshal(ranges)
	if err != nil {
		return err
	}

	if _, err := sp.db.Exec(`INSERT INTO ranges (id, doc) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET doc = excluded.doc`, doc); err != nil {
		return fmt.Errorf("upsert ranges: %w", err)
	}

	return nil
}
