// seehuhn.de/go/chute - parachute pattern design
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package store keeps design documents in an SQLite database.
package store

import (
	"bytes"
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"seehuhn.de/go/chute"
)

// ErrNotFound is returned when no design with the given ID exists.
var ErrNotFound = errors.New("design not found")

// timeLayout is a fixed-width timestamp format, so that stored times sort
// correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

//go:embed schema.sql
var schema string

// Record describes a stored design.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository stores designs as JSON documents.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// New returns a repository using db.  Call [Repository.Init] before use.
func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// OpenSQLite opens the database file at dbPath, creating it and its
// directory if needed.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Init creates the tables, if they do not exist yet.
func (r *Repository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Create stores a new design and returns its ID.
func (r *Repository) Create(ctx context.Context, d *chute.Designer) (string, error) {
	doc, err := encode(d)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	now := r.timestamp()
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO designs (id, name, document, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
    `, id, d.Name, doc, now, now)
	if err != nil {
		return "", fmt.Errorf("insert design: %w", err)
	}
	return id, nil
}

// Get loads the design with the given ID.  The formulas of the returned
// design have been evaluated.
func (r *Repository) Get(ctx context.Context, id string) (*chute.Designer, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT document
        FROM designs
        WHERE id = ?
    `, id)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return chute.Load(bytes.NewReader(doc))
}

// Update replaces the design with the given ID.
func (r *Repository) Update(ctx context.Context, id string, d *chute.Designer) error {
	doc, err := encode(d)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
        UPDATE designs
        SET name = ?, document = ?, updated_at = ?
        WHERE id = ?
    `, d.Name, doc, r.timestamp(), id)
	if err != nil {
		return fmt.Errorf("update design: %w", err)
	}
	return checkAffected(res)
}

// Delete removes the design with the given ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	return checkAffected(res)
}

// List returns all stored designs, oldest first.
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, created_at, updated_at
        FROM designs
        ORDER BY created_at, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Record
	for rows.Next() {
		var rec Record
		var created, updated string
		if err := rows.Scan(&rec.ID, &rec.Name, &created, &updated); err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, err
		}
		if rec.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *Repository) timestamp() string {
	return r.now().UTC().Format(timeLayout)
}

func encode(d *chute.Designer) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := d.Save(buf); err != nil {
		return nil, fmt.Errorf("encode design: %w", err)
	}
	return buf.Bytes(), nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
