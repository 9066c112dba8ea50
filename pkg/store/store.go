// Package store persists uploaded GEDCOM documents for the HTTP API.
//
// A [Record] keeps the original source text. Documents are re-parsed from
// that text (through the pipeline cache) when they are queried, so stores
// never hold parsed trees. Three backends implement [Store]:
//
//   - [MemoryStore]: process-local, for tests and throwaway servers
//   - [SQLiteStore]: a single database file
//   - [MongoStore]: a MongoDB collection
//
// Record IDs are random UUIDs assigned on [Store.Put].
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("document not found")

// Meta describes a stored document without its source.
type Meta struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Strict      bool      `json:"strict" bson:"strict"`
	Individuals int       `json:"individuals" bson:"individuals"`
	Families    int       `json:"families" bson:"families"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Record is a stored document.
type Record struct {
	Meta   `bson:",inline"`
	Source []byte `json:"-" bson:"source"`
}

// Store persists GEDCOM documents.
type Store interface {
	// Put stores rec. An empty ID is replaced with a new one and a zero
	// CreatedAt with the current time; both are written back to rec.
	Put(ctx context.Context, rec *Record) error
	// Get returns the record with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)
	// List returns all records, newest first.
	List(ctx context.Context) ([]Meta, error)
	// Delete removes a record or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	Close() error
}

// NewID returns a fresh record ID.
func NewID() string { return uuid.NewString() }

func prepare(rec *Record) {
	if rec.ID == "" {
		rec.ID = NewID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
}
