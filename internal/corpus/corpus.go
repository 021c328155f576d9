package corpus

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/homily-archive/ngram-search/internal/domain"
)

// Reader supplies the search engine's universe: active documents with a
// transcript in the requested language, in no particular order.
type Reader interface {
	ActiveDocuments(ctx context.Context, lang domain.Language) ([]domain.Document, error)
}

// Catalog serves the browse and health surfaces. List omits transcript
// bodies; Get returns the full record.
type Catalog interface {
	List(ctx context.Context) ([]domain.Document, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Document, error)
	Stats(ctx context.Context) (domain.CorpusStats, error)
}

type Storer interface {
	Save(ctx context.Context, doc domain.Document) error
	SaveBulk(ctx context.Context, docs []domain.Document) error
}

// Pinger reports backend reachability for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is the full backend surface; every backend implements all of it.
type Store interface {
	Reader
	Catalog
	Storer
	Pinger
}

type Type string

const (
	SQLite Type = "sqlite"
	PG     Type = "pg"
	ES     Type = "es"
	Memory Type = "memory"
)

var ErrNotFound = errors.New("document not found")

type StoreError string

const (
	ErrUnsupportedStore StoreError = "unsupported store type: %s"
)

func (e StoreError) Error() string {
	return string(e)
}
