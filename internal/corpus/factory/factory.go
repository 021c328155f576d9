package factory

import (
	"context"
	"fmt"

	"github.com/homily-archive/ngram-search/internal/corpus"
	"github.com/homily-archive/ngram-search/internal/corpus/es"
	"github.com/homily-archive/ngram-search/internal/corpus/memory"
	"github.com/homily-archive/ngram-search/internal/corpus/pg"
	"github.com/homily-archive/ngram-search/internal/corpus/sqlite"
)

// NewStore creates the corpus backend named by the config.
func NewStore(ctx context.Context, cfg *StorageConfig) (corpus.Store, error) {
	switch cfg.Type {
	case corpus.SQLite:
		sqliteCfg := sqlite.Config{}
		if cfg.SQLite != nil {
			sqliteCfg = *cfg.SQLite
		}
		return sqlite.NewStore(ctx, sqliteCfg)

	case corpus.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL config for storage type %s", cfg.Type)
		}
		return pg.NewStore(ctx, *cfg.Pg)

	case corpus.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch config for storage type %s", cfg.Type)
		}
		return es.NewStore(ctx, *cfg.Es)

	case corpus.Memory:
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf(string(corpus.ErrUnsupportedStore), cfg.Type)
	}
}
