package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/homily-archive/ngram-search/internal/corpus"
	"github.com/homily-archive/ngram-search/internal/corpus/es"
	"github.com/homily-archive/ngram-search/internal/corpus/pg"
	"github.com/homily-archive/ngram-search/internal/corpus/sqlite"
	"github.com/homily-archive/ngram-search/pkg/utils"
)

type StorageConfig struct {
	corpus.Type
	SQLite *sqlite.Config
	Pg     *pg.Config
	Es     *es.ClientConfig
}

// LoadEnv reads STORAGE_TYPE plus the backend-specific variables. An
// unset STORAGE_TYPE falls back to the bundled SQLite archive so the
// binaries run without any configuration.
func LoadEnv() (*StorageConfig, error) {
	storageType := (corpus.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE not set, defaulting to sqlite")
		storageType = corpus.SQLite
	}
	if storageType != corpus.SQLite && storageType != corpus.ES &&
		storageType != corpus.PG && storageType != corpus.Memory {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]corpus.Type{corpus.SQLite, corpus.PG, corpus.ES, corpus.Memory})
	}

	var sqliteCfg *sqlite.Config
	if storageType == corpus.SQLite {
		sqliteCfg = &sqlite.Config{
			Path: os.Getenv("SQLITE_PATH"),
		}
	}

	var esCfg *es.ClientConfig
	if storageType == corpus.ES {
		esCfg = &es.ClientConfig{
			Addresses: utils.SplitNonEmpty(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(esCfg.Addresses) == 0 || esCfg.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
	}

	var pgCfg *pg.Config
	if storageType == corpus.PG {
		pgCfg = &pg.Config{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return &StorageConfig{
		Type:   storageType,
		SQLite: sqliteCfg,
		Pg:     pgCfg,
		Es:     esCfg,
	}, nil
}
