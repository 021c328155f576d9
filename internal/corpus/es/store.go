package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"

	"github.com/homily-archive/ngram-search/internal/corpus"
	"github.com/homily-archive/ngram-search/internal/domain"
)

const scanPageSize = 500

// Store mirrors the corpus into an Elasticsearch index. Phrase counting
// happens in the engine, so the index is a document store here, not a
// search backend.
type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
	config    ClientConfig
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	store := &Store{
		client:    client,
		indexName: config.IndexName,
		config:    config,
	}

	if err := store.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return store, nil
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	existsRes, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := buildMapping()

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping Elasticsearch: %w", err)
	}
	if !ok {
		return fmt.Errorf("elasticsearch cluster did not respond")
	}
	return nil
}

func (s *Store) Save(ctx context.Context, doc domain.Document) error {
	indexDoc := toIndexDocument(doc)

	res, err := s.client.Index(s.indexName).Id(indexDoc.ID).Document(indexDoc).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	slog.Info("document indexed successfully", "id", indexDoc.ID, "index", s.indexName, "result", res.Result)
	return nil
}

func (s *Store) SaveBulk(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         s.indexName,
		Client:        s.client,
		NumWorkers:    4,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
	})

	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed int64

	for _, doc := range docs {
		indexDoc := toIndexDocument(doc)

		docBytes, err := json.Marshal(indexDoc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", indexDoc.ID)
			failed++
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: indexDoc.ID,
				Body:       bytes.NewReader(docBytes),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					successful++
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed++
					if err != nil {
						slog.Error("bulk index error", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			failed++
			slog.Error("failed to add document to bulk indexer", "error", err, "id", indexDoc.ID)
		}
	}

	// Close the indexer and wait for completion
	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful,
		"failed", failed,
		"total", len(docs),
		"index", s.indexName)

	if failed > 0 {
		return fmt.Errorf("failed to index %d out of %d documents", failed, len(docs))
	}

	return nil
}

func (s *Store) ActiveDocuments(ctx context.Context, lang domain.Language) ([]domain.Document, error) {
	textField := lang.Name() + "_text"
	query := &types.Query{
		Bool: &types.BoolQuery{
			Filter: []types.Query{
				{Term: map[string]types.TermQuery{"status": {Value: string(domain.StatusActive)}}},
				{Exists: &types.ExistsQuery{Field: textField}},
			},
		},
	}
	return s.scan(ctx, query, true)
}

func (s *Store) List(ctx context.Context) ([]domain.Document, error) {
	query := &types.Query{
		MatchAll: &types.MatchAllQuery{},
	}
	return s.scan(ctx, query, false)
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (domain.Document, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	if !res.Found {
		return domain.Document{}, corpus.ErrNotFound
	}

	var doc homilyDocument
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("failed to unmarshal document %s: %w", id, err)
	}
	return doc.toDomain()
}

func (s *Store) Stats(ctx context.Context) (domain.CorpusStats, error) {
	docs, err := s.scan(ctx, &types.Query{MatchAll: &types.MatchAllQuery{}}, true)
	if err != nil {
		return domain.CorpusStats{}, err
	}

	stats := domain.CorpusStats{
		TotalDocuments: len(docs),
		Languages:      make(map[domain.Language]domain.LanguageStats),
	}
	for _, doc := range docs {
		if doc.Status == domain.StatusActive {
			stats.ActiveDocuments++
		}
		if stats.EarliestDate.IsZero() || doc.Date.Before(stats.EarliestDate) {
			stats.EarliestDate = doc.Date
		}
		if doc.Date.After(stats.LatestDate) {
			stats.LatestDate = doc.Date
		}
		for _, lang := range domain.Languages {
			if !doc.HasText(lang) {
				continue
			}
			ls := stats.Languages[lang]
			ls.DocumentsWithText++
			ls.TotalWords += doc.WordCount(lang)
			stats.Languages[lang] = ls
		}
	}
	return stats, nil
}

// scan pages through the index with search_after on (date, id) so every
// matching document comes back in a stable order.
func (s *Store) scan(ctx context.Context, query *types.Query, includeTexts bool) ([]domain.Document, error) {
	sortOrderAsc := sortorder.Asc
	var docs []domain.Document
	var after []types.FieldValue

	for {
		searchReq := s.client.Search().
			Index(s.indexName).
			Query(query).
			Size(scanPageSize).
			Sort(
				&types.SortOptions{
					SortOptions: map[string]types.FieldSort{
						"date": {Order: &sortOrderAsc},
					},
				},
				&types.SortOptions{
					SortOptions: map[string]types.FieldSort{
						"id": {Order: &sortOrderAsc},
					},
				},
			)

		if after != nil {
			searchReq = searchReq.SearchAfter(after...)
		}

		res, err := searchReq.Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to execute scan: %w", err)
		}

		for _, hit := range res.Hits.Hits {
			var indexDoc homilyDocument
			if err := json.Unmarshal(hit.Source_, &indexDoc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal document: %w", err)
			}
			doc, err := indexDoc.toDomain()
			if err != nil {
				return nil, err
			}
			if !includeTexts {
				doc.SpanishText = ""
				doc.EnglishText = ""
			}
			docs = append(docs, doc)
		}

		if len(res.Hits.Hits) < scanPageSize {
			break
		}
		after = res.Hits.Hits[len(res.Hits.Hits)-1].Sort_
	}

	return docs, nil
}

// Compile-time interface assertions
var _ corpus.Store = (*Store)(nil)
