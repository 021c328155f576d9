package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/homily-archive/ngram-search/internal/corpus"
	"github.com/homily-archive/ngram-search/internal/domain"
)

// Store keeps the corpus in a mutex-guarded map. Used by tests and as the
// MEMORY backend for throwaway runs.
type Store struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]domain.Document
}

func NewStore() *Store {
	return &Store{
		docs: make(map[uuid.UUID]domain.Document),
	}
}

func (s *Store) Save(ctx context.Context, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	s.docs[doc.ID] = doc
	return nil
}

func (s *Store) SaveBulk(ctx context.Context, docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range docs {
		if doc.ID == uuid.Nil {
			doc.ID = uuid.New()
		}
		s.docs[doc.ID] = doc
	}
	return nil
}

func (s *Store) ActiveDocuments(ctx context.Context, lang domain.Language) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Document
	for _, doc := range s.docs {
		if doc.Searchable(lang) {
			out = append(out, doc)
		}
	}
	sortByDate(out)
	return out, nil
}

func (s *Store) List(ctx context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Document
	for _, doc := range s.docs {
		doc.SpanishText = ""
		doc.EnglishText = ""
		out = append(out, doc)
	}
	sortByDate(out)
	return out, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, corpus.ErrNotFound
	}
	return doc, nil
}

func (s *Store) Stats(ctx context.Context) (domain.CorpusStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.CorpusStats{
		Languages: make(map[domain.Language]domain.LanguageStats),
	}
	for _, doc := range s.docs {
		stats.TotalDocuments++
		if doc.Status == domain.StatusActive {
			stats.ActiveDocuments++
		}
		if !doc.Date.IsZero() {
			if stats.EarliestDate.IsZero() || doc.Date.Before(stats.EarliestDate) {
				stats.EarliestDate = doc.Date
			}
			if doc.Date.After(stats.LatestDate) {
				stats.LatestDate = doc.Date
			}
		}
		for _, lang := range domain.Languages {
			if doc.HasText(lang) {
				ls := stats.Languages[lang]
				ls.DocumentsWithText++
				ls.TotalWords += doc.WordCount(lang)
				stats.Languages[lang] = ls
			}
		}
	}
	return stats, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func sortByDate(docs []domain.Document) {
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].Date.Equal(docs[j].Date) {
			return docs[i].Date.Before(docs[j].Date)
		}
		return docs[i].ID.String() < docs[j].ID.String()
	})
}
