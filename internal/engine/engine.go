package engine

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/homily-archive/ngram-search/internal/apperr"
	"github.com/homily-archive/ngram-search/internal/corpus"
	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/token"
)

// Engine computes phrase frequency over the corpus. Every search is a full
// scan of the active document set; nothing is indexed or cached between
// calls, and repeated queries over an unchanged corpus return identical
// results.
type Engine struct {
	corpus corpus.Reader
}

func New(corpus corpus.Reader) *Engine {
	return &Engine{corpus: corpus}
}

// Search tokenizes term under the configured matching rules, scans every
// active document in the requested language, and aggregates occurrence
// counts into a gap-free monthly series covering the corpus date range.
func (e *Engine) Search(ctx context.Context, term string, cfg domain.QueryConfig) (domain.SearchResult, error) {
	started := time.Now()

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return domain.SearchResult{}, apperr.NewValidationWrap("invalid search options", err)
	}

	normalizer := token.NewNormalizer(cfg.AccentSensitive)
	phrase := normalizer.Tokens(term)
	if len(phrase) == 0 {
		return domain.SearchResult{}, apperr.NewValidation("enter a search term")
	}

	docs, err := e.corpus.ActiveDocuments(ctx, cfg.Language)
	if err != nil {
		return domain.SearchResult{}, apperr.NewUnavailable("corpus", err)
	}
	sortDocuments(docs)

	type accum struct {
		rawCount   int
		totalWords int
		docCount   int
		matches    []domain.DocumentMatch
	}

	byMonth := make(map[domain.Month]*accum)
	var (
		first, last domain.Month
		haveRange   bool
		totalCount  int
		totalDocs   int
	)

	for _, doc := range docs {
		if doc.Date.IsZero() {
			slog.Warn("skipping document without a date", "id", doc.ID)
			continue
		}
		text := doc.Text(cfg.Language)
		if !utf8.ValidString(text) {
			slog.Warn("skipping document with malformed text", "id", doc.ID, "date", doc.Date)
			continue
		}

		tokens := normalizer.Tokens(text)
		count := countOccurrences(tokens, phrase)

		month := domain.MonthOf(doc.Date)
		if !haveRange {
			first, last = month, month
			haveRange = true
		} else {
			if month.Before(first) {
				first = month
			}
			if last.Before(month) {
				last = month
			}
		}

		b := byMonth[month]
		if b == nil {
			b = &accum{}
			byMonth[month] = b
		}
		b.totalWords += len(tokens)
		b.docCount++

		if count > 0 {
			b.rawCount += count
			totalCount += count
			totalDocs++
			b.matches = append(b.matches, domain.DocumentMatch{
				ID:        doc.ID,
				Date:      doc.Date,
				Title:     doc.Title(cfg.Language),
				DetailURL: doc.DetailURL,
				Count:     count,
			})
		}
	}

	if !haveRange {
		return domain.SearchResult{}, apperr.NewUnavailable("corpus",
			errors.New("no searchable documents for language "+string(cfg.Language)))
	}

	months := domain.MonthsBetween(first, last)
	buckets := make([]domain.MonthBucket, len(months))
	values := make([]float64, len(months))
	for i, m := range months {
		bucket := domain.MonthBucket{Month: m}
		if b := byMonth[m]; b != nil {
			bucket.RawCount = b.rawCount
			bucket.TotalWords = b.totalWords
			bucket.DocumentCount = b.docCount
			bucket.Documents = b.matches
		}
		values[i] = normalize(cfg.Normalization, bucket)
		buckets[i] = bucket
	}

	// Smoothing reshapes the displayed value only; raw counts stay exact
	// for drill-down.
	values = smooth(values, cfg.SmoothingWindow)
	for i := range buckets {
		buckets[i].Value = values[i]
	}

	result := domain.SearchResult{
		Term:           term,
		Tokens:         phrase,
		Config:         cfg,
		Elapsed:        time.Since(started),
		TotalCount:     totalCount,
		TotalDocuments: totalDocs,
		Months:         buckets,
	}

	slog.Info("search completed",
		"term", term,
		"language", cfg.Language,
		"total_count", totalCount,
		"total_documents", totalDocs,
		"months", len(buckets),
		"elapsed", result.Elapsed)

	return result, nil
}

func normalize(mode domain.NormalizationMode, b domain.MonthBucket) float64 {
	switch mode {
	case domain.NormPer10kWords:
		if b.TotalWords == 0 {
			return 0
		}
		return float64(b.RawCount) * 10000 / float64(b.TotalWords)
	case domain.NormPerDocument:
		if b.DocumentCount == 0 {
			return 0
		}
		return float64(b.RawCount) / float64(b.DocumentCount)
	default:
		return float64(b.RawCount)
	}
}

// sortDocuments fixes the scan order to (date, id) so results never depend
// on how a backend happens to return rows.
func sortDocuments(docs []domain.Document) {
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].Date.Equal(docs[j].Date) {
			return docs[i].Date.Before(docs[j].Date)
		}
		return docs[i].ID.String() < docs[j].ID.String()
	})
}
