package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homily-archive/ngram-search/internal/corpus"
	"github.com/homily-archive/ngram-search/internal/domain"
)

type Config struct {
	ConnStr string
}

// Store backs the corpus with Postgres. Schema lives in db/migrations;
// the store assumes migrations were applied out of band.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return &Store{db: pool}, nil
}

func (s *Store) Close() {
	s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	c, err := s.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer c.Release()
	return c.Ping(ctx)
}

func (s *Store) Save(ctx context.Context, doc domain.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.Status == "" {
		doc.Status = domain.StatusActive
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	cmd := `
		INSERT INTO documents (
			id, date, occasion, spanish_title, english_title, detail_url,
			biblical_refs, spanish_pdf_url, english_pdf_url, audio_url,
			spanish_text, english_text, spanish_word_count, english_word_count,
			status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			date = excluded.date,
			occasion = excluded.occasion,
			spanish_title = excluded.spanish_title,
			english_title = excluded.english_title,
			detail_url = excluded.detail_url,
			biblical_refs = excluded.biblical_refs,
			spanish_pdf_url = excluded.spanish_pdf_url,
			english_pdf_url = excluded.english_pdf_url,
			audio_url = excluded.audio_url,
			spanish_text = excluded.spanish_text,
			english_text = excluded.english_text,
			spanish_word_count = excluded.spanish_word_count,
			english_word_count = excluded.english_word_count,
			status = excluded.status
	`
	_, err := s.db.Exec(ctx, cmd,
		doc.ID,
		doc.Date,
		doc.Occasion,
		doc.SpanishTitle,
		doc.EnglishTitle,
		nullif(doc.DetailURL),
		doc.BiblicalRefs,
		doc.SpanishPDF,
		doc.EnglishPDF,
		doc.AudioURL,
		nullif(doc.SpanishText),
		nullif(doc.EnglishText),
		doc.SpanishWords,
		doc.EnglishWords,
		string(doc.Status),
		doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving document %s: %w", doc.ID, err)
	}
	return nil
}

// SaveBulk streams documents with COPY. Meant for imports into a fresh
// database; duplicate ids fail the whole copy, use Save for corrections.
func (s *Store) SaveBulk(ctx context.Context, docs []domain.Document) error {
	rows := make([][]interface{}, len(docs))
	now := time.Now().UTC()

	for i, doc := range docs {
		if doc.ID == uuid.Nil {
			doc.ID = uuid.New()
		}
		if doc.Status == "" {
			doc.Status = domain.StatusActive
		}
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = now
		}

		rows[i] = []interface{}{
			doc.ID,
			doc.Date,
			doc.Occasion,
			doc.SpanishTitle,
			doc.EnglishTitle,
			nullif(doc.DetailURL),
			doc.BiblicalRefs,
			doc.SpanishPDF,
			doc.EnglishPDF,
			doc.AudioURL,
			nullif(doc.SpanishText),
			nullif(doc.EnglishText),
			doc.SpanishWords,
			doc.EnglishWords,
			string(doc.Status),
			doc.CreatedAt,
		}
	}

	_, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"documents"},
		[]string{
			"id", "date", "occasion", "spanish_title", "english_title", "detail_url",
			"biblical_refs", "spanish_pdf_url", "english_pdf_url", "audio_url",
			"spanish_text", "english_text", "spanish_word_count", "english_word_count",
			"status", "created_at",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("bulk saving %d documents: %w", len(docs), err)
	}
	return nil
}

func (s *Store) ActiveDocuments(ctx context.Context, lang domain.Language) ([]domain.Document, error) {
	col := lang.Name() + "_text"
	query := fmt.Sprintf(`
		SELECT id, date, occasion, spanish_title, english_title,
			COALESCE(detail_url, ''), %s
		FROM documents
		WHERE status = 'active' AND %s IS NOT NULL AND %s != ''
		ORDER BY date, id
	`, col, col, col)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying active documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var (
			doc  domain.Document
			text string
		)
		if err := rows.Scan(&doc.ID, &doc.Date, &doc.Occasion, &doc.SpanishTitle,
			&doc.EnglishTitle, &doc.DetailURL, &text); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		doc.Status = domain.StatusActive
		if lang == domain.LanguageEnglish {
			doc.EnglishText = text
		} else {
			doc.SpanishText = text
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *Store) List(ctx context.Context) ([]domain.Document, error) {
	query := `
		SELECT id, date, occasion, spanish_title, english_title,
			COALESCE(detail_url, ''), biblical_refs, audio_url,
			spanish_word_count, english_word_count, status
		FROM documents
		ORDER BY date, id
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var (
			doc    domain.Document
			status string
		)
		if err := rows.Scan(&doc.ID, &doc.Date, &doc.Occasion, &doc.SpanishTitle,
			&doc.EnglishTitle, &doc.DetailURL, &doc.BiblicalRefs, &doc.AudioURL,
			&doc.SpanishWords, &doc.EnglishWords, &status); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		doc.Status = domain.DocumentStatus(status)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (domain.Document, error) {
	query := `
		SELECT id, date, occasion, spanish_title, english_title,
			COALESCE(detail_url, ''), biblical_refs, spanish_pdf_url,
			english_pdf_url, audio_url, COALESCE(spanish_text, ''),
			COALESCE(english_text, ''), spanish_word_count, english_word_count,
			status, created_at
		FROM documents
		WHERE id = $1
	`
	var (
		doc    domain.Document
		status string
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.Date, &doc.Occasion, &doc.SpanishTitle, &doc.EnglishTitle,
		&doc.DetailURL, &doc.BiblicalRefs, &doc.SpanishPDF, &doc.EnglishPDF,
		&doc.AudioURL, &doc.SpanishText, &doc.EnglishText, &doc.SpanishWords,
		&doc.EnglishWords, &status, &doc.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Document{}, corpus.ErrNotFound
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("querying document %s: %w", id, err)
	}
	doc.Status = domain.DocumentStatus(status)
	return doc, nil
}

func (s *Store) Stats(ctx context.Context) (domain.CorpusStats, error) {
	stats := domain.CorpusStats{
		Languages: make(map[domain.Language]domain.LanguageStats),
	}

	var minDate, maxDate *time.Time
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			MIN(date), MAX(date)
		FROM documents
	`).Scan(&stats.TotalDocuments, &stats.ActiveDocuments, &minDate, &maxDate)
	if err != nil {
		return domain.CorpusStats{}, fmt.Errorf("querying corpus totals: %w", err)
	}
	if minDate != nil {
		stats.EarliestDate = *minDate
	}
	if maxDate != nil {
		stats.LatestDate = *maxDate
	}

	for _, lang := range domain.Languages {
		col := lang.Name()
		query := fmt.Sprintf(`
			SELECT COUNT(*), COALESCE(SUM(%s_word_count), 0)
			FROM documents
			WHERE %s_text IS NOT NULL AND %s_text != ''
		`, col, col, col)

		var ls domain.LanguageStats
		if err := s.db.QueryRow(ctx, query).Scan(&ls.DocumentsWithText, &ls.TotalWords); err != nil {
			return domain.CorpusStats{}, fmt.Errorf("querying %s coverage: %w", col, err)
		}
		stats.Languages[lang] = ls
	}

	return stats, nil
}

func nullif(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
