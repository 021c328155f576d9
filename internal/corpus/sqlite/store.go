package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/homily-archive/ngram-search/internal/corpus"
	"github.com/homily-archive/ngram-search/internal/corpus/sqlite/migrations"
	"github.com/homily-archive/ngram-search/internal/domain"
)

const DefaultPath = "data/homilies.db"

type Config struct {
	Path string
}

// Store is the single-file archive backend. The whole corpus fits in one
// SQLite database, which is also the artifact the importer produces.
type Store struct {
	db   *sql.DB
	path string
}

func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	// WAL keeps concurrent API readers from blocking the importer.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) Save(ctx context.Context, doc domain.Document) error {
	return s.save(ctx, s.db, doc)
}

func (s *Store) SaveBulk(ctx context.Context, docs []domain.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, doc := range docs {
		if err := s.save(ctx, tx, doc); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) save(ctx context.Context, db execer, doc domain.Document) error {
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
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
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
	_, err := db.ExecContext(ctx, cmd,
		doc.ID.String(),
		doc.Date.Format(time.DateOnly),
		doc.Occasion,
		doc.SpanishTitle,
		doc.EnglishTitle,
		doc.DetailURL,
		doc.BiblicalRefs,
		doc.SpanishPDF,
		doc.EnglishPDF,
		doc.AudioURL,
		doc.SpanishText,
		doc.EnglishText,
		doc.SpanishWords,
		doc.EnglishWords,
		string(doc.Status),
		doc.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving document %s: %w", doc.ID, err)
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

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying active documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var (
			doc     domain.Document
			id      string
			rawDate string
			text    string
		)
		if err := rows.Scan(&id, &rawDate, &doc.Occasion, &doc.SpanishTitle,
			&doc.EnglishTitle, &doc.DetailURL, &text); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		if doc.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing document id %q: %w", id, err)
		}
		if doc.Date, err = time.Parse(time.DateOnly, rawDate); err != nil {
			return nil, fmt.Errorf("parsing document date %q: %w", rawDate, err)
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
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var (
			doc     domain.Document
			id      string
			rawDate string
			status  string
		)
		if err := rows.Scan(&id, &rawDate, &doc.Occasion, &doc.SpanishTitle,
			&doc.EnglishTitle, &doc.DetailURL, &doc.BiblicalRefs, &doc.AudioURL,
			&doc.SpanishWords, &doc.EnglishWords, &status); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		if doc.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing document id %q: %w", id, err)
		}
		if doc.Date, err = time.Parse(time.DateOnly, rawDate); err != nil {
			return nil, fmt.Errorf("parsing document date %q: %w", rawDate, err)
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
		WHERE id = ?
	`
	var (
		doc        domain.Document
		rawID      string
		rawDate    string
		rawStatus  string
		rawCreated string
	)
	err := s.db.QueryRowContext(ctx, query, id.String()).Scan(
		&rawID, &rawDate, &doc.Occasion, &doc.SpanishTitle, &doc.EnglishTitle,
		&doc.DetailURL, &doc.BiblicalRefs, &doc.SpanishPDF, &doc.EnglishPDF,
		&doc.AudioURL, &doc.SpanishText, &doc.EnglishText, &doc.SpanishWords,
		&doc.EnglishWords, &rawStatus, &rawCreated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Document{}, corpus.ErrNotFound
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("querying document %s: %w", id, err)
	}

	if doc.ID, err = uuid.Parse(rawID); err != nil {
		return domain.Document{}, fmt.Errorf("parsing document id %q: %w", rawID, err)
	}
	if doc.Date, err = time.Parse(time.DateOnly, rawDate); err != nil {
		return domain.Document{}, fmt.Errorf("parsing document date %q: %w", rawDate, err)
	}
	doc.Status = domain.DocumentStatus(rawStatus)
	doc.CreatedAt = parseTimestamp(rawCreated)
	return doc, nil
}

func (s *Store) Stats(ctx context.Context) (domain.CorpusStats, error) {
	stats := domain.CorpusStats{
		Languages: make(map[domain.Language]domain.LanguageStats),
	}

	var minDate, maxDate sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0),
			MIN(date), MAX(date)
		FROM documents
	`).Scan(&stats.TotalDocuments, &stats.ActiveDocuments, &minDate, &maxDate)
	if err != nil {
		return domain.CorpusStats{}, fmt.Errorf("querying corpus totals: %w", err)
	}
	if minDate.Valid {
		if stats.EarliestDate, err = time.Parse(time.DateOnly, minDate.String); err != nil {
			return domain.CorpusStats{}, fmt.Errorf("parsing earliest date: %w", err)
		}
	}
	if maxDate.Valid {
		if stats.LatestDate, err = time.Parse(time.DateOnly, maxDate.String); err != nil {
			return domain.CorpusStats{}, fmt.Errorf("parsing latest date: %w", err)
		}
	}

	for _, lang := range domain.Languages {
		col := lang.Name()
		query := fmt.Sprintf(`
			SELECT COUNT(*), COALESCE(SUM(%s_word_count), 0)
			FROM documents
			WHERE %s_text IS NOT NULL AND %s_text != ''
		`, col, col, col)

		var ls domain.LanguageStats
		if err := s.db.QueryRowContext(ctx, query).Scan(&ls.DocumentsWithText, &ls.TotalWords); err != nil {
			return domain.CorpusStats{}, fmt.Errorf("querying %s coverage: %w", col, err)
		}
		stats.Languages[lang] = ls
	}

	return stats, nil
}

// parseTimestamp accepts both the RFC3339 values the store writes and the
// datetime('now') default SQLite produces.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.DateTime, s); err == nil {
		return t
	}
	return time.Time{}
}
