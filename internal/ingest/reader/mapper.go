package reader

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/token"
)

// DocumentMapper turns catalog records into documents, joining in the
// transcript texts for the configured languages.
type DocumentMapper struct {
	texts     *TextTree
	languages []domain.Language
}

func NewDocumentMapper(texts *TextTree, languages []domain.Language) *DocumentMapper {
	return &DocumentMapper{
		texts:     texts,
		languages: languages,
	}
}

// Map builds one domain.Document. A bad date or unknown status makes the
// record unusable and returns an error; an unreadable transcript only costs
// that one text.
func (m *DocumentMapper) Map(rec CatalogRecord) (domain.Document, error) {
	date, err := time.Parse(time.DateOnly, rec.Date)
	if err != nil {
		return domain.Document{}, fmt.Errorf("invalid date %q: %w", rec.Date, err)
	}

	status := domain.DocumentStatus(rec.Status)
	if rec.Status == "" {
		status = domain.StatusActive
	} else if !domain.KnownStatuses[status] {
		return domain.Document{}, fmt.Errorf("unknown status %q", rec.Status)
	}

	doc := domain.Document{
		ID:           documentID(rec),
		Date:         date,
		Occasion:     rec.Occasion,
		SpanishTitle: rec.SpanishTitle,
		EnglishTitle: rec.Title,
		DetailURL:    rec.URL,
		BiblicalRefs: rec.BiblicalRefs,
		SpanishPDF:   rec.SpanishPDF,
		EnglishPDF:   rec.EnglishPDF,
		AudioURL:     rec.AudioURL,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	for _, lang := range m.languages {
		text, found, err := m.texts.Load(date, lang)
		if err != nil {
			slog.Warn("skipping unreadable transcript", "date", rec.Date, "language", lang, "error", err)
			continue
		}
		if !found {
			continue
		}
		switch lang {
		case domain.LanguageSpanish:
			doc.SpanishText = text
			doc.SpanishWords = len(token.Tokenize(text))
		case domain.LanguageEnglish:
			doc.EnglishText = text
			doc.EnglishWords = len(token.Tokenize(text))
		}
	}

	return doc, nil
}

// documentID derives a stable UUID from the detail URL so re-imports update
// existing rows instead of duplicating them. Records without a URL fall
// back to the date, which the archive keeps unique.
func documentID(rec CatalogRecord) uuid.UUID {
	seed := rec.URL
	if seed == "" {
		seed = rec.Date
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed))
}
