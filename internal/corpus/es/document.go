package es

import (
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"

	"github.com/homily-archive/ngram-search/internal/domain"
)

// homilyDocument is the index representation of a homily. Text fields
// carry omitempty so the exists query can filter documents without a
// transcript in a given language.
type homilyDocument struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	Occasion         string    `json:"occasion,omitempty"`
	SpanishTitle     string    `json:"spanish_title,omitempty"`
	EnglishTitle     string    `json:"english_title,omitempty"`
	DetailURL        string    `json:"detail_url,omitempty"`
	BiblicalRefs     string    `json:"biblical_refs,omitempty"`
	SpanishPDF       string    `json:"spanish_pdf_url,omitempty"`
	EnglishPDF       string    `json:"english_pdf_url,omitempty"`
	AudioURL         string    `json:"audio_url,omitempty"`
	SpanishText      string    `json:"spanish_text,omitempty"`
	EnglishText      string    `json:"english_text,omitempty"`
	SpanishWordCount int       `json:"spanish_word_count"`
	EnglishWordCount int       `json:"english_word_count"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	IndexedAt        time.Time `json:"indexed_at"`
}

func toIndexDocument(doc domain.Document) homilyDocument {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.Status == "" {
		doc.Status = domain.StatusActive
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	return homilyDocument{
		ID:               doc.ID.String(),
		Date:             doc.Date,
		Occasion:         doc.Occasion,
		SpanishTitle:     doc.SpanishTitle,
		EnglishTitle:     doc.EnglishTitle,
		DetailURL:        doc.DetailURL,
		BiblicalRefs:     doc.BiblicalRefs,
		SpanishPDF:       doc.SpanishPDF,
		EnglishPDF:       doc.EnglishPDF,
		AudioURL:         doc.AudioURL,
		SpanishText:      doc.SpanishText,
		EnglishText:      doc.EnglishText,
		SpanishWordCount: doc.SpanishWords,
		EnglishWordCount: doc.EnglishWords,
		Status:           string(doc.Status),
		CreatedAt:        doc.CreatedAt,
		IndexedAt:        time.Now().UTC(),
	}
}

func (d homilyDocument) toDomain() (domain.Document, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to parse document ID %q: %w", d.ID, err)
	}
	return domain.Document{
		ID:           id,
		Date:         d.Date,
		Occasion:     d.Occasion,
		SpanishTitle: d.SpanishTitle,
		EnglishTitle: d.EnglishTitle,
		DetailURL:    d.DetailURL,
		BiblicalRefs: d.BiblicalRefs,
		SpanishPDF:   d.SpanishPDF,
		EnglishPDF:   d.EnglishPDF,
		AudioURL:     d.AudioURL,
		SpanishText:  d.SpanishText,
		EnglishText:  d.EnglishText,
		SpanishWords: d.SpanishWordCount,
		EnglishWords: d.EnglishWordCount,
		Status:       domain.DocumentStatus(d.Status),
		CreatedAt:    d.CreatedAt,
	}, nil
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":                 types.NewKeywordProperty(),
			"date":               types.NewDateProperty(),
			"occasion":           createTextPropertyWithKeyword(""),
			"spanish_title":      createTextProperty("spanish"),
			"english_title":      createTextProperty("english"),
			"detail_url":         types.NewKeywordProperty(),
			"biblical_refs":      types.NewKeywordProperty(),
			"spanish_pdf_url":    types.NewKeywordProperty(),
			"english_pdf_url":    types.NewKeywordProperty(),
			"audio_url":          types.NewKeywordProperty(),
			"spanish_text":       createTextProperty("spanish"),
			"english_text":       createTextProperty("english"),
			"spanish_word_count": types.NewIntegerNumberProperty(),
			"english_word_count": types.NewIntegerNumberProperty(),
			"status":             types.NewKeywordProperty(),
			"created_at":         types.NewDateProperty(),
			"indexed_at":         types.NewDateProperty(),
		},
	}
}

func createTextProperty(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	return textProp
}

func createTextPropertyWithKeyword(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
