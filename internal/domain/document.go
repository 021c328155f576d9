package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus flags whether an archive entry is a real, searchable homily.
// Placeholder rows exist for dates the archive lists without a transcript;
// not_a_homily marks entries the curators excluded (interviews, letters).
type DocumentStatus string

const (
	StatusActive      DocumentStatus = "active"
	StatusNotAHomily  DocumentStatus = "not_a_homily"
	StatusPlaceholder DocumentStatus = "placeholder"
)

var KnownStatuses = map[DocumentStatus]bool{
	StatusActive:      true,
	StatusNotAHomily:  true,
	StatusPlaceholder: true,
}

// Document is one dated homily record with transcripts in up to two languages.
type Document struct {
	ID           uuid.UUID      `json:"id"`
	Date         time.Time      `json:"date"`
	Occasion     string         `json:"occasion,omitempty"`
	SpanishTitle string         `json:"spanishTitle,omitempty"`
	EnglishTitle string         `json:"englishTitle,omitempty"`
	DetailURL    string         `json:"detailUrl,omitempty"`
	BiblicalRefs string         `json:"biblicalRefs,omitempty"`
	SpanishPDF   string         `json:"spanishPdfUrl,omitempty"`
	EnglishPDF   string         `json:"englishPdfUrl,omitempty"`
	AudioURL     string         `json:"audioUrl,omitempty"`
	SpanishText  string         `json:"spanishText,omitempty"`
	EnglishText  string         `json:"englishText,omitempty"`
	SpanishWords int            `json:"spanishWordCount,omitempty"`
	EnglishWords int            `json:"englishWordCount,omitempty"`
	Status       DocumentStatus `json:"status"`
	CreatedAt    time.Time      `json:"createdAt,omitempty"`
}

// Text returns the transcript body for lang, empty when absent.
func (d Document) Text(lang Language) string {
	if lang == LanguageEnglish {
		return d.EnglishText
	}
	return d.SpanishText
}

// WordCount returns the stored token count for lang.
func (d Document) WordCount(lang Language) int {
	if lang == LanguageEnglish {
		return d.EnglishWords
	}
	return d.SpanishWords
}

func (d Document) HasText(lang Language) bool {
	return d.Text(lang) != ""
}

// Title picks a display title: the requested language first, then the other
// language, then the occasion.
func (d Document) Title(lang Language) string {
	titles := []string{d.SpanishTitle, d.EnglishTitle}
	if lang == LanguageEnglish {
		titles[0], titles[1] = titles[1], titles[0]
	}
	for _, t := range titles {
		if t != "" {
			return t
		}
	}
	if d.Occasion != "" {
		return d.Occasion
	}
	return "(untitled)"
}

// Searchable reports whether the document belongs to lang's search universe.
func (d Document) Searchable(lang Language) bool {
	return d.Status == StatusActive && d.HasText(lang)
}
