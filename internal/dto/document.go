package dto

import (
	"time"

	"github.com/homily-archive/ngram-search/internal/domain"
)

// DocumentSummary is a catalog row: everything except the transcript
// bodies.
type DocumentSummary struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Occasion     string `json:"occasion,omitempty"`
	SpanishTitle string `json:"spanish_title,omitempty"`
	EnglishTitle string `json:"english_title,omitempty"`
	DetailURL    string `json:"detail_url,omitempty"`
	SpanishWords int    `json:"spanish_word_count"`
	EnglishWords int    `json:"english_word_count"`
	Status       string `json:"status"`
}

type DocumentDetail struct {
	DocumentSummary
	BiblicalRefs string `json:"biblical_refs,omitempty"`
	SpanishPDF   string `json:"spanish_pdf_url,omitempty"`
	EnglishPDF   string `json:"english_pdf_url,omitempty"`
	AudioURL     string `json:"audio_url,omitempty"`
	SpanishText  string `json:"spanish_text,omitempty"`
	EnglishText  string `json:"english_text,omitempty"`
}

type StatsResponse struct {
	TotalDocuments  int                              `json:"total_documents"`
	ActiveDocuments int                              `json:"active_documents"`
	EarliestDate    string                           `json:"earliest_date,omitempty"`
	LatestDate      string                           `json:"latest_date,omitempty"`
	Languages       map[string]LanguageStatsResponse `json:"languages"`
}

type LanguageStatsResponse struct {
	DocumentsWithText int `json:"documents_with_text"`
	TotalWords        int `json:"total_words"`
}

func FromDocument(doc domain.Document) DocumentSummary {
	return DocumentSummary{
		ID:           doc.ID.String(),
		Date:         doc.Date.Format(time.DateOnly),
		Occasion:     doc.Occasion,
		SpanishTitle: doc.SpanishTitle,
		EnglishTitle: doc.EnglishTitle,
		DetailURL:    doc.DetailURL,
		SpanishWords: doc.SpanishWords,
		EnglishWords: doc.EnglishWords,
		Status:       string(doc.Status),
	}
}

func FromDocuments(docs []domain.Document) []DocumentSummary {
	out := make([]DocumentSummary, len(docs))
	for i, doc := range docs {
		out[i] = FromDocument(doc)
	}
	return out
}

func FromDocumentDetail(doc domain.Document) DocumentDetail {
	return DocumentDetail{
		DocumentSummary: FromDocument(doc),
		BiblicalRefs:    doc.BiblicalRefs,
		SpanishPDF:      doc.SpanishPDF,
		EnglishPDF:      doc.EnglishPDF,
		AudioURL:        doc.AudioURL,
		SpanishText:     doc.SpanishText,
		EnglishText:     doc.EnglishText,
	}
}

func FromStats(stats domain.CorpusStats) StatsResponse {
	resp := StatsResponse{
		TotalDocuments:  stats.TotalDocuments,
		ActiveDocuments: stats.ActiveDocuments,
		Languages:       make(map[string]LanguageStatsResponse, len(stats.Languages)),
	}
	if !stats.EarliestDate.IsZero() {
		resp.EarliestDate = stats.EarliestDate.Format(time.DateOnly)
	}
	if !stats.LatestDate.IsZero() {
		resp.LatestDate = stats.LatestDate.Format(time.DateOnly)
	}
	for lang, ls := range stats.Languages {
		resp.Languages[string(lang)] = LanguageStatsResponse{
			DocumentsWithText: ls.DocumentsWithText,
			TotalWords:        ls.TotalWords,
		}
	}
	return resp
}
