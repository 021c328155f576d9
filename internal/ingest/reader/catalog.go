package reader

import (
	"encoding/json"
	"fmt"
	"os"
)

// CatalogRecord mirrors one entry of the scraped archive catalog. The index
// page is in English, so "title" is the English title and the Spanish title
// comes from the detail page.
type CatalogRecord struct {
	Date         string `json:"date"`
	Occasion     string `json:"occasion"`
	Title        string `json:"title"`
	SpanishTitle string `json:"spanish_title"`
	URL          string `json:"url"`
	HasAudio     bool   `json:"has_audio"`
	AudioURL     string `json:"audio_url"`
	BiblicalRefs string `json:"biblical_references"`
	SpanishPDF   string `json:"spanish_pdf_url"`
	EnglishPDF   string `json:"english_pdf_url"`
	Status       string `json:"status"`
}

// ReadCatalog loads the whole catalog file. The archive holds a few hundred
// records, so there is nothing to stream.
func ReadCatalog(path string) ([]CatalogRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var records []CatalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return records, nil
}
