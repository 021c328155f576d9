package dto

import (
	"time"

	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/pkg/utils"
)

// SearchResponse is the JSON payload for one phrase search. Normalized
// values are rounded to 2 decimals and elapsed seconds to 3; the engine
// itself never rounds.
type SearchResponse struct {
	Term           string          `json:"term"`
	Tokens         []string        `json:"tokens"`
	Config         ConfigResponse  `json:"config"`
	Elapsed        float64         `json:"elapsed"`
	TotalCount     int             `json:"total_count"`
	TotalDocuments int             `json:"total_documents"`
	Months         []MonthResponse `json:"months"`
}

type ConfigResponse struct {
	Language        string `json:"language"`
	AccentSensitive bool   `json:"accent_sensitive"`
	Normalization   string `json:"normalization"`
	SmoothingWindow int    `json:"smoothing_window"`
}

type MonthResponse struct {
	Month        string                  `json:"month"`
	Count        int                     `json:"count"`
	TotalWords   int                     `json:"total_words"`
	NumDocuments int                     `json:"num_documents"`
	Value        float64                 `json:"value"`
	Documents    []DocumentMatchResponse `json:"documents"`
}

// DocumentMatchResponse is one drill-down row under a month bucket.
type DocumentMatchResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	DetailURL string `json:"detail_url,omitempty"`
	Count     int    `json:"count"`
}

func FromSearchResult(result domain.SearchResult) SearchResponse {
	months := make([]MonthResponse, len(result.Months))
	for i, bucket := range result.Months {
		documents := make([]DocumentMatchResponse, len(bucket.Documents))
		for j, match := range bucket.Documents {
			documents[j] = DocumentMatchResponse{
				ID:        match.ID.String(),
				Date:      match.Date.Format(time.DateOnly),
				Title:     match.Title,
				DetailURL: match.DetailURL,
				Count:     match.Count,
			}
		}
		months[i] = MonthResponse{
			Month:        bucket.Month.String(),
			Count:        bucket.RawCount,
			TotalWords:   bucket.TotalWords,
			NumDocuments: bucket.DocumentCount,
			Value:        utils.RoundDecimal(bucket.Value, 2),
			Documents:    documents,
		}
	}

	return SearchResponse{
		Term:   result.Term,
		Tokens: result.Tokens,
		Config: ConfigResponse{
			Language:        string(result.Config.Language),
			AccentSensitive: result.Config.AccentSensitive,
			Normalization:   string(result.Config.Normalization),
			SmoothingWindow: result.Config.SmoothingWindow,
		},
		Elapsed:        utils.RoundDecimal(result.Elapsed.Seconds(), 3),
		TotalCount:     result.TotalCount,
		TotalDocuments: result.TotalDocuments,
		Months:         months,
	}
}
