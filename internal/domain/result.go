package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchResult is the full outcome of one phrase search: aggregate totals
// plus a chronological, gap-free monthly series.
type SearchResult struct {
	Term           string        `json:"term"`
	Tokens         []string      `json:"tokens"`
	Config         QueryConfig   `json:"config"`
	Elapsed        time.Duration `json:"elapsed"`
	TotalCount     int           `json:"totalCount"`
	TotalDocuments int           `json:"totalDocuments"`
	Months         []MonthBucket `json:"months"`
}

// MonthBucket aggregates one calendar month. Value is the normalized (and,
// when configured, smoothed) figure; RawCount is never smoothed.
type MonthBucket struct {
	Month         Month           `json:"month"`
	RawCount      int             `json:"rawCount"`
	TotalWords    int             `json:"totalWords"`
	DocumentCount int             `json:"documentCount"`
	Value         float64         `json:"value"`
	Documents     []DocumentMatch `json:"documents,omitempty"`
}

// DocumentMatch is one drill-down entry: a document that contributed a
// nonzero count to its bucket.
type DocumentMatch struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	DetailURL string    `json:"detailUrl,omitempty"`
	Count     int       `json:"count"`
}
