package domain

import "time"

// CorpusStats summarizes archive coverage for health reports.
type CorpusStats struct {
	TotalDocuments  int                        `json:"totalDocuments"`
	ActiveDocuments int                        `json:"activeDocuments"`
	EarliestDate    time.Time                  `json:"earliestDate"`
	LatestDate      time.Time                  `json:"latestDate"`
	Languages       map[Language]LanguageStats `json:"languages"`
}

// LanguageStats covers one language's transcript availability.
type LanguageStats struct {
	DocumentsWithText int `json:"documentsWithText"`
	TotalWords        int `json:"totalWords"`
}
