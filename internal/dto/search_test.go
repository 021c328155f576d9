package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homily-archive/ngram-search/internal/domain"
)

func TestFromSearchResult(t *testing.T) {
	docID := uuid.New()
	result := domain.SearchResult{
		Term:   "pueblo de dios",
		Tokens: []string{"pueblo", "de", "dios"},
		Config: domain.QueryConfig{
			Language:        domain.LanguageSpanish,
			Normalization:   domain.NormPer10kWords,
			SmoothingWindow: 1,
		},
		Elapsed:        123456789 * time.Nanosecond,
		TotalCount:     7,
		TotalDocuments: 3,
		Months: []domain.MonthBucket{
			{
				Month:         domain.Month{Year: 1977, Month: time.March},
				RawCount:      7,
				TotalWords:    4321,
				DocumentCount: 3,
				Value:         16.19995,
				Documents: []domain.DocumentMatch{
					{
						ID:        docID,
						Date:      time.Date(1977, 3, 14, 0, 0, 0, 0, time.UTC),
						Title:     "La voz de los sin voz",
						DetailURL: "https://example.org/homilies/1977-03-14",
						Count:     7,
					},
				},
			},
			{
				Month: domain.Month{Year: 1977, Month: time.April},
			},
		},
	}

	resp := FromSearchResult(result)

	assert.Equal(t, "pueblo de dios", resp.Term)
	assert.Equal(t, []string{"pueblo", "de", "dios"}, resp.Tokens)
	assert.Equal(t, "es", resp.Config.Language)
	assert.Equal(t, "per_10k_words", resp.Config.Normalization)
	assert.Equal(t, 1, resp.Config.SmoothingWindow)
	assert.Equal(t, 0.123, resp.Elapsed)
	assert.Equal(t, 7, resp.TotalCount)
	assert.Equal(t, 3, resp.TotalDocuments)

	require.Len(t, resp.Months, 2)
	march := resp.Months[0]
	assert.Equal(t, "1977-03", march.Month)
	assert.Equal(t, 7, march.Count)
	assert.Equal(t, 4321, march.TotalWords)
	assert.Equal(t, 3, march.NumDocuments)
	assert.Equal(t, 16.2, march.Value)

	require.Len(t, march.Documents, 1)
	assert.Equal(t, docID.String(), march.Documents[0].ID)
	assert.Equal(t, "1977-03-14", march.Documents[0].Date)
	assert.Equal(t, "La voz de los sin voz", march.Documents[0].Title)
	assert.Equal(t, 7, march.Documents[0].Count)

	april := resp.Months[1]
	assert.Equal(t, "1977-04", april.Month)
	assert.Equal(t, 0, april.Count)
	assert.Empty(t, april.Documents)
	assert.NotNil(t, april.Documents, "empty bucket still serializes documents as []")
}

func TestFromDocumentDetail(t *testing.T) {
	doc := domain.Document{
		ID:           uuid.New(),
		Date:         time.Date(1980, 3, 23, 0, 0, 0, 0, time.UTC),
		Occasion:     "V Domingo de Cuaresma",
		SpanishTitle: "Iglesia, defensora de la dignidad humana",
		SpanishText:  "texto completo",
		SpanishWords: 2,
		Status:       domain.StatusActive,
	}

	detail := FromDocumentDetail(doc)

	assert.Equal(t, doc.ID.String(), detail.ID)
	assert.Equal(t, "1980-03-23", detail.Date)
	assert.Equal(t, "Iglesia, defensora de la dignidad humana", detail.SpanishTitle)
	assert.Equal(t, "texto completo", detail.SpanishText)
	assert.Equal(t, 2, detail.SpanishWords)
	assert.Equal(t, "active", detail.Status)
}

func TestFromStats(t *testing.T) {
	stats := domain.CorpusStats{
		TotalDocuments:  193,
		ActiveDocuments: 181,
		EarliestDate:    time.Date(1977, 3, 14, 0, 0, 0, 0, time.UTC),
		LatestDate:      time.Date(1980, 3, 23, 0, 0, 0, 0, time.UTC),
		Languages: map[domain.Language]domain.LanguageStats{
			domain.LanguageSpanish: {DocumentsWithText: 181, TotalWords: 1200000},
			domain.LanguageEnglish: {DocumentsWithText: 170, TotalWords: 1100000},
		},
	}

	resp := FromStats(stats)

	assert.Equal(t, 193, resp.TotalDocuments)
	assert.Equal(t, 181, resp.ActiveDocuments)
	assert.Equal(t, "1977-03-14", resp.EarliestDate)
	assert.Equal(t, "1980-03-23", resp.LatestDate)
	assert.Equal(t, 181, resp.Languages["es"].DocumentsWithText)
	assert.Equal(t, 1100000, resp.Languages["en"].TotalWords)
}

func TestFromStatsEmptyCorpus(t *testing.T) {
	resp := FromStats(domain.CorpusStats{Languages: map[domain.Language]domain.LanguageStats{}})

	assert.Empty(t, resp.EarliestDate)
	assert.Empty(t, resp.LatestDate)
}
