package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homily-archive/ngram-search/internal/apperr"
	"github.com/homily-archive/ngram-search/internal/corpus/memory"
	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/dto"
	"github.com/homily-archive/ngram-search/internal/engine"
	"github.com/homily-archive/ngram-search/internal/router"
	"github.com/homily-archive/ngram-search/internal/token"
)

func newTestServer(t *testing.T) (*echo.Echo, *memory.Store) {
	t.Helper()

	store := memory.NewStore()

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	router.NewSearchRouter(e, engine.New(store)).Bind()
	router.NewDocumentRouter(e, store).Bind()

	return e, store
}

func seedDocument(t *testing.T, store *memory.Store, date, spanishText string) domain.Document {
	t.Helper()

	day, err := time.Parse(time.DateOnly, date)
	require.NoError(t, err)

	doc := domain.Document{
		ID:           uuid.New(),
		Date:         day,
		SpanishTitle: "Homilia del " + date,
		DetailURL:    "https://example.org/homilies/" + date,
		SpanishText:  spanishText,
		SpanishWords: len(token.Tokenize(spanishText)),
		Status:       domain.StatusActive,
	}
	require.NoError(t, store.Save(context.Background(), doc))
	return doc
}

func doRequest(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSearchEndpoint(t *testing.T) {
	e, store := newTestServer(t)
	seedDocument(t, store, "1977-03-14", "el pueblo de dios camina")
	seedDocument(t, store, "1977-04-02", "el pueblo sufre")

	rec := doRequest(e, "/api/search?term=pueblo")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "pueblo", resp.Term)
	assert.Equal(t, []string{"pueblo"}, resp.Tokens)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, 2, resp.TotalDocuments)
	require.Len(t, resp.Months, 2)
	assert.Equal(t, "1977-03", resp.Months[0].Month)
	assert.Equal(t, 1, resp.Months[0].Count)
	assert.Equal(t, "es", resp.Config.Language)
}

func TestSearchEndpointAppliesParams(t *testing.T) {
	e, store := newTestServer(t)
	seedDocument(t, store, "1977-03-14", "la liberación del pueblo")

	rec := doRequest(e, "/api/search?term=liberacion&accent_sensitive=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Config.AccentSensitive)
	assert.Equal(t, 0, resp.TotalCount)
}

func TestSearchEndpointRejectsMissingTerm(t *testing.T) {
	e, store := newTestServer(t)
	seedDocument(t, store, "1977-03-14", "el pueblo")

	rec := doRequest(e, "/api/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "enter a search term", body["error"])
}

func TestSearchEndpointRejectsBadParams(t *testing.T) {
	e, store := newTestServer(t)
	seedDocument(t, store, "1977-03-14", "el pueblo")

	cases := []struct {
		name   string
		target string
	}{
		{"unparseable accent flag", "/api/search?term=pueblo&accent_sensitive=maybe"},
		{"unparseable smoothing", "/api/search?term=pueblo&smoothing=two"},
		{"smoothing out of range", "/api/search?term=pueblo&smoothing=7"},
		{"unknown language", "/api/search?term=pueblo&lang=fr"},
		{"unknown normalization", "/api/search?term=pueblo&norm=zscore"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(e, tc.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSearchEndpointEmptyCorpusIsUnavailable(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, "/api/search?term=pueblo")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "data unavailable", body["title"])
}

func TestDocumentList(t *testing.T) {
	e, store := newTestServer(t)
	seedDocument(t, store, "1977-03-14", "el pueblo")
	seedDocument(t, store, "1977-04-02", "la esperanza")

	rec := doRequest(e, "/api/documents")
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []dto.DocumentSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "1977-03-14", docs[0].Date)
	assert.Equal(t, "1977-04-02", docs[1].Date)
}

func TestDocumentListLanguageFilter(t *testing.T) {
	e, store := newTestServer(t)
	seedDocument(t, store, "1977-03-14", "el pueblo")

	rec := doRequest(e, "/api/documents?lang=es")
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []dto.DocumentSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	assert.Len(t, docs, 1)

	rec = doRequest(e, "/api/documents?lang=en")
	require.Equal(t, http.StatusOK, rec.Code)

	docs = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	assert.Empty(t, docs)

	rec = doRequest(e, "/api/documents?lang=de")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentDetail(t *testing.T) {
	e, store := newTestServer(t)
	doc := seedDocument(t, store, "1977-03-14", "el pueblo de dios")

	rec := doRequest(e, "/api/documents/"+doc.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var detail dto.DocumentDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, doc.ID.String(), detail.ID)
	assert.Equal(t, "el pueblo de dios", detail.SpanishText)
}

func TestDocumentDetailNotFound(t *testing.T) {
	e, store := newTestServer(t)
	seedDocument(t, store, "1977-03-14", "el pueblo")

	rec := doRequest(e, "/api/documents/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, "/api/documents/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCorpusStats(t *testing.T) {
	e, store := newTestServer(t)
	seedDocument(t, store, "1977-03-14", "el pueblo de dios")
	seedDocument(t, store, "1977-04-02", "la esperanza viva")

	rec := doRequest(e, "/api/corpus/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Equal(t, 2, stats.ActiveDocuments)
	assert.Equal(t, "1977-03-14", stats.EarliestDate)
	assert.Equal(t, "1977-04-02", stats.LatestDate)
	require.Contains(t, stats.Languages, "es")
	assert.Equal(t, 2, stats.Languages["es"].DocumentsWithText)
}