package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homily-archive/ngram-search/internal/apperr"
	"github.com/homily-archive/ngram-search/internal/corpus/memory"
	"github.com/homily-archive/ngram-search/internal/domain"
)

type failingReader struct {
	err error
}

func (r failingReader) ActiveDocuments(ctx context.Context, lang domain.Language) ([]domain.Document, error) {
	return nil, r.err
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return d
}

func saveDoc(t *testing.T, store *memory.Store, date, spanishText string) domain.Document {
	t.Helper()
	doc := domain.Document{
		ID:          uuid.New(),
		Date:        mustDate(t, date),
		SpanishText: spanishText,
		Status:      domain.StatusActive,
	}
	require.NoError(t, store.Save(context.Background(), doc))
	return doc
}

func TestSearchRejectsEmptyPhrase(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo de dios")
	eng := New(store)

	for _, term := range []string{"", "   ", "...", "¿?¡!", "1234 56"} {
		_, err := eng.Search(context.Background(), term, domain.QueryConfig{})

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr, "term %q", term)
		assert.Contains(t, verr.Error(), "enter a search term")
	}
}

func TestSearchRejectsInvalidConfig(t *testing.T) {
	eng := New(memory.NewStore())

	tests := []struct {
		name string
		cfg  domain.QueryConfig
	}{
		{"unknown language", domain.QueryConfig{Language: "de"}},
		{"unknown normalization", domain.QueryConfig{Normalization: "zscore"}},
		{"window too large", domain.QueryConfig{SmoothingWindow: 4}},
		{"negative window", domain.QueryConfig{SmoothingWindow: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Search(context.Background(), "pueblo", tt.cfg)

			var verr *apperr.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestSearchCorpusErrorIsUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	eng := New(failingReader{err: cause})

	_, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})

	var uerr *apperr.UnavailableError
	require.ErrorAs(t, err, &uerr)
	assert.ErrorIs(t, err, cause)
}

func TestSearchEmptyCorpusIsUnavailable(t *testing.T) {
	eng := New(memory.NewStore())

	_, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})

	var uerr *apperr.UnavailableError
	require.ErrorAs(t, err, &uerr)
}

func TestSearchZeroMatchesIsNotAnError(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "la esperanza del mundo")
	eng := New(store)

	result, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, 0, result.TotalDocuments)
	require.Len(t, result.Months, 1)
	assert.Equal(t, 0, result.Months[0].RawCount)
	assert.Empty(t, result.Months[0].Documents)
}

func TestSearchTwoDocumentScenario(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo de dios")
	saveDoc(t, store, "1977-04-02", "el pueblo")
	eng := New(store)

	result, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 2, result.TotalDocuments)
	assert.Equal(t, []string{"pueblo"}, result.Tokens)

	require.Len(t, result.Months, 2)
	assert.Equal(t, domain.Month{Year: 1977, Month: time.March}, result.Months[0].Month)
	assert.Equal(t, 1, result.Months[0].RawCount)
	assert.Equal(t, domain.Month{Year: 1977, Month: time.April}, result.Months[1].Month)
	assert.Equal(t, 1, result.Months[1].RawCount)
}

func TestSearchMultiWordPhrase(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo de dios camina con el pueblo de dios")
	saveDoc(t, store, "1977-03-20", "el pueblo unido")
	eng := New(store)

	result, err := eng.Search(context.Background(), "pueblo de dios", domain.QueryConfig{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 1, result.TotalDocuments)
}

func TestSearchOverlappingMatches(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "santo santo santo")
	eng := New(store)

	result, err := eng.Search(context.Background(), "santo santo", domain.QueryConfig{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalCount)
}

func TestSearchZeroFillsMonthRange(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo")
	saveDoc(t, store, "1977-06-19", "el pueblo")
	eng := New(store)

	result, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})
	require.NoError(t, err)

	require.Len(t, result.Months, 4)
	assert.Equal(t, domain.Month{Year: 1977, Month: time.April}, result.Months[1].Month)
	assert.Equal(t, 0, result.Months[1].RawCount)
	assert.Equal(t, 0, result.Months[1].DocumentCount)
	assert.Empty(t, result.Months[1].Documents)
	assert.Equal(t, domain.Month{Year: 1977, Month: time.May}, result.Months[2].Month)
	assert.Equal(t, 0, result.Months[2].RawCount)
}

func TestSearchAccentSensitivity(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "la liberación")
	eng := New(store)

	insensitive, err := eng.Search(context.Background(), "liberacion", domain.QueryConfig{})
	require.NoError(t, err)
	assert.Equal(t, 1, insensitive.TotalCount)

	strict, err := eng.Search(context.Background(), "liberacion",
		domain.QueryConfig{AccentSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, 0, strict.TotalCount)

	strictAccented, err := eng.Search(context.Background(), "liberación",
		domain.QueryConfig{AccentSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, strictAccented.TotalCount)
}

func TestSearchPerDocumentNormalization(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-07", "paz paz paz")
	saveDoc(t, store, "1977-03-14", "paz paz")
	saveDoc(t, store, "1977-03-21", "paz")
	eng := New(store)

	result, err := eng.Search(context.Background(), "paz",
		domain.QueryConfig{Normalization: domain.NormPerDocument})
	require.NoError(t, err)

	require.Len(t, result.Months, 1)
	bucket := result.Months[0]
	assert.Equal(t, 6, bucket.RawCount)
	assert.Equal(t, 3, bucket.DocumentCount)
	assert.Equal(t, 2.0, bucket.Value)
}

func TestSearchPer10kWordsNormalization(t *testing.T) {
	store := memory.NewStore()
	text := strings.Repeat("esperanza ", 4999) + "amén"
	saveDoc(t, store, "1977-03-14", text)
	eng := New(store)

	result, err := eng.Search(context.Background(), "amén",
		domain.QueryConfig{Normalization: domain.NormPer10kWords})
	require.NoError(t, err)

	require.Len(t, result.Months, 1)
	bucket := result.Months[0]
	assert.Equal(t, 1, bucket.RawCount)
	assert.Equal(t, 5000, bucket.TotalWords)
	assert.Equal(t, 2.0, bucket.Value)
}

func TestSearchZeroDenominatorsYieldZero(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo")
	saveDoc(t, store, "1977-05-14", "el pueblo")
	eng := New(store)

	for _, mode := range []domain.NormalizationMode{domain.NormPer10kWords, domain.NormPerDocument} {
		result, err := eng.Search(context.Background(), "pueblo",
			domain.QueryConfig{Normalization: mode})
		require.NoError(t, err)

		require.Len(t, result.Months, 3)
		april := result.Months[1]
		assert.Equal(t, 0, april.DocumentCount, "mode %s", mode)
		assert.Equal(t, 0.0, april.Value, "mode %s", mode)
	}
}

func TestSearchSmoothing(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "paz paz")
	saveDoc(t, store, "1977-04-14", "paz paz paz paz")
	saveDoc(t, store, "1977-05-14", "paz paz paz paz paz paz")
	eng := New(store)

	unsmoothed, err := eng.Search(context.Background(), "paz",
		domain.QueryConfig{Normalization: domain.NormPerDocument})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, bucketValues(unsmoothed))

	smoothed, err := eng.Search(context.Background(), "paz",
		domain.QueryConfig{Normalization: domain.NormPerDocument, SmoothingWindow: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, bucketValues(smoothed))

	// Raw counts stay exact regardless of the display smoothing.
	for i, want := range []int{2, 4, 6} {
		assert.Equal(t, want, smoothed.Months[i].RawCount)
	}
}

func bucketValues(result domain.SearchResult) []float64 {
	values := make([]float64, len(result.Months))
	for i, b := range result.Months {
		values[i] = b.Value
	}
	return values
}

func TestSearchDrilldownListsOnlyContributors(t *testing.T) {
	store := memory.NewStore()
	match := saveDoc(t, store, "1977-03-14", "el pueblo de dios y el pueblo")
	saveDoc(t, store, "1977-03-21", "la esperanza del mundo")
	eng := New(store)

	result, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})
	require.NoError(t, err)

	require.Len(t, result.Months, 1)
	bucket := result.Months[0]
	assert.Equal(t, 2, bucket.DocumentCount)
	require.Len(t, bucket.Documents, 1)
	assert.Equal(t, match.ID, bucket.Documents[0].ID)
	assert.Equal(t, 2, bucket.Documents[0].Count)
}

func TestSearchSkipsMalformedDocument(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo de dios")
	saveDoc(t, store, "1977-04-02", "el pueblo \xff\xfe roto")
	eng := New(store)

	result, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})
	require.NoError(t, err)

	// The malformed document is excluded entirely: it neither counts nor
	// extends the month range.
	assert.Equal(t, 1, result.TotalCount)
	require.Len(t, result.Months, 1)
	assert.Equal(t, domain.Month{Year: 1977, Month: time.March}, result.Months[0].Month)
}

func TestSearchTotalEqualsBucketSum(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo de dios y el pueblo")
	saveDoc(t, store, "1977-04-02", "pueblo pueblo pueblo")
	saveDoc(t, store, "1977-07-10", "sin coincidencias")
	eng := New(store)

	result, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})
	require.NoError(t, err)

	sum := 0
	for _, b := range result.Months {
		sum += b.RawCount
	}
	assert.Equal(t, result.TotalCount, sum)
}

func TestSearchMonotonicInCorpusSize(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo de dios")
	eng := New(store)

	before, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})
	require.NoError(t, err)

	saveDoc(t, store, "1977-03-20", "el pueblo")

	after, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, after.TotalCount, before.TotalCount)
	assert.GreaterOrEqual(t, after.Months[0].RawCount, before.Months[0].RawCount)
}

func TestSearchDeterministic(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo de dios")
	saveDoc(t, store, "1977-03-20", "el pueblo unido")
	saveDoc(t, store, "1977-05-01", "pueblo pueblo")
	eng := New(store)

	cfg := domain.QueryConfig{Normalization: domain.NormPer10kWords, SmoothingWindow: 1}

	first, err := eng.Search(context.Background(), "pueblo", cfg)
	require.NoError(t, err)
	second, err := eng.Search(context.Background(), "pueblo", cfg)
	require.NoError(t, err)

	first.Elapsed = 0
	second.Elapsed = 0
	assert.Equal(t, first, second)
}

func TestSearchAppliesDefaults(t *testing.T) {
	store := memory.NewStore()
	saveDoc(t, store, "1977-03-14", "el pueblo")
	eng := New(store)

	result, err := eng.Search(context.Background(), "pueblo", domain.QueryConfig{})
	require.NoError(t, err)

	assert.Equal(t, domain.LanguageSpanish, result.Config.Language)
	assert.Equal(t, domain.NormRaw, result.Config.Normalization)
	assert.False(t, result.Config.AccentSensitive)
}

func TestSearchEnglishLanguage(t *testing.T) {
	store := memory.NewStore()
	doc := domain.Document{
		ID:          uuid.New(),
		Date:        mustDate(t, "1978-01-15"),
		EnglishText: "the people of god",
		Status:      domain.StatusActive,
	}
	require.NoError(t, store.Save(context.Background(), doc))
	eng := New(store)

	result, err := eng.Search(context.Background(), "people",
		domain.QueryConfig{Language: domain.LanguageEnglish})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)

	// The same corpus has no Spanish transcripts at all.
	_, err = eng.Search(context.Background(), "people", domain.QueryConfig{})
	var uerr *apperr.UnavailableError
	require.ErrorAs(t, err, &uerr)
}
