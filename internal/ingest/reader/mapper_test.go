package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homily-archive/ngram-search/internal/domain"
)

func newTestMapper(t *testing.T) *DocumentMapper {
	root := t.TempDir()
	writeTranscript(t, root, "1977/03/14/spanish.txt", "el pueblo de dios camina")
	writeTranscript(t, root, "1977/03/14/english.txt", "the people of god walk together")
	return NewDocumentMapper(NewTextTree(root), domain.Languages)
}

func TestDocumentMapper_Map(t *testing.T) {
	mapper := newTestMapper(t)

	rec := CatalogRecord{
		Date:         "1977-03-14",
		Occasion:     "Second Sunday of Lent",
		Title:        "The Transfigured People",
		SpanishTitle: "El pueblo transfigurado",
		URL:          "https://example.org/homilies/1977-03-14",
		BiblicalRefs: "Mark 9:2-10",
		SpanishPDF:   "https://example.org/pdf/es.pdf",
		EnglishPDF:   "https://example.org/pdf/en.pdf",
		AudioURL:     "https://example.org/audio.mp3",
	}

	doc, err := mapper.Map(rec)
	require.NoError(t, err)

	assert.Equal(t, 1977, doc.Date.Year())
	assert.Equal(t, "El pueblo transfigurado", doc.SpanishTitle)
	assert.Equal(t, "The Transfigured People", doc.EnglishTitle)
	assert.Equal(t, "Second Sunday of Lent", doc.Occasion)
	assert.Equal(t, domain.StatusActive, doc.Status, "status defaults to active")
	assert.Equal(t, "el pueblo de dios camina", doc.SpanishText)
	assert.Equal(t, 5, doc.SpanishWords)
	assert.Equal(t, "the people of god walk together", doc.EnglishText)
	assert.Equal(t, 6, doc.EnglishWords)
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestDocumentMapper_DeterministicID(t *testing.T) {
	mapper := newTestMapper(t)
	rec := CatalogRecord{
		Date: "1977-03-14",
		URL:  "https://example.org/homilies/1977-03-14",
	}

	first, err := mapper.Map(rec)
	require.NoError(t, err)
	second, err := mapper.Map(rec)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same URL maps to the same ID on re-import")

	other, err := mapper.Map(CatalogRecord{Date: "1977-03-14", URL: "https://example.org/other"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestDocumentMapper_IDFallsBackToDate(t *testing.T) {
	mapper := newTestMapper(t)

	first, err := mapper.Map(CatalogRecord{Date: "1977-03-14"})
	require.NoError(t, err)
	second, err := mapper.Map(CatalogRecord{Date: "1977-03-14"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestDocumentMapper_RejectsBadDate(t *testing.T) {
	mapper := newTestMapper(t)

	_, err := mapper.Map(CatalogRecord{Date: "14 March 1977"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestDocumentMapper_RejectsUnknownStatus(t *testing.T) {
	mapper := newTestMapper(t)

	_, err := mapper.Map(CatalogRecord{Date: "1977-03-14", Status: "draft"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")

	doc, err := mapper.Map(CatalogRecord{Date: "1977-04-02", Status: "placeholder"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaceholder, doc.Status)
}

func TestDocumentMapper_MissingTextsLeaveEmptyFields(t *testing.T) {
	mapper := newTestMapper(t)

	doc, err := mapper.Map(CatalogRecord{Date: "1979-01-07"})
	require.NoError(t, err)
	assert.Empty(t, doc.SpanishText)
	assert.Zero(t, doc.SpanishWords)
	assert.Empty(t, doc.EnglishText)
	assert.Zero(t, doc.EnglishWords)
}

func TestDocumentMapper_SpanishOnlyConfiguration(t *testing.T) {
	root := t.TempDir()
	writeTranscript(t, root, "1977/03/14/spanish.txt", "el pueblo")
	writeTranscript(t, root, "1977/03/14/english.txt", "the people")
	mapper := NewDocumentMapper(NewTextTree(root), []domain.Language{domain.LanguageSpanish})

	doc, err := mapper.Map(CatalogRecord{Date: "1977-03-14"})
	require.NoError(t, err)
	assert.Equal(t, "el pueblo", doc.SpanishText)
	assert.Empty(t, doc.EnglishText, "unconfigured languages are not loaded")
}
