package collector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/ingest/reader"
)

func TestDocumentCollector_Collect(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "1977", "03", "14")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spanish.txt"), []byte("el pueblo"), 0644))

	records := []reader.CatalogRecord{
		{Date: "1977-03-14", Title: "First", URL: "https://example.org/1"},
		{Date: "not-a-date", Title: "Broken"},
		{Date: "1977-04-02", Title: "Second", URL: "https://example.org/2"},
	}
	mapper := reader.NewDocumentMapper(reader.NewTextTree(root), domain.Languages)

	results, err := NewDocumentCollector(records, mapper).Collect(context.Background())
	require.NoError(t, err)

	var docs []domain.Document
	var errs []error
	for res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		docs = append(docs, res.Result)
	}

	require.Len(t, docs, 2)
	assert.Equal(t, "el pueblo", docs[0].SpanishText)
	assert.Equal(t, "Second", docs[1].EnglishTitle)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `catalog record "not-a-date"`)
}

func TestDocumentCollector_StopsOnCancel(t *testing.T) {
	records := make([]reader.CatalogRecord, 100)
	for i := range records {
		records[i] = reader.CatalogRecord{Date: "1977-03-14"}
	}
	mapper := reader.NewDocumentMapper(reader.NewTextTree(t.TempDir()), domain.Languages)

	ctx, cancel := context.WithCancel(context.Background())
	results, err := NewDocumentCollector(records, mapper).Collect(ctx)
	require.NoError(t, err)

	<-results
	cancel()

	// The producer goroutine must close the channel shortly after cancel.
	count := 0
	for range results {
		count++
	}
	assert.Less(t, count, len(records))
}
