package collector

import (
	"context"
	"fmt"

	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/ingest/reader"
)

// DocumentCollector streams catalog records through the mapper. Records the
// mapper rejects come out as error results, tagged with their date so the
// import log points at the broken row.
type DocumentCollector struct {
	records []reader.CatalogRecord
	mapper  *reader.DocumentMapper
}

func NewDocumentCollector(records []reader.CatalogRecord, mapper *reader.DocumentMapper) *DocumentCollector {
	return &DocumentCollector{
		records: records,
		mapper:  mapper,
	}
}

func (dc *DocumentCollector) Collect(ctx context.Context) (<-chan Result[domain.Document], error) {
	out := make(chan Result[domain.Document])

	go func() {
		defer close(out)

		for _, rec := range dc.records {
			doc, err := dc.mapper.Map(rec)
			if err != nil {
				err = fmt.Errorf("catalog record %q: %w", rec.Date, err)
			}

			select {
			case <-ctx.Done():
				return
			case out <- Result[domain.Document]{Result: doc, Err: err}:
			}
		}
	}()

	return out, nil
}
