package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/homily-archive/ngram-search/internal/corpus"
	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/ingest/collector"
)

const defaultBatchSize = 100

type Pipeline interface {
	Run(ctx context.Context) error
}

type bulkOptions struct {
	enabled bool
	size    int
}

// DocumentPipeline drains a document collector into a corpus store.
// Malformed records are logged and skipped; the import carries on and
// reports how much of the catalog made it through.
type DocumentPipeline struct {
	collector collector.Collector[domain.Document]
	storer    corpus.Storer
	bulk      bulkOptions
}

type PipelineOption func(*DocumentPipeline)

func WithBulk(size int) PipelineOption {
	return func(p *DocumentPipeline) {
		if size <= 0 {
			size = defaultBatchSize
		}
		p.bulk = bulkOptions{enabled: true, size: size}
	}
}

func NewDocumentPipeline(c collector.Collector[domain.Document], storer corpus.Storer, opts ...PipelineOption) *DocumentPipeline {
	p := &DocumentPipeline{
		collector: c,
		storer:    storer,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *DocumentPipeline) Run(ctx context.Context) error {
	start := time.Now()

	results, err := p.collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("starting collection: %w", err)
	}

	var (
		imported  int
		skipped   int
		saveFails int
		batch     []domain.Document
	)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := p.storer.SaveBulk(ctx, batch); err != nil {
			slog.Error("Failed to save document batch", "error", err, "count", len(batch))
			saveFails += len(batch)
		} else {
			imported += len(batch)
			slog.Info("Saved document batch", "count", len(batch))
		}
		batch = batch[:0]
	}

loop:
	for {
		select {
		case <-ctx.Done():
			slog.Info("Import cancelled, stopping collection")
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				break loop
			}
			if res.Err != nil {
				slog.Warn("Skipping catalog record", "error", res.Err)
				skipped++
				continue
			}

			if !p.bulk.enabled {
				if err := p.storer.Save(ctx, res.Result); err != nil {
					slog.Error("Failed to save document", "error", err, "id", res.Result.ID)
					saveFails++
				} else {
					imported++
				}
				continue
			}

			batch = append(batch, res.Result)
			if len(batch) >= p.bulk.size {
				flush()
			}
		}
	}
	flush()

	slog.Info("Import completed",
		"imported", imported,
		"skipped", skipped,
		"failed", saveFails,
		"duration", time.Since(start))

	if saveFails > 0 {
		return fmt.Errorf("import finished with %d failed saves", saveFails)
	}
	return nil
}
