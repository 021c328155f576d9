package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/homily-archive/ngram-search/internal/corpus/factory"
	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/ingest"
	"github.com/homily-archive/ngram-search/internal/ingest/collector"
	"github.com/homily-archive/ngram-search/internal/ingest/reader"
)

func main() {
	cfg, err := LoadImportConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	file, err := os.Open(cfg.ManifestPath)
	if err != nil {
		slog.Error("Failed to open import manifest", "error", err)
		os.Exit(1)
	}
	manifest, err := reader.NewYAMLManifestLoader(file).Load(true)
	file.Close()
	if err != nil {
		slog.Error("Failed to load import manifest", "error", err)
		os.Exit(1)
	}

	languages, err := parseLanguages(manifest.Languages)
	if err != nil {
		slog.Error("Invalid import manifest", "error", err)
		os.Exit(1)
	}

	records, err := reader.ReadCatalog(manifest.Catalog)
	if err != nil {
		slog.Error("Failed to read catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "records", len(records), "languages", manifest.Languages)

	store, err := factory.NewStore(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create corpus store", "error", err)
		os.Exit(1)
	}

	mapper := reader.NewDocumentMapper(reader.NewTextTree(manifest.TextRoot), languages)
	coll := collector.NewDocumentCollector(records, mapper)
	pipeline := ingest.NewDocumentPipeline(coll, store, ingest.WithBulk(manifest.BatchSize))

	if err := pipeline.Run(ctx); err != nil {
		slog.Error("Import failed", "error", err)
		os.Exit(1)
	}
}

func parseLanguages(raw []string) ([]domain.Language, error) {
	languages := make([]domain.Language, 0, len(raw))
	for _, r := range raw {
		lang := domain.Language(r)
		if !domain.SupportedLanguages[lang] {
			return nil, fmt.Errorf("unsupported language %q", r)
		}
		languages = append(languages, lang)
	}
	return languages, nil
}
