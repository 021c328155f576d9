package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/homily-archive/ngram-search/internal/apperr"
	"github.com/homily-archive/ngram-search/internal/corpus/sqlite"
	"github.com/homily-archive/ngram-search/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report corpus coverage: document counts, date range, words per language",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := sqlite.NewStore(cmd.Context(), sqlite.Config{Path: flagDB})
	if err != nil {
		return apperr.NewUnavailable("corpus", err)
	}
	defer store.Close()

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return apperr.NewUnavailable("corpus", err)
	}

	renderStats(cmd.OutOrStdout(), stats)
	return nil
}

func renderStats(w io.Writer, stats domain.CorpusStats) {
	fmt.Fprintf(w, "Documents: %d total, %d active\n", stats.TotalDocuments, stats.ActiveDocuments)
	if !stats.EarliestDate.IsZero() {
		fmt.Fprintf(w, "Range:     %s to %s\n",
			stats.EarliestDate.Format(time.DateOnly), stats.LatestDate.Format(time.DateOnly))
	}
	for _, lang := range domain.Languages {
		ls, ok := stats.Languages[lang]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s: %d transcripts, %d words\n", lang, ls.DocumentsWithText, ls.TotalWords)
	}
}
