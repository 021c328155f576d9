package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/homily-archive/ngram-search/internal/apperr"
	"github.com/homily-archive/ngram-search/internal/corpus/sqlite"
	"github.com/homily-archive/ngram-search/internal/domain"
	"github.com/homily-archive/ngram-search/internal/engine"
)

var (
	flagDB            string
	flagLang          string
	flagStrictAccents bool
	flagNorm          string
	flagSmoothing     int
	flagTop           int
)

// normAliases maps the short flag spellings to normalization modes.
var normAliases = map[string]domain.NormalizationMode{
	"raw":   domain.NormRaw,
	"words": domain.NormPer10kWords,
	"docs":  domain.NormPerDocument,
}

var rootCmd = &cobra.Command{
	Use:   "ngram <term>...",
	Short: "Plot how often a word or phrase appears in the homily corpus over time",
	Long: `Scans every dated homily transcript for a word or phrase and draws a
per-month frequency chart, with the documents behind each spike.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runSearch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", sqlite.DefaultPath, "path to the corpus database")
	rootCmd.Flags().StringVar(&flagLang, "lang", "es", "transcript language (es or en)")
	rootCmd.Flags().BoolVar(&flagStrictAccents, "strict-accents", false, "match accents exactly")
	rootCmd.Flags().StringVar(&flagNorm, "norm", "raw", "normalization: raw, words (per 10k words) or docs (per document)")
	rootCmd.Flags().IntVar(&flagSmoothing, "smoothing", 0, "moving average half-window (0-3)")
	rootCmd.Flags().IntVar(&flagTop, "top", 10, "number of contributing documents to list")
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")

	norm, ok := normAliases[flagNorm]
	if !ok {
		return apperr.NewValidation(fmt.Sprintf("unknown normalization %q, expected raw, words or docs", flagNorm))
	}

	store, err := sqlite.NewStore(cmd.Context(), sqlite.Config{Path: flagDB})
	if err != nil {
		return apperr.NewUnavailable("corpus", err)
	}
	defer store.Close()

	cfg := domain.QueryConfig{
		Language:        domain.Language(flagLang),
		AccentSensitive: flagStrictAccents,
		Normalization:   norm,
		SmoothingWindow: flagSmoothing,
	}

	result, err := engine.New(store).Search(cmd.Context(), term, cfg)
	if err != nil {
		return err
	}

	renderResult(cmd.OutOrStdout(), result, flagTop)
	return nil
}

// Execute runs the CLI and exits non-zero on failure. Bad input and an
// unreachable or empty corpus get their own messages so scripts can tell
// them apart from a crash.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ve *apperr.ValidationError
		var ue *apperr.UnavailableError
		switch {
		case errors.As(err, &ve):
			fmt.Fprintln(os.Stderr, "invalid query:", ve.Error())
		case errors.As(err, &ue):
			fmt.Fprintln(os.Stderr, ue.Error())
		default:
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
