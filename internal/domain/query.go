package domain

import "fmt"

// NormalizationMode selects how a month bucket's raw occurrence count is
// turned into its reported value.
type NormalizationMode string

const (
	// NormRaw: the raw occurrence count, unscaled.
	NormRaw NormalizationMode = "raw"

	// NormPer10kWords: occurrences per 10,000 words of transcript in the
	// bucket. Corrects for months with more or longer homilies.
	NormPer10kWords NormalizationMode = "per_10k_words"

	// NormPerDocument: occurrences per homily in the bucket.
	NormPerDocument NormalizationMode = "per_document"
)

var SupportedModes = map[NormalizationMode]bool{
	NormRaw:         true,
	NormPer10kWords: true,
	NormPerDocument: true,
}

// Smoothing windows are bounded; a window of w averages each month with up
// to w neighbors on each side.
const (
	MinSmoothingWindow = 0
	MaxSmoothingWindow = 3
)

// QueryConfig carries the per-request search settings. It is stateless and
// never persisted.
type QueryConfig struct {
	Language        Language          `json:"language"`
	AccentSensitive bool              `json:"accent_sensitive"`
	Normalization   NormalizationMode `json:"normalization"`
	SmoothingWindow int               `json:"smoothing_window"`
}

// WithDefaults returns a copy with zero-value fields replaced by defaults:
// Spanish, accent-insensitive, raw counts, no smoothing.
func (c QueryConfig) WithDefaults() QueryConfig {
	result := c
	if result.Language == "" {
		result.Language = DefaultSearchLanguage
	}
	if result.Normalization == "" {
		result.Normalization = NormRaw
	}
	return result
}

func (c QueryConfig) Validate() error {
	if !SupportedLanguages[c.Language] {
		return fmt.Errorf("unsupported language %q", c.Language)
	}
	if !SupportedModes[c.Normalization] {
		return fmt.Errorf("unsupported normalization mode %q", c.Normalization)
	}
	if c.SmoothingWindow < MinSmoothingWindow || c.SmoothingWindow > MaxSmoothingWindow {
		return fmt.Errorf("smoothing window %d out of range [%d, %d]",
			c.SmoothingWindow, MinSmoothingWindow, MaxSmoothingWindow)
	}
	return nil
}
