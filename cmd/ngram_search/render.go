package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/homily-archive/ngram-search/internal/domain"
)

const chartWidth = 40

func renderResult(w io.Writer, result domain.SearchResult, top int) {
	fmt.Fprintf(w, "%q: %d occurrences in %d documents (%.3fs)\n\n",
		result.Term, result.TotalCount, result.TotalDocuments, result.Elapsed.Seconds())

	renderChart(w, result)

	if top > 0 && result.TotalDocuments > 0 {
		fmt.Fprintln(w)
		renderTopDocuments(w, result, top)
	}
}

func renderChart(w io.Writer, result domain.SearchResult) {
	maxValue := 0.0
	for _, b := range result.Months {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}

	showValue := result.Config.Normalization != domain.NormRaw || result.Config.SmoothingWindow > 0

	for _, b := range result.Months {
		bar := strings.Repeat("█", barLength(b.Value, maxValue))
		line := fmt.Sprintf("%s  %-*s %4d", b.Month, chartWidth, bar, b.RawCount)
		if showValue {
			line += fmt.Sprintf("  %7.2f", b.Value)
		}
		fmt.Fprintln(w, line)
	}
}

// barLength scales a value against the series maximum, keeping any
// non-zero value visible as at least one cell.
func barLength(value, maxValue float64) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	n := int(math.Round(value / maxValue * chartWidth))
	if n < 1 {
		n = 1
	}
	if n > chartWidth {
		n = chartWidth
	}
	return n
}

func renderTopDocuments(w io.Writer, result domain.SearchResult, top int) {
	var matches []domain.DocumentMatch
	for _, b := range result.Months {
		matches = append(matches, b.Documents...)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Count != matches[j].Count {
			return matches[i].Count > matches[j].Count
		}
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.Before(matches[j].Date)
		}
		return matches[i].ID.String() < matches[j].ID.String()
	})
	if len(matches) > top {
		matches = matches[:top]
	}

	fmt.Fprintf(w, "Top %d documents\n\n", len(matches))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tCount\tTitle")
	fmt.Fprintln(tw, "---\t---\t---")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", m.Date.Format(time.DateOnly), m.Count, m.Title)
	}
	tw.Flush()
}
