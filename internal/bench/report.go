package bench

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Search Latency: %s ===\n", r.Suite)
	fmt.Fprintf(tw, "%d iterations per query, %d warmup\n\n", r.Config.Iterations, r.Config.Warmup)

	header := []string{"Term", "Min", "p50", "p90", "p95", "p99", "Max", "Mean", "Stddev", "Samples", "Errors"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, qr := range r.Queries {
		fmt.Fprintln(tw, strings.Join(queryRow(qr), "\t"))
	}

	if !r.Aggregate.IsZero() {
		fmt.Fprintln(tw, strings.Join(sep, "\t"))
		fmt.Fprintln(tw, strings.Join(aggregateRow(r.Aggregate), "\t"))
	}

	tw.Flush()
}

func queryRow(qr QueryResult) []string {
	s := qr.Stats
	return []string{
		qr.Query.Term,
		fmtDuration(s.Min),
		fmtDuration(s.P50()),
		fmtDuration(s.P90()),
		fmtDuration(s.P95()),
		fmtDuration(s.P99()),
		fmtDuration(s.Max),
		fmtDuration(s.Mean),
		fmtDuration(s.Stddev),
		fmt.Sprintf("%d", s.SampleCount),
		fmt.Sprintf("%d", qr.Errors),
	}
}

func aggregateRow(s LatencyStats) []string {
	return []string{
		"(all)",
		fmtDuration(s.Min),
		fmtDuration(s.P50()),
		fmtDuration(s.P90()),
		fmtDuration(s.P95()),
		fmtDuration(s.P99()),
		fmtDuration(s.Max),
		fmtDuration(s.Mean),
		fmtDuration(s.Stddev),
		fmt.Sprintf("%d", s.SampleCount),
		"",
	}
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Microseconds()))
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
