package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printTrackerTable(trackers []domain.Tracker) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tASIN\tRECIPIENT\tMODE\tTARGET\tCOOLDOWN\tENABLED\n")
	for i := range trackers {
		t := &trackers[i]
		target := "-"
		switch {
		case t.TargetPrice != nil:
			target = "$" + t.TargetPrice.StringFixed(2)
		case t.PercentThreshold != nil:
			target = t.PercentThreshold.String() + "%"
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%dh\t%v\n",
			t.ID,
			t.ASIN,
			truncate(t.Recipient, 30),
			t.AlertMode,
			target,
			t.CooldownHours,
			t.Enabled,
		)
	}
	return tw.finish()
}

func printTrackerDetail(t *domain.Tracker) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", t.ID)
	tw.writef("Recipient:\t%s\n", t.Recipient)
	tw.writef("ASIN:\t%s\n", t.ASIN)
	tw.writef("Mode:\t%s\n", t.AlertMode)
	if t.TargetPrice != nil {
		tw.writef("Target Price:\t$%s\n", t.TargetPrice.StringFixed(2))
	}
	if t.PercentThreshold != nil {
		tw.writef("Threshold:\t%s%%\n", t.PercentThreshold.String())
	}
	tw.writef("Cooldown:\t%dh\n", t.CooldownHours)
	tw.writef("Enabled:\t%v\n", t.Enabled)
	if t.LastAlertSentAt != nil {
		tw.writef("Last Alert:\t%s\n", t.LastAlertSentAt.Format("2006-01-02 15:04:05"))
	}
	if t.LastAlertPrice != nil {
		tw.writef("Last Alert Price:\t$%s\n", t.LastAlertPrice.StringFixed(2))
	}
	return tw.finish()
}

func printRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSTATUS\tSTARTED\tCOMPLETED\tALERTS\tERRORS\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%s\t%d\t%d\n",
			r.ID,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			r.AlertsSent,
			r.ErrorCount,
		)
	}
	return tw.finish()
}

func printHistoryTable(points []domain.PricePoint) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("OBSERVED\tPRICE\n")
	for i := range points {
		tw.writef("%s\t$%s\n",
			points[i].ObservedAt.Format("2006-01-02 15:04:05"),
			points[i].Price.StringFixed(2),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
