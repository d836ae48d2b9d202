package board

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	iso8601 "github.com/senseyeio/duration"

	"github.com/talosati/refundrebel-dev-challenge/pkg/raildata"
)

// FormatDelay renders a delay in minutes for display. A missing delay shows
// as "--", a zero delay as "On time".
func FormatDelay(minutes *int) string {
	if minutes == nil {
		return "--"
	}

	if *minutes == 0 {
		return "On time"
	}

	suffix := "mins"
	if *minutes == 1 {
		suffix = "min"
	}

	return fmt.Sprintf("+ %d %s", *minutes, suffix)
}

// horizonToMinutes converts an ISO8601 duration (e.g. PT45M, PT1H30M) into
// whole minutes from now.
func horizonToMinutes(value string, now time.Time) (int, error) {
	parsed, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, fmt.Errorf("horizon should be an ISO8601 duration: %w", err)
	}

	return int(parsed.Shift(now).Sub(now).Minutes()), nil
}

func renderBoard(w io.Writer, events []raildata.StationEvent) {
	table := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(table, "LINE\tWHEN\tDELAY\tPLATFORM\tSTATION")
	for _, event := range events {
		when := "--"
		if event.When != nil {
			when = event.When.Format("15:04")
		}

		platform := "--"
		if event.Platform != nil {
			platform = *event.Platform
		}

		delay := event.Delay
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n",
			event.Line, when, FormatDelay(&delay), platform, event.Station)
	}

	table.Flush()
}
