package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/bikeshare/internal/catalog"
	"github.com/verte-zerg/bikeshare/internal/tripdata"
)

const routeSeparator = " -> "

// StationStats prints the most popular start station, end station and trip.
func StationStats(w io.Writer, t *tripdata.Table, _ catalog.Selection) error {
	return section(w, "Calculating The Most Popular Stations and Trip...", t, func() ([]string, error) {
		starts, ok := t.Values(tripdata.ColStartStation)
		if !ok {
			return nil, fmt.Errorf("missing column %q", tripdata.ColStartStation)
		}
		ends, ok := t.Values(tripdata.ColEndStation)
		if !ok {
			return nil, fmt.Errorf("missing column %q", tripdata.ColEndStation)
		}

		return []string{
			fmt.Sprintf("Most popular start station: %s", modeOrNone(nonEmpty(starts))),
			fmt.Sprintf("Most popular end station: %s", modeOrNone(nonEmpty(ends))),
			fmt.Sprintf("Most popular station combination: %s", modeOrNone(routes(starts, ends))),
		}, nil
	})
}

// routes joins start and end stations row by row, skipping rows where
// either side is missing.
func routes(starts, ends []string) []string {
	out := make([]string, 0, len(starts))
	for i := range starts {
		if i >= len(ends) || starts[i] == "" || ends[i] == "" {
			continue
		}
		out = append(out, starts[i]+routeSeparator+ends[i])
	}
	return out
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func modeOrNone(values []string) string {
	if v, ok := Mode(values); ok {
		return v
	}
	return "n/a"
}
