package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/bikeshare/internal/catalog"
	"github.com/verte-zerg/bikeshare/internal/tripdata"
)

// TimeStats prints the most frequent month, weekday and hour of travel.
func TimeStats(w io.Writer, t *tripdata.Table, _ catalog.Selection) error {
	return section(w, "Calculating The Most Frequent Times of Travel...", t, func() ([]string, error) {
		months, err := t.Ints(tripdata.ColMonth)
		if err != nil {
			return nil, err
		}
		days, _ := t.Strings(tripdata.ColDay)
		starts, err := t.StartTimes()
		if err != nil {
			return nil, err
		}
		hours := make([]int, len(starts))
		for i, ts := range starts {
			hours[i] = ts.Hour()
		}

		month, _ := Mode(months)
		day, _ := Mode(days)
		hour, _ := Mode(hours)
		return []string{
			fmt.Sprintf("Month with the most usage: %s", time.Month(month).String()),
			fmt.Sprintf("Day of the week with the most usage: %s", day),
			fmt.Sprintf("Hour of the day with the most usage: %d:00", hour),
			fmt.Sprintf("Trips by hour (00-23): [%s]", Sparkline(Histogram(hours, 24))),
		}, nil
	})
}
