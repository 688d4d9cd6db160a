package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/verte-zerg/bikeshare/internal/catalog"
	"github.com/verte-zerg/bikeshare/internal/tripdata"
)

// Span is a number of seconds split into display units. Hours are only
// split out when the minutes exceed 60, so exactly 60 minutes stays in
// minutes.
type Span struct {
	Hours     int
	Minutes   int
	Seconds   int
	WithHours bool
}

// Decompose splits whole seconds into a Span.
func Decompose(total int) Span {
	s := Span{Minutes: total / 60, Seconds: total % 60}
	if s.Minutes > 60 {
		s.Hours, s.Minutes = s.Minutes/60, s.Minutes%60
		s.WithHours = true
	}
	return s
}

// Total converts the span back to seconds.
func (s Span) Total() int {
	return s.Hours*3600 + s.Minutes*60 + s.Seconds
}

func (s Span) String() string {
	if s.WithHours {
		return fmt.Sprintf("%d hours, %d minutes, and %d seconds", s.Hours, s.Minutes, s.Seconds)
	}
	return fmt.Sprintf("%d minutes and %d seconds", s.Minutes, s.Seconds)
}

// DurationTotals returns the rounded sum and mean of the durations.
func DurationTotals(durations []float64) (total, mean int) {
	if len(durations) == 0 {
		return 0, 0
	}
	var sum float64
	for _, d := range durations {
		sum += d
	}
	return int(math.RoundToEven(sum)), int(math.RoundToEven(sum / float64(len(durations))))
}

// DurationStats prints the total and mean trip duration.
func DurationStats(w io.Writer, t *tripdata.Table, _ catalog.Selection) error {
	return section(w, "Calculating Trip Duration...", t, func() ([]string, error) {
		durations, ok := t.Floats(tripdata.ColTripDuration)
		if !ok {
			return nil, fmt.Errorf("missing column %q", tripdata.ColTripDuration)
		}
		if len(durations) == 0 {
			return []string{"No trip duration data."}, nil
		}
		total, mean := DurationTotals(durations)
		return []string{
			fmt.Sprintf("The total trip duration is %s.", Decompose(total)),
			fmt.Sprintf("The average trip duration is %s.", Decompose(mean)),
		}, nil
	})
}
