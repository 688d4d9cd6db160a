package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bikeshare/internal/catalog"
	"github.com/verte-zerg/bikeshare/internal/tripdata"
)

const (
	separatorWidth = 50
	noTrips        = "No trips match the selected filters."
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// now is replaced in tests.
var now = time.Now

// Reporter prints one block of statistics for a filtered table.
type Reporter func(w io.Writer, t *tripdata.Table, sel catalog.Selection) error

// Reporters returns the reporters in display order.
func Reporters() []Reporter {
	return []Reporter{TimeStats, StationStats, DurationStats, UserStats}
}

// section prints the title, the lines produced by body, the time body took
// and a separator. An empty table short-circuits body.
func section(w io.Writer, title string, t *tripdata.Table, body func() ([]string, error)) error {
	if err := writeLines(w, "", headerStyle.Render(title), ""); err != nil {
		return err
	}
	start := now()
	lines := []string{noTrips}
	if t.Len() > 0 {
		var err error
		lines, err = body()
		if err != nil {
			return err
		}
	}
	elapsed := now().Sub(start).Seconds()
	lines = append(lines,
		"",
		fmt.Sprintf("This took %s seconds.", strconv.FormatFloat(elapsed, 'f', -1, 64)),
		strings.Repeat("-", separatorWidth),
	)
	return writeLines(w, lines...)
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func countRows[T comparable](counts []Count[T]) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{fmt.Sprint(c.Value), strconv.Itoa(c.N)})
	}
	return rows
}
