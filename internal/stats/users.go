package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/bikeshare/internal/catalog"
	"github.com/verte-zerg/bikeshare/internal/tripdata"
)

// UserStats prints user type counts, gender counts and birth year extremes.
// Cities without gender or birth year columns get a notice instead.
func UserStats(w io.Writer, t *tripdata.Table, sel catalog.Selection) error {
	return section(w, "Calculating User Stats...", t, func() ([]string, error) {
		city := sel.City.Title()
		var lines []string

		types, ok := t.Strings(tripdata.ColUserType)
		if !ok {
			return nil, fmt.Errorf("missing column %q", tripdata.ColUserType)
		}
		lines = append(lines, "The types of users by number are the following:")
		lines = append(lines, FormatTable([]string{"User Type", "Count"}, countRows(ValueCounts(types)), map[int]bool{1: true})...)
		lines = append(lines, "")

		if genders, ok := t.Strings(tripdata.ColGender); ok {
			lines = append(lines, "The amount of users by gender are:")
			lines = append(lines, FormatTable([]string{"Gender", "Count"}, countRows(ValueCounts(genders)), map[int]bool{1: true})...)
			lines = append(lines, "")
		} else {
			lines = append(lines, fmt.Sprintf("Data from %s does not contain gender data.", city))
		}

		years, ok := t.Floats(tripdata.ColBirthYear)
		if !ok || len(years) == 0 {
			lines = append(lines, fmt.Sprintf("Data from %s does not contain birth year data.", city))
			return lines, nil
		}
		oldest, youngest, common := birthYears(years)
		lines = append(lines,
			fmt.Sprintf("The earliest birth year is: %d", oldest),
			fmt.Sprintf("The most recent birth year is: %d", youngest),
			fmt.Sprintf("The most common birth year is: %d", common),
		)
		return lines, nil
	})
}

// birthYears returns the minimum, maximum and most frequent year, each
// truncated to an integer. years must not be empty.
func birthYears(years []float64) (oldest, youngest, common int) {
	minYear, maxYear := years[0], years[0]
	for _, y := range years[1:] {
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	mode, _ := Mode(years)
	return int(minYear), int(maxYear), int(mode)
}
