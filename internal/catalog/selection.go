package catalog

import "fmt"

// Selection is the set of filters chosen for one round.
type Selection struct {
	City  City
	Month Month
	Day   Day
}

// MonthPhrase describes the month filter as shown before the day menu.
func (s Selection) MonthPhrase() string {
	if s.Month.IsAll() {
		return "months of January through June"
	}
	return fmt.Sprintf("month of %s", Title(s.Month.String()))
}

// Summary is the sentence printed before the statistics.
func (s Selection) Summary() string {
	every := ""
	if !s.Day.IsAll() {
		every = fmt.Sprintf(" for every %s", Title(s.Day.String()))
	}
	month := "January until June"
	if !s.Month.IsAll() {
		month = Title(s.Month.String())
	}
	return fmt.Sprintf("Displaying bikeshare data from %s%s in %s.", s.City.Title(), every, month)
}
