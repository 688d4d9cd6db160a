// Package catalog maps user-entered tokens to cities, months and weekdays.
package catalog

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// City identifies one bikeshare dataset.
type City struct {
	Code int
	Name string
	File string
}

// Title returns the display name of the city.
func (c City) Title() string {
	return Title(c.Name)
}

// Month is a month filter. MonthAll disables month filtering.
type Month int

// Months with trip data, plus the "all" sentinel.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	MonthAll
)

// Day is a weekday filter. DayAll disables weekday filtering.
type Day int

// Weekdays in menu order, plus the "all" sentinel.
const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	DayAll
)

var cities = []City{
	{Code: 1, Name: "chicago", File: "chicago.csv"},
	{Code: 2, Name: "new york city", File: "new_york_city.csv"},
	{Code: 3, Name: "washington", File: "washington.csv"},
}

var monthNames = map[Month]string{
	January:  "january",
	February: "february",
	March:    "march",
	April:    "april",
	May:      "may",
	June:     "june",
	MonthAll: "all",
}

var dayNames = map[Day]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
	DayAll:    "all",
}

var (
	cityTokens  = buildCityTokens()
	monthTokens = buildTokens(monthNames)
	dayTokens   = buildTokens(dayNames)
)

var titleCaser = cases.Title(language.English)

func buildCityTokens() map[string]City {
	out := make(map[string]City, len(cities)*2+2)
	for _, c := range cities {
		out[strconv.Itoa(c.Code)] = c
		out[c.Name] = c
	}
	// Short aliases for New York City.
	out["nyc"] = cities[1]
	out["new york"] = cities[1]
	return out
}

func buildTokens[T ~int](names map[T]string) map[string]T {
	out := make(map[string]T, len(names)*2)
	for code, name := range names {
		out[strconv.Itoa(int(code))] = code
		out[name] = code
	}
	return out
}

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// ResolveCity looks up a city by menu number or name, ignoring case.
func ResolveCity(token string) (City, bool) {
	c, ok := cityTokens[normalize(token)]
	return c, ok
}

// ResolveMonth looks up a month by menu number or name, ignoring case.
func ResolveMonth(token string) (Month, bool) {
	m, ok := monthTokens[normalize(token)]
	return m, ok
}

// ResolveDay looks up a weekday by menu number or name, ignoring case.
func ResolveDay(token string) (Day, bool) {
	d, ok := dayTokens[normalize(token)]
	return d, ok
}

// Cities returns the cities in menu order.
func Cities() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// Months returns every month option in menu order, ending with MonthAll.
func Months() []Month {
	out := make([]Month, 0, int(MonthAll))
	for m := January; m <= MonthAll; m++ {
		out = append(out, m)
	}
	return out
}

// Days returns every day option in menu order, ending with DayAll.
func Days() []Day {
	out := make([]Day, 0, int(DayAll))
	for d := Monday; d <= DayAll; d++ {
		out = append(out, d)
	}
	return out
}

// String returns the lowercase month name, or "all".
func (m Month) String() string {
	if name, ok := monthNames[m]; ok {
		return name
	}
	return strings.ToLower(time.Month(m).String())
}

// IsAll reports whether the month disables filtering.
func (m Month) IsAll() bool {
	return m == MonthAll
}

// String returns the lowercase weekday name, or "all".
func (d Day) String() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return ""
}

// IsAll reports whether the day disables filtering.
func (d Day) IsAll() bool {
	return d == DayAll
}

// Weekday converts a concrete day to time.Weekday. DayAll has no weekday.
func (d Day) Weekday() (time.Weekday, bool) {
	if d < Monday || d > Sunday {
		return 0, false
	}
	return time.Weekday(int(d) % 7), true
}

// Title upper-cases the first letter of each word.
func Title(s string) string {
	return titleCaser.String(s)
}
