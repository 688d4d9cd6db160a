package catalog

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCityAliases(t *testing.T) {
	nyc, ok := ResolveCity("2")
	require.True(t, ok)
	for _, token := range []string{"nyc", "new york city", "New York", "NEW YORK CITY", " nyc "} {
		got, ok := ResolveCity(token)
		require.Truef(t, ok, "token %q", token)
		assert.Equal(t, nyc, got, "token %q", token)
	}
	assert.Equal(t, "new_york_city.csv", nyc.File)
}

func TestEveryCodeHasNumericAndTextToken(t *testing.T) {
	for _, c := range Cities() {
		byNum, ok := ResolveCity(strconv.Itoa(c.Code))
		require.True(t, ok)
		byName, ok := ResolveCity(strings.ToUpper(c.Name))
		require.True(t, ok)
		assert.Equal(t, c, byNum)
		assert.Equal(t, c, byName)
	}
	for _, m := range Months() {
		got, ok := ResolveMonth(strings.ToUpper(m.String()))
		require.True(t, ok)
		assert.Equal(t, m, got)
		got, ok = ResolveMonth(strconv.Itoa(int(m)))
		require.True(t, ok)
		assert.Equal(t, m, got)
	}
	for _, d := range Days() {
		got, ok := ResolveDay(Title(d.String()))
		require.True(t, ok)
		assert.Equal(t, d, got)
		got, ok = ResolveDay(strconv.Itoa(int(d)))
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
}

func TestAllSentinels(t *testing.T) {
	m, ok := ResolveMonth("ALL")
	require.True(t, ok)
	assert.Equal(t, MonthAll, m)
	assert.True(t, m.IsAll())

	m, ok = ResolveMonth("7")
	require.True(t, ok)
	assert.Equal(t, MonthAll, m)

	d, ok := ResolveDay("all")
	require.True(t, ok)
	assert.Equal(t, DayAll, d)
	d, ok = ResolveDay("8")
	require.True(t, ok)
	assert.True(t, d.IsAll())
}

func TestUnrecognizedTokens(t *testing.T) {
	for _, token := range []string{"", "0", "4", "boston", "new"} {
		_, ok := ResolveCity(token)
		assert.Falsef(t, ok, "city %q", token)
	}
	for _, token := range []string{"8", "july", "jan"} {
		_, ok := ResolveMonth(token)
		assert.Falsef(t, ok, "month %q", token)
	}
	for _, token := range []string{"9", "mon", "weekend"} {
		_, ok := ResolveDay(token)
		assert.Falsef(t, ok, "day %q", token)
	}
}

func TestDayWeekday(t *testing.T) {
	wd, ok := Monday.Weekday()
	require.True(t, ok)
	assert.Equal(t, time.Monday, wd)
	wd, ok = Sunday.Weekday()
	require.True(t, ok)
	assert.Equal(t, time.Sunday, wd)
	_, ok = DayAll.Weekday()
	assert.False(t, ok)
}

func TestSelectionPhrases(t *testing.T) {
	city, _ := ResolveCity("nyc")
	sel := Selection{City: city, Month: March, Day: Monday}
	assert.Equal(t, "month of March", sel.MonthPhrase())
	assert.Equal(t, "Displaying bikeshare data from New York City for every Monday in March.", sel.Summary())

	sel = Selection{City: city, Month: MonthAll, Day: DayAll}
	assert.Equal(t, "months of January through June", sel.MonthPhrase())
	assert.Equal(t, "Displaying bikeshare data from New York City in January until June.", sel.Summary())
}
