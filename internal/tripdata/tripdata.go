// Package tripdata loads city trip CSV files into filtered tables.
package tripdata

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/verte-zerg/bikeshare/internal/catalog"
)

// Column names found in the city files.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// Columns derived from the start time during loading.
const (
	ColMonth = "month"
	ColDay   = "day"
)

var (
	// ErrNotFound means the city's data file does not exist.
	ErrNotFound = errors.New("data file not found")
	// ErrEmpty means the data file has no header or no rows.
	ErrEmpty = errors.New("data file is empty or missing headers")
)

var columnTypes = map[string]series.Type{
	ColStartTime:    series.String,
	ColEndTime:      series.String,
	ColTripDuration: series.Float,
	ColStartStation: series.String,
	ColEndStation:   series.String,
	ColUserType:     series.String,
	ColGender:       series.String,
	ColBirthYear:    series.Float,
}

var nanValues = []string{"", "NA", "NaN", "<nil>"}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05.000",
}

// Loader reads city files from a data directory.
type Loader struct {
	Dir    string
	Logger *slog.Logger
}

// NewLoader returns a Loader rooted at dir.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{Dir: dir, Logger: logger}
}

// Path returns the file path for a city.
func (l *Loader) Path(city catalog.City) string {
	return filepath.Join(l.Dir, city.File)
}

// Load reads the city file, derives month and weekday columns and applies
// the month and day filters of the selection.
func (l *Loader) Load(sel catalog.Selection) (*Table, error) {
	path := l.Path(sel.City)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	ok, err := hasRows(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithTypes(columnTypes),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, df.Err)
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	l.Logger.Debug("read trip data", "path", path, "rows", df.Nrow(), "columns", df.Ncol())

	df, err = deriveColumns(df)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare %s: %w", path, err)
	}
	df, err = applyFilters(df, sel)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s: %w", path, err)
	}
	l.Logger.Debug("filtered trip data", "month", sel.Month.String(), "day", sel.Day.String(), "rows", df.Nrow())
	return &Table{df: df}, nil
}

// hasRows reports whether the file holds a header and at least one record.
func hasRows(data []byte) (bool, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	for i := 0; i < 2; i++ {
		if _, err := r.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
	}
	return true, nil
}

func deriveColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	starts, err := parseTimes(df.Col(ColStartTime))
	if err != nil {
		return df, err
	}
	months := make([]int, len(starts))
	days := make([]string, len(starts))
	for i, ts := range starts {
		months[i] = int(ts.Month())
		days[i] = ts.Weekday().String()
	}
	df = df.Mutate(series.New(months, series.Int, ColMonth))
	df = df.Mutate(series.New(days, series.String, ColDay))
	return df, df.Err
}

func applyFilters(df dataframe.DataFrame, sel catalog.Selection) (dataframe.DataFrame, error) {
	if !sel.Month.IsAll() {
		df = df.Filter(dataframe.F{Colname: ColMonth, Comparator: series.Eq, Comparando: int(sel.Month)})
		if df.Err != nil {
			return df, df.Err
		}
	}
	if wd, ok := sel.Day.Weekday(); ok {
		df = df.Filter(dataframe.F{Colname: ColDay, Comparator: series.Eq, Comparando: wd.String()})
		if df.Err != nil {
			return df, df.Err
		}
	}
	return df, nil
}

func parseTimes(col series.Series) ([]time.Time, error) {
	if col.Err != nil {
		return nil, fmt.Errorf("missing column %q: %w", ColStartTime, col.Err)
	}
	out := make([]time.Time, col.Len())
	for i := 0; i < col.Len(); i++ {
		elem := col.Elem(i)
		if elem.IsNA() {
			return nil, fmt.Errorf("row %d: empty %s", i+1, col.Name)
		}
		ts, err := parseTime(elem.String())
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out[i] = ts
	}
	return out, nil
}

func parseTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, lastErr)
}
