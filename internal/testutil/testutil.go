// Package testutil writes trip CSV fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jszwec/csvutil"
)

// Trip is a fixture row for cities that publish demographics.
type Trip struct {
	StartTime    string   `csv:"Start Time"`
	EndTime      string   `csv:"End Time"`
	TripDuration float64  `csv:"Trip Duration"`
	StartStation string   `csv:"Start Station"`
	EndStation   string   `csv:"End Station"`
	UserType     string   `csv:"User Type"`
	Gender       string   `csv:"Gender"`
	BirthYear    *float64 `csv:"Birth Year,omitempty"`
}

// BareTrip is a fixture row without the optional demographic columns.
type BareTrip struct {
	StartTime    string  `csv:"Start Time"`
	EndTime      string  `csv:"End Time"`
	TripDuration float64 `csv:"Trip Duration"`
	StartStation string  `csv:"Start Station"`
	EndStation   string  `csv:"End Station"`
	UserType     string  `csv:"User Type"`
}

// Year returns a pointer for Trip.BirthYear.
func Year(y float64) *float64 {
	return &y
}

// WriteCSV marshals rows (a slice of Trip or BareTrip) into dir/name.
func WriteCSV(t *testing.T, dir, name string, rows any) string {
	t.Helper()
	data, err := csvutil.Marshal(rows)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return WriteRaw(t, dir, name, data)
}

// WriteRaw writes data verbatim into dir/name.
func WriteRaw(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// Sample returns a small two-month dataset with a tie-free mode in every
// column. March rows: 3, of which Mondays: 2.
func Sample() []Trip {
	return []Trip{
		{StartTime: "2017-03-06 08:15:00", EndTime: "2017-03-06 08:30:00", TripDuration: 900, StartStation: "Canal St", EndStation: "Lake Shore Dr", UserType: "Subscriber", Gender: "Male", BirthYear: Year(1985)},
		{StartTime: "2017-03-13 08:05:00", EndTime: "2017-03-13 08:20:00", TripDuration: 900, StartStation: "Canal St", EndStation: "Lake Shore Dr", UserType: "Subscriber", Gender: "Female", BirthYear: Year(1990)},
		{StartTime: "2017-03-15 17:40:00", EndTime: "2017-03-15 17:50:00", TripDuration: 600, StartStation: "Clark St", EndStation: "Canal St", UserType: "Customer", Gender: "", BirthYear: nil},
		{StartTime: "2017-06-05 08:00:00", EndTime: "2017-06-05 09:01:01", TripDuration: 3661, StartStation: "Canal St", EndStation: "State St", UserType: "Subscriber", Gender: "Male", BirthYear: Year(1985)},
		{StartTime: "2017-06-10 12:00:00", EndTime: "2017-06-10 12:10:00", TripDuration: 600, StartStation: "State St", EndStation: "Lake Shore Dr", UserType: "Customer", Gender: "Male", BirthYear: Year(2001)},
	}
}

// BareSample is Sample without the demographic columns.
func BareSample() []BareTrip {
	full := Sample()
	out := make([]BareTrip, len(full))
	for i, trip := range full {
		out[i] = BareTrip{
			StartTime:    trip.StartTime,
			EndTime:      trip.EndTime,
			TripDuration: trip.TripDuration,
			StartStation: trip.StartStation,
			EndStation:   trip.EndStation,
			UserType:     trip.UserType,
		}
	}
	return out
}
