package tripdata

import (
	"testing"

	"github.com/verte-zerg/bikeshare/internal/catalog"
	"github.com/verte-zerg/bikeshare/internal/testutil"
)

func loadSample(t *testing.T) *Table {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteCSV(t, dir, "chicago.csv", testutil.Sample())
	table, err := NewLoader(dir, nil).Load(catalog.Selection{City: chicago(), Month: catalog.MonthAll, Day: catalog.DayAll})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return table
}

func TestRowsPaging(t *testing.T) {
	table := loadSample(t)

	first := table.Rows(0, 3)
	if len(first.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(first.Rows))
	}
	if first.Header[0] != ColStartTime {
		t.Fatalf("unexpected header %v", first.Header)
	}
	if first.Rows[0][0] != "2017-03-06 08:15:00" {
		t.Fatalf("unexpected first row %v", first.Rows[0])
	}

	tail := table.Rows(3, 5)
	if len(tail.Rows) != 2 {
		t.Fatalf("expected 2 trailing rows, got %d", len(tail.Rows))
	}

	past := table.Rows(10, 5)
	if len(past.Rows) != 0 {
		t.Fatalf("expected empty page past the end, got %d rows", len(past.Rows))
	}
	if len(past.Header) == 0 {
		t.Fatalf("expected header on empty page")
	}
}

func TestStringsSkipsMissingValues(t *testing.T) {
	table := loadSample(t)
	genders, ok := table.Strings(ColGender)
	if !ok {
		t.Fatalf("expected gender column")
	}
	if len(genders) != 4 {
		t.Fatalf("expected 4 non-empty genders, got %v", genders)
	}
	years, ok := table.Floats(ColBirthYear)
	if !ok || len(years) != 4 {
		t.Fatalf("expected 4 birth years, got %v", years)
	}
}

func TestStartTimes(t *testing.T) {
	table := loadSample(t)
	starts, err := table.StartTimes()
	if err != nil {
		t.Fatalf("start times: %v", err)
	}
	if starts[2].Hour() != 17 {
		t.Fatalf("expected hour 17, got %d", starts[2].Hour())
	}
}
