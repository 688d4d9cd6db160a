package session

import (
	"strconv"

	"github.com/verte-zerg/bikeshare/internal/console"
	"github.com/verte-zerg/bikeshare/internal/stats"
	"github.com/verte-zerg/bikeshare/internal/tripdata"
)

// PageSize is the number of raw rows shown per request.
const PageSize = 5

const (
	askFirstPage  = "\nWould you like to view five lines of raw data? Enter yes or no."
	askNextPage   = "\nWould you like to view five additional lines of raw data? Enter yes or no."
	notRecognized = "Input not recognized."
)

// Page shows raw rows in blocks of PageSize for as long as the user asks
// for more. Any answer other than yes or no repeats the question.
func Page(c *console.Console, t *tripdata.Table) error {
	for {
		answer, err := c.Ask(askFirstPage)
		if err != nil {
			return err
		}
		switch answer {
		case "yes":
			c.Clear()
			showRows(c, t, 0)
			return pageMore(c, t)
		case "no":
			c.Clear()
			return nil
		default:
			c.Clear()
			c.Println(notRecognized)
		}
	}
}

func pageMore(c *console.Console, t *tripdata.Table) error {
	offset := 0
	for {
		answer, err := c.Ask(askNextPage)
		if err != nil {
			return err
		}
		switch answer {
		case "yes":
			offset += PageSize
			c.Clear()
			showRows(c, t, offset)
		case "no":
			c.Clear()
			return nil
		default:
			c.Clear()
			c.Println(notRecognized)
		}
	}
}

func showRows(c *console.Console, t *tripdata.Table, offset int) {
	page := t.Rows(offset, PageSize)
	if len(page.Rows) == 0 {
		c.Printf("Empty page: rows %d-%d are past the end of the data (%d rows).\n", offset, offset+PageSize-1, t.Len())
		return
	}
	header := append([]string{""}, page.Header...)
	rows := make([][]string, len(page.Rows))
	for i, row := range page.Rows {
		rows[i] = append([]string{strconv.Itoa(offset + i)}, row...)
	}
	for _, line := range stats.FormatTable(header, rows, map[int]bool{0: true}) {
		c.Println(line)
	}
}
