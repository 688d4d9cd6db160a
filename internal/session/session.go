// Package session drives interactive rounds of filter selection, loading
// and reporting.
package session

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/verte-zerg/bikeshare/internal/catalog"
	"github.com/verte-zerg/bikeshare/internal/console"
	"github.com/verte-zerg/bikeshare/internal/prompt"
	"github.com/verte-zerg/bikeshare/internal/stats"
	"github.com/verte-zerg/bikeshare/internal/tripdata"
)

const askRestart = "\nWould you like to restart? Enter yes or no."

// Loader loads the filtered table for a selection.
type Loader interface {
	Load(sel catalog.Selection) (*tripdata.Table, error)
	Path(city catalog.City) string
}

// Driver runs rounds until the user declines to restart.
type Driver struct {
	console   *console.Console
	loader    Loader
	reporters []stats.Reporter
}

// NewDriver returns a Driver that prints the default reporters.
func NewDriver(c *console.Console, loader Loader) *Driver {
	return &Driver{
		console:   c,
		loader:    loader,
		reporters: stats.Reporters(),
	}
}

// Run loops over rounds. It returns nil when the user declines to restart
// and the read error (io.EOF included) when input ends.
func (d *Driver) Run() error {
	for {
		if err := d.Round(); err != nil {
			return err
		}
		answer, err := d.console.Ask(askRestart)
		if err != nil {
			return err
		}
		if answer != "yes" {
			d.console.Clear()
			return d.console.Err()
		}
	}
}

// Round runs a single prompt, load, display and report cycle. Missing or
// empty data files end the round early without an error.
func (d *Driver) Round() error {
	c := d.console
	sel, err := prompt.SelectFilters(c)
	if err != nil {
		return err
	}

	table, err := d.load(sel)
	if err != nil {
		return err
	}
	if table == nil {
		return c.Err()
	}

	if err := Page(c, table); err != nil {
		return err
	}
	c.Println("\n" + sel.Summary() + "\n")
	c.Separator()
	for _, report := range d.reporters {
		if err := report(c, table, sel); err != nil {
			return fmt.Errorf("failed to report: %w", err)
		}
	}
	return c.Err()
}

// load returns a nil table for the recoverable data file errors after
// telling the user about them.
func (d *Driver) load(sel catalog.Selection) (*tripdata.Table, error) {
	c := d.console
	c.Printf("Loading data for %s...\n\n", sel.City.Title())

	path := d.loader.Path(sel.City)
	table, err := d.loader.Load(sel)
	switch {
	case errors.Is(err, tripdata.ErrNotFound):
		c.Clear()
		c.Printf("Failed to locate %q file.\n", path)
		c.Printf("Data files should be located in the %s folder in the source directory.\n", filepath.Dir(path))
		c.Separator()
		return nil, nil
	case errors.Is(err, tripdata.ErrEmpty):
		c.Clear()
		c.Printf("Error importing %q file.\n", path)
		c.Println("The file is empty or is missing headers.")
		c.Separator()
		return nil, nil
	case err != nil:
		return nil, err
	}

	c.Printf("Data successfully loaded for %s.\n\n", sel.City.Title())
	c.Separator()
	return table, nil
}
