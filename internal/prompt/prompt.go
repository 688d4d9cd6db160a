// Package prompt asks the user for the city, month and day filters.
package prompt

import (
	"fmt"

	"github.com/verte-zerg/bikeshare/internal/catalog"
	"github.com/verte-zerg/bikeshare/internal/console"
)

const (
	welcome  = "Hello! Let's explore some US bikeshare data!"
	menuNote = "Note: You can use numbers or you can type the name."
)

type stage[T any] struct {
	context      func()
	heading      string
	options      []string
	resolve      func(string) (T, bool)
	unrecognized string
}

// SelectFilters runs the city, month and day stages in order. Each stage
// repeats until its answer resolves; only read errors end the loop early.
func SelectFilters(c *console.Console) (catalog.Selection, error) {
	var sel catalog.Selection

	c.Clear()
	c.Println(welcome)

	city, err := run(c, stage[catalog.City]{
		heading:      "Please choose your city from the following:",
		options:      cityOptions(),
		resolve:      catalog.ResolveCity,
		unrecognized: "City name not recognized, please try again.",
	})
	if err != nil {
		return sel, err
	}
	sel.City = city

	month, err := run(c, stage[catalog.Month]{
		context: func() {
			c.Printf("You have selected data in %s.\n", sel.City.Title())
			c.Separator()
		},
		heading:      "Please choose a month from the following:",
		options:      monthOptions(),
		resolve:      catalog.ResolveMonth,
		unrecognized: "Month not recognized, please try again.",
	})
	if err != nil {
		return sel, err
	}
	sel.Month = month

	day, err := run(c, stage[catalog.Day]{
		context: func() {
			c.Printf("You have selected data in %s during the %s.\n", sel.City.Title(), sel.MonthPhrase())
			c.Separator()
		},
		heading:      "Please choose a day from the following:",
		options:      dayOptions(),
		resolve:      catalog.ResolveDay,
		unrecognized: "Day not recognized, please try again.",
	})
	if err != nil {
		return sel, err
	}
	sel.Day = day

	return sel, nil
}

func run[T any](c *console.Console, s stage[T]) (T, error) {
	for {
		if s.context != nil {
			s.context()
		}
		c.Println(s.heading)
		c.Println(menuNote)
		for _, opt := range s.options {
			c.Println(opt)
		}
		answer, err := c.ReadLine()
		if err != nil {
			var zero T
			return zero, err
		}
		c.Clear()
		if v, ok := s.resolve(answer); ok {
			return v, nil
		}
		c.Println(s.unrecognized)
		c.Separator()
	}
}

func cityOptions() []string {
	cities := catalog.Cities()
	out := make([]string, 0, len(cities))
	for _, city := range cities {
		out = append(out, fmt.Sprintf("%d. %s", city.Code, city.Title()))
	}
	return out
}

func monthOptions() []string {
	months := catalog.Months()
	out := make([]string, 0, len(months))
	for _, m := range months {
		out = append(out, fmt.Sprintf("%d. %s", int(m), catalog.Title(m.String())))
	}
	return out
}

func dayOptions() []string {
	days := catalog.Days()
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, fmt.Sprintf("%d. %s", int(d), catalog.Title(d.String())))
	}
	return out
}
