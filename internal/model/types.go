// Package model defines shared data structures.
package model

// Config defines runtime settings resolved from flags and the config file.
type Config struct {
	DataDir     string
	ClearScreen bool
	Verbose     bool
}
