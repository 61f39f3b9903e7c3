package fixture

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// DefaultCount is the number of rows written if no count is given
	DefaultCount = 100
	// DefaultDir is where alglobo looks for its input files, relative to the working directory
	DefaultDir = "alglobo/files"

	filePrefix = "example-"
	fileExt    = ".csv"
)

// Config describes a single fixture file
type Config struct {
	Suffix string // inserted verbatim into example-<suffix>.csv
	Count  int    // number of rows, negative counts write an empty file
	Dir    string // output directory, must exist
}

// ParseArgs builds a Config from the positional command line arguments <suffix> [count].
// Dir is left empty and resolved to DefaultDir by Validate unless the caller sets it.
func ParseArgs(args []string) (Config, error) {
	cfg := Config{Count: DefaultCount}

	if len(args) == 0 {
		return cfg, &InvalidArgumentError{Arg: "suffix", Reason: "missing required argument"}
	}
	if len(args) > 2 {
		return cfg, &InvalidArgumentError{
			Arg:    "args",
			Value:  strings.Join(args[2:], " "),
			Reason: "expected <suffix> [count]",
		}
	}
	cfg.Suffix = args[0]

	if len(args) == 2 {
		n, err := strconv.Atoi(strings.TrimSpace(args[1]))
		if err != nil {
			return cfg, &InvalidArgumentError{Arg: "count", Value: args[1], Reason: "not an integer"}
		}
		cfg.Count = n
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration and fills in defaults.
// It never touches the file system.
func (c *Config) Validate() error {
	if c.Suffix == "" {
		return &InvalidArgumentError{Arg: "suffix", Reason: "missing required argument"}
	}
	if c.Dir == "" {
		c.Dir = DefaultDir
	}
	if c.Count < 0 {
		c.Count = 0
	}
	return nil
}

// FileName returns the base name of the fixture file
func (c Config) FileName() string {
	return fileName(c.Suffix)
}

// Path returns the fixture file name joined with the output directory
func (c Config) Path() string {
	return filepath.Join(c.Dir, c.FileName())
}

func fileName(suffix string) string {
	return filePrefix + suffix + fileExt
}
