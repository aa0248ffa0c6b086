// Package config loads the vslc configuration file: the log level, printer
// settings and the simplification profiles.
package config

import (
	"vslc/report"
	"vslc/simplify"
)

// Config is the loaded configuration together with its selected profile.
type Config struct {
	// LogLevel is the log level named in the file.  It is one of the
	// enumerated log levels of the report package.
	LogLevel int

	// Indent is the number of spaces per level of depth in tree dumps.
	Indent int

	// Profile is the selected simplification profile.
	Profile *Profile

	// Path is the file the configuration was loaded from.  It is empty if
	// the defaults are in use.
	Path string
}

// Profile is a named selection of the rewrites performed by the simplifier.
type Profile struct {
	Name    string
	Elide   bool
	Flatten bool
	Fold    bool
	Order   simplify.FlattenOrder
}

// Options converts the selected profile into simplifier options.
func (c *Config) Options() simplify.Options {
	return simplify.Options{
		Elide:   c.Profile.Elide,
		Flatten: c.Profile.Flatten,
		Fold:    c.Profile.Fold,
		Order:   c.Profile.Order,
	}
}

// Default returns the configuration used when no configuration file exists.
// Its profile performs every rewrite.
func Default() *Config {
	return &Config{
		LogLevel: report.LogLevelVerbose,
		Indent:   1,
		Profile: &Profile{
			Name:    "release",
			Elide:   true,
			Flatten: true,
			Fold:    true,
			Order:   simplify.OrderSplice,
		},
	}
}

// -----------------------------------------------------------------------------

// tomlConfigFile represents the configuration file as it is encoded in TOML.
type tomlConfigFile struct {
	LogLevel string         `toml:"log-level"`
	Printer  *tomlPrinter   `toml:"printer"`
	Profiles []*tomlProfile `toml:"profiles"`
}

// tomlPrinter represents the printer settings as they are encoded in TOML.
type tomlPrinter struct {
	Indent int `toml:"indent"`
}

// tomlProfile represents a profile as it is encoded in TOML.
type tomlProfile struct {
	Name         string `toml:"name"`
	DefaultProf  bool   `toml:"default"` // in absence of a selected profile, choose this profile
	Elide        bool   `toml:"elide"`
	Flatten      bool   `toml:"flatten"`
	Fold         bool   `toml:"fold"`
	FlattenOrder string `toml:"flatten-order,omitempty"`
}
