package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vslc/common"

	"github.com/pelletier/go-toml"
)

// Init creates a default configuration file in the directory dir.  It fails if
// a configuration file already exists there.
func Init(dir string) error {
	path := filepath.Join(dir, common.ConfigFileName)

	_, err := os.Stat(path)
	if err == nil {
		return errors.New("config file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("config file error: %s", err.Error())
	}

	tcf := &tomlConfigFile{
		LogLevel: "verbose",
		Printer:  &tomlPrinter{Indent: 1},
		Profiles: []*tomlProfile{newInitProfile(true), newInitProfile(false)},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tcf); err != nil {
		return fmt.Errorf("error encoding TOML: %s", err.Error())
	}

	return nil
}

// newInitProfile creates one of the two initial profiles: debug, which leaves
// constant expressions in place, and release, which folds them.
func newInitProfile(debug bool) *tomlProfile {
	prof := &tomlProfile{
		Elide:        true,
		Flatten:      true,
		Fold:         !debug,
		FlattenOrder: "splice",
		DefaultProf:  debug,
	}

	if debug {
		prof.Name = "debug"
	} else {
		prof.Name = "release"
	}

	return prof
}
