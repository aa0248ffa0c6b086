package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vslc/common"
	"vslc/report"
	"vslc/simplify"

	"github.com/pelletier/go-toml"
)

// Load loads and validates the configuration file in the directory dir and
// selects a profile.  selectedProfile may be empty in which case the profile
// marked default is used, or the first profile if none is.  If dir contains no
// configuration file, the default configuration is returned unless a profile
// was explicitly selected.
func Load(dir, selectedProfile string) (*Config, error) {
	path := filepath.Join(dir, common.ConfigFileName)

	buff, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if selectedProfile != "" && selectedProfile != Default().Profile.Name {
			return nil, fmt.Errorf("no %s found: cannot select profile `%s`", common.ConfigFileName, selectedProfile)
		}

		return Default(), nil
	} else if err != nil {
		return nil, err
	}

	cfg, err := Parse(buff, selectedProfile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Path = path
	return cfg, nil
}

// Parse decodes and validates the contents of a configuration file and selects
// a profile as Load does.
func Parse(buff []byte, selectedProfile string) (*Config, error) {
	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, err
	}

	cfg := Default()

	logLevel, ok := report.LogLevelFromName(tcf.LogLevel)
	if !ok {
		return nil, fmt.Errorf("unknown log level `%s`", tcf.LogLevel)
	}
	cfg.LogLevel = logLevel

	if tcf.Printer != nil {
		if tcf.Printer.Indent < 0 {
			return nil, errors.New("printer indent cannot be negative")
		}

		cfg.Indent = tcf.Printer.Indent
	}

	profile, err := selectProfile(tcf.Profiles, selectedProfile)
	if err != nil {
		return nil, err
	}

	if profile != nil {
		cfg.Profile = profile
	}

	return cfg, nil
}

// selectProfile validates the profiles of the file and selects the one to
// build with.  It returns nil if the file declares no profiles and none was
// selected.
func selectProfile(profiles []*tomlProfile, selectedProfile string) (*Profile, error) {
	names := make(map[string]struct{})
	var defaultProf *tomlProfile
	for _, prof := range profiles {
		if prof.Name == "" {
			return nil, errors.New("profiles must have a name")
		}

		if _, ok := names[prof.Name]; ok {
			return nil, fmt.Errorf("multiple profiles named `%s`", prof.Name)
		}
		names[prof.Name] = struct{}{}

		if prof.DefaultProf {
			if defaultProf != nil {
				return nil, fmt.Errorf("profiles `%s` and `%s` are both marked default", defaultProf.Name, prof.Name)
			}

			defaultProf = prof
		}
	}

	if selectedProfile != "" {
		for _, prof := range profiles {
			if prof.Name == selectedProfile {
				return convertProfile(prof)
			}
		}

		return nil, fmt.Errorf("no profile named `%s`", selectedProfile)
	}

	if defaultProf != nil {
		return convertProfile(defaultProf)
	} else if len(profiles) > 0 {
		return convertProfile(profiles[0])
	}

	return nil, nil
}

// convertProfile converts a TOML profile into a profile.
func convertProfile(prof *tomlProfile) (*Profile, error) {
	order, ok := simplify.FlattenOrderFromName(prof.FlattenOrder)
	if !ok {
		return nil, fmt.Errorf("profile `%s`: unknown flatten order `%s`", prof.Name, prof.FlattenOrder)
	}

	return &Profile{
		Name:    prof.Name,
		Elide:   prof.Elide,
		Flatten: prof.Flatten,
		Fold:    prof.Fold,
		Order:   order,
	}, nil
}
