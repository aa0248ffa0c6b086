package common

const (
	ConfigFileName = "vslc.toml"
	VslcVersion    = "0.1.0"
)

// Tree file extensions recognized by the CLI.  Anything else is read as a
// text tree.
var YAMLTreeExtensions = []string{".yaml", ".yml"}
