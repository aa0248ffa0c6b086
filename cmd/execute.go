package cmd

import (
	"os"

	"vslc/common"
	"vslc/config"
	"vslc/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `vslc` CLI utility
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("vslc", "vslc simplifies VSL syntax trees", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})

	dumpCmd := cli.AddSubcommand("dump", "print a syntax tree as it was read", true)
	dumpCmd.AddPrimaryArg("tree-path", "the path to the tree file", true)

	simplifyCmd := cli.AddSubcommand("simplify", "simplify a syntax tree and print the result", true)
	simplifyCmd.AddPrimaryArg("tree-path", "the path to the tree file", true)
	simplifyCmd.AddStringArg("profile", "p", "the name of the profile to simplify with", false)
	simplifyCmd.AddFlag("raw", "r", "print the tree as it was read before simplifying it")
	simplifyCmd.AddFlag("diff", "d", "print the changes made by simplification instead of the simplified tree")

	cli.AddSubcommand("init", "create a default config file in the working directory", false)
	cli.AddSubcommand("version", "print the vslc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	loglevel := ""
	if arg, ok := result.Arguments["loglevel"]; ok {
		loglevel = arg.(string)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "dump":
		execDumpCommand(subResult, loglevel)
	case "simplify":
		execSimplifyCommand(subResult, loglevel)
	case "init":
		execInitCommand()
	case "version":
		report.DisplayInfoMessage("vslc Version", common.VslcVersion)
	}

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// execDumpCommand executes the dump subcommand and handles all errors
func execDumpCommand(result *olive.ArgParseResult, loglevel string) {
	cfg := loadConfig("", loglevel)
	treePath, _ := result.PrimaryArg()

	c := NewCompiler(treePath, cfg, os.Stdout)
	if c.Load() {
		report.ReportEndPhase()
		c.Dump()
	}

	c.Release()
}

// execSimplifyCommand executes the simplify subcommand and handles all errors
func execSimplifyCommand(result *olive.ArgParseResult, loglevel string) {
	selectedProfile := ""
	if profArgVal, ok := result.Arguments["profile"]; ok {
		selectedProfile = profArgVal.(string)
	}

	cfg := loadConfig(selectedProfile, loglevel)
	report.ReportCompileHeader(cfg.Profile.Name)

	treePath, _ := result.PrimaryArg()
	c := NewCompiler(treePath, cfg, os.Stdout)

	if c.Load() {
		before := c.DumpString()
		if result.HasFlag("raw") {
			report.ReportEndPhase()
			c.Dump()
		}

		c.Simplify()
		report.ReportEndPhase()

		if result.HasFlag("diff") {
			displayDiff(os.Stdout, before, c.DumpString())
		} else {
			c.Dump()
		}
	}

	c.Release()
	report.ReportCompilationFinished()
}

// execInitCommand executes the init subcommand
func execInitCommand() {
	workDir, err := os.Getwd()
	if err != nil {
		report.ReportFatal("error getting working directory: %s", err)
	}

	if err := config.Init(workDir); err != nil {
		report.DisplayErrorMessage("Config Init Error", err)
		return
	}

	report.DisplayInfoMessage("Created", common.ConfigFileName)
}

// -----------------------------------------------------------------------------

// loadConfig loads the config file from the working directory and initializes
// the reporter.  A log level given on the command line overrides the one in
// the config file.  Configuration errors are fatal.
func loadConfig(selectedProfile, loglevel string) *config.Config {
	workDir, err := os.Getwd()
	if err != nil {
		report.ReportFatal("error getting working directory: %s", err)
	}

	cfg, err := config.Load(workDir, selectedProfile)
	if err != nil {
		report.ReportFatal("error loading config: %s", err)
	}

	if loglevel != "" {
		cfg.LogLevel, _ = report.LogLevelFromName(loglevel)
	}

	report.InitReporter(cfg.LogLevel)
	return cfg
}
