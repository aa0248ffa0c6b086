package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"vslc/common"
	"vslc/config"
	"vslc/report"
	"vslc/simplify"
	"vslc/syntax"
)

// Compiler holds the state of one run of the tree pipeline: the tree being
// worked on and the store that owns its nodes.
type Compiler struct {
	// absPath is the absolute path to the tree file; reprPath is the path as
	// it should be displayed to the user.
	absPath, reprPath string

	cfg   *config.Config
	store *syntax.Store
	root  *syntax.Node

	// out is where tree dumps are written.
	out io.Writer
}

// NewCompiler creates a new compiler for the tree file at treePath.
func NewCompiler(treePath string, cfg *config.Config, out io.Writer) *Compiler {
	absPath, err := filepath.Abs(treePath)
	if err != nil {
		report.ReportFatal("error calculating absolute path: %s", err.Error())
	}

	return &Compiler{
		absPath:  absPath,
		reprPath: treePath,
		cfg:      cfg,
		store:    syntax.NewStore(),
		out:      out,
	}
}

// Load reads the tree file.  It returns whether the tree was read
// successfully; all errors are reported.
func (c *Compiler) Load() (ok bool) {
	report.ReportBeginPhase("Reading")
	defer report.CatchErrors(c.absPath, c.reprPath)

	buff, err := os.ReadFile(c.absPath)
	if err != nil {
		report.ReportStdError(c.reprPath, err)
		return false
	}

	root, err := readTree(c.store, c.reprPath, buff)
	if err != nil {
		report.ReportError(c.absPath, c.reprPath, err)
		return false
	}

	c.root = root
	return true
}

// readTree reads a tree file in the format given by its extension.
func readTree(store *syntax.Store, path string, buff []byte) (*syntax.Node, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, yamlExt := range common.YAMLTreeExtensions {
		if ext == yamlExt {
			return syntax.LoadYAMLTree(store, buff)
		}
	}

	return syntax.ReadTree(store, path, string(buff))
}

// Simplify simplifies the loaded tree with the selected profile.  It returns
// whether simplification succeeded; fold errors and malformed trees are
// reported as compile errors.  The tree remains printable either way.
func (c *Compiler) Simplify() (ok bool) {
	report.ReportBeginPhase("Simplifying")
	defer report.CatchErrors(c.absPath, c.reprPath)

	root, err := simplify.New(c.store, c.cfg.Options()).Simplify(c.root)
	c.root = root

	if err != nil {
		report.ReportError(c.absPath, c.reprPath, err)
		return false
	}

	return true
}

// Dump prints the current tree.
func (c *Compiler) Dump() {
	if err := syntax.NewPrinter(c.out, c.cfg.Indent).Print(c.root); err != nil {
		report.ReportStdError(c.reprPath, err)
	}
}

// DumpString returns the dump of the current tree.
func (c *Compiler) DumpString() string {
	return syntax.Sprint(c.root, c.cfg.Indent)
}

// Release releases the current tree.  Every node constructed by the compiler
// must have been released by then; anything else is a bug.
func (c *Compiler) Release() {
	c.store.DeepRelease(c.root)
	c.root = nil

	if c.store.Live() != 0 {
		report.ReportICE("%d tree nodes were leaked", c.store.Live())
	}
}
