package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/zendesk/snowcrash/internal/config"
	"github.com/zendesk/snowcrash/internal/parser"
	"github.com/zendesk/snowcrash/internal/serialize"
	"github.com/zendesk/snowcrash/internal/specterrs"
	"github.com/zendesk/snowcrash/internal/watch"
)

// ParseCmd parses an API Blueprint document and emits its AST.
type ParseCmd struct {
	File string `arg:"" optional:"" help:"Input file; reads stdin when omitted" predictor:"file"`

	Output      string `help:"Write the AST here instead of stdout"                      name:"output"       short:"o"`
	Format      string `default:"yaml" enum:"yaml,json" help:"Output format"              name:"format"       short:"f" predictor:"format"`
	Sourcemap   string `help:"Write the AST-shaped source-map tree to this file as JSON"  name:"sourcemap"    short:"s"`
	Validate    bool   `help:"Parse only; report diagnostics without emitting the AST"    name:"validate"     short:"l"`
	RequireName bool   `help:"A missing top-level API name is a fatal error"              name:"require-name"`
	Watch       bool   `help:"Re-parse and re-report whenever the input file changes"     name:"watch"        short:"w"`

	fs afero.Fs // nil means afero.NewOsFs(); overridden in tests
}

func (c *ParseCmd) filesystem() afero.Fs {
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	return c.fs
}

// Run executes the parse command.
func (c *ParseCmd) Run() error {
	if c.Watch {
		if c.File == "" {
			return &specterrs.InputError{Path: "<stdin>", Err: fmt.Errorf("--watch requires a file argument")}
		}

		return c.runWatch()
	}

	return c.runOnce()
}

// runOnce parses the input once and returns an *specterrs.ExitCodeError
// carrying the report's error code when parsing failed.
func (c *ParseCmd) runOnce() error {
	source, err := c.readInput()
	if err != nil {
		return err
	}

	cfg, _ := config.Load()
	result := parser.Parse(source, c.options(cfg), nil)

	writeDiagnostics(os.Stderr, result.Report)

	if !c.Validate {
		if err := c.emitAST(result, cfg); err != nil {
			return err
		}
	}

	if c.Sourcemap != "" {
		if err := c.emitSourcemap(result); err != nil {
			return err
		}
	}

	if result.Report.HasError() {
		return &specterrs.ExitCodeError{Code: int(result.Report.ErrorCode())}
	}

	return nil
}

// runWatch re-parses c.File on every write, printing a divider between
// reports so they remain distinguishable in a scrolling terminal.
func (c *ParseCmd) runWatch() error {
	w, err := watch.New(c.File)
	if err != nil {
		return fmt.Errorf("watch %s: %w", c.File, err)
	}
	defer w.Close()

	_ = c.runOnce()

	for {
		select {
		case <-w.Events():
			fmt.Fprintln(os.Stderr, "---")
			_ = c.runOnce()
		case err := <-w.Errors():
			return fmt.Errorf("watch %s: %w", c.File, err)
		}
	}
}

func (c *ParseCmd) options(cfg *config.Config) parser.Options {
	opts := parser.Options(0)
	if c.RequireName || (cfg != nil && cfg.RequireName) {
		opts |= parser.RequireBlueprintName
	}
	if c.Sourcemap != "" || (cfg != nil && cfg.Sourcemap) {
		opts |= parser.ExportSourcemap
	}

	return opts
}

func (c *ParseCmd) readInput() ([]byte, error) {
	if c.File == "" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, &specterrs.InputError{
				Path: "<stdin>",
				Err:  fmt.Errorf("no input file given and stdin is a terminal; pass a file or pipe a document in"),
			}
		}

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, &specterrs.InputError{Path: "<stdin>", Err: err}
		}

		return data, nil
	}

	data, err := afero.ReadFile(c.filesystem(), c.File)
	if err != nil {
		return nil, &specterrs.InputError{Path: c.File, Err: err}
	}

	return data, nil
}

func (c *ParseCmd) emitAST(result parser.ParseResult, cfg *config.Config) error {
	format := c.Format
	if format == "" && cfg != nil {
		format = cfg.Format
	}

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = serialize.JSON(result.Node)
	default:
		data, err = serialize.YAML(result.Node)
	}
	if err != nil {
		return err
	}

	return c.writeOutput(c.Output, data)
}

func (c *ParseCmd) emitSourcemap(result parser.ParseResult) error {
	data, err := serialize.SourcemapJSON(result.SourceMap)
	if err != nil {
		return err
	}

	return afero.WriteFile(c.filesystem(), c.Sourcemap, data, 0o644)
}

func (c *ParseCmd) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))

		return err
	}

	return afero.WriteFile(c.filesystem(), path, data, 0o644)
}
