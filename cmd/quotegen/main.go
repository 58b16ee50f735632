// Command quotegen builds the scripture quote dataset for the typing front-end.
// It downloads the books a curated reference list points into, extracts the
// verse text, and writes frontend/static/quotes/english.json.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"

	"github.com/samuel7776/monkeytype/core/catalog"
	qerrors "github.com/samuel7776/monkeytype/core/errors"
	"github.com/samuel7776/monkeytype/core/sqlite"
	"github.com/samuel7776/monkeytype/internal/config"
	"github.com/samuel7776/monkeytype/internal/fetch"
	"github.com/samuel7776/monkeytype/internal/generator"
	"github.com/samuel7776/monkeytype/internal/logging"
	"github.com/samuel7776/monkeytype/internal/output"
	"github.com/samuel7776/monkeytype/internal/quotes"
)

const version = "1.0.0"

// CLI defines the command-line interface for quotegen.
type CLI struct {
	// Global flags
	ConfigPath string `name:"config" short:"c" help:"Config file (default: ./quotegen.toml)" type:"path"`
	Catalog    string `help:"YAML reference catalog (default: built-in list)" type:"path"`
	LogLevel   string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat  string `name:"log-format" help:"Log format: auto, text, json"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Download books, extract quotes, and write the dataset"`
	Refs     RefsCmd     `cmd:"" help:"List the deduplicated references and parse failures"`
	Books    BooksCmd    `cmd:"" help:"List the books the catalog needs"`
	Config   ConfigGroup `cmd:"" help:"Configuration file operations"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// ConfigGroup contains configuration file operations.
type ConfigGroup struct {
	Init ConfigInitCmd `cmd:"" help:"Write a sample configuration file"`
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	cli    *CLI
	stdout io.Writer
	stderr io.Writer
}

// overrides are command-line values that replace config file values when set.
type overrides struct {
	BaseURL string
	Timeout time.Duration
	Root    string
	Output  string
	SQLite  string
	XZ      bool
}

// loadConfig loads the config file, applies global and command flags, and
// configures logging from the result.
func (rc *runContext) loadConfig(o overrides) (*config.Config, error) {
	cfg, path, exists, err := config.Load(rc.cli.ConfigPath)
	if err != nil {
		return nil, err
	}

	if rc.cli.Catalog != "" {
		cfg.Catalog.Path = rc.cli.Catalog
	}
	if rc.cli.LogLevel != "" {
		cfg.Logging.Level = rc.cli.LogLevel
	}
	if rc.cli.LogFormat != "" {
		cfg.Logging.Format = rc.cli.LogFormat
	}
	if o.BaseURL != "" {
		cfg.Source.BaseURL = o.BaseURL
	}
	if o.Timeout > 0 {
		cfg.Source.TimeoutSeconds = int((o.Timeout + time.Second - 1) / time.Second)
	}
	if o.Root != "" {
		cfg.Output.Root = o.Root
	}
	if o.Output != "" {
		cfg.Output.Path = o.Output
	}
	if o.SQLite != "" {
		cfg.Output.SQLite = o.SQLite
	}
	if o.XZ {
		cfg.Output.XZ = true
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := logging.ParseLevel(cfg.Logging.Level)
	format, _ := logging.ParseFormat(cfg.Logging.Format)
	logging.SetLogger(logging.New(rc.stderr, level, format))
	logging.Debug("configuration loaded", "path", path, "exists", exists)

	return cfg, nil
}

// GenerateCmd runs the full pipeline.
type GenerateCmd struct {
	BaseURL string        `name:"base-url" help:"Root URL of the book JSON files"`
	Timeout time.Duration `help:"Per-book download timeout (e.g. 30s)"`
	Root    string        `help:"Project root output paths are relative to" type:"path"`
	Output  string        `short:"o" help:"Dataset path, relative to --root unless absolute"`
	SQLite  string        `name:"sqlite" help:"Also export the quotes to this SQLite database"`
	XZ      bool          `name:"xz" help:"Also write an xz-compressed copy of the dataset"`
	DryRun  bool          `name:"dry-run" help:"Run the pipeline and report, but write nothing"`
}

func (c *GenerateCmd) Run(rc *runContext) error {
	cfg, err := rc.loadConfig(overrides{
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
		Root:    c.Root,
		Output:  c.Output,
		SQLite:  c.SQLite,
		XZ:      c.XZ,
	})
	if err != nil {
		return err
	}

	cats, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return qerrors.Wrap(err, "load catalog")
	}
	plan := generator.NewPlan(cats)
	printPlan(rc.stdout, plan)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logging.WithRunID(ctx, logging.NewRunID())

	client := fetch.NewClient(fetch.ClientConfig{
		BaseURL:   cfg.Source.BaseURL,
		UserAgent: cfg.Source.UserAgent,
		Timeout:   cfg.Timeout(),
	})
	fetcher := fetch.NewFetcher(client)

	res, err := generator.Run(ctx, generator.Options{
		Plan:     plan,
		Source:   fetcher,
		Language: cfg.Output.Language,
		Bands:    quotes.DefaultBands,
	})
	if err != nil {
		return err
	}

	printExtraction(rc.stdout, res, fetcher.Downloads())

	if c.DryRun {
		fmt.Fprintf(rc.stdout, "\nDry run: %d quotes not written to %s\n", len(res.Document.Quotes), cfg.DatasetPath())
		return nil
	}

	written, err := output.Write(ctx, res.Document, output.Options{
		Path:       cfg.DatasetPath(),
		XZ:         cfg.Output.XZ,
		SQLitePath: cfg.SQLitePath(),
		Bands:      quotes.DefaultBands,
	})
	if err != nil {
		logging.ErrorContext(ctx, "dataset not written", "path", cfg.DatasetPath(), "error", err)
		return qerrors.Wrapf(err, "write %s", cfg.DatasetPath())
	}
	printWritten(rc.stdout, len(res.Document.Quotes), written)
	return nil
}

// RefsCmd prints the deduplicated reference list.
type RefsCmd struct {
	Malformed bool `help:"Only list references that fail to parse"`
	YAML      bool `name:"yaml" help:"Print the catalog as YAML in the layout --catalog reads"`
}

func (c *RefsCmd) Run(rc *runContext) error {
	cfg, err := rc.loadConfig(overrides{})
	if err != nil {
		return err
	}
	cats, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	if c.YAML {
		data, err := catalog.Encode(cats)
		if err != nil {
			return err
		}
		_, err = rc.stdout.Write(data)
		return err
	}
	plan := generator.NewPlan(cats)

	if !c.Malformed {
		printPlan(rc.stdout, plan)
		fmt.Fprintln(rc.stdout)
	}
	printEntries(rc.stdout, plan, c.Malformed)
	return nil
}

// BooksCmd prints the books a run would download.
type BooksCmd struct {
	All bool `help:"Also list mapped books the catalog does not reference"`
}

func (c *BooksCmd) Run(rc *runContext) error {
	cfg, err := rc.loadConfig(overrides{})
	if err != nil {
		return err
	}
	cats, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	client := fetch.NewClient(fetch.ClientConfig{BaseURL: cfg.Source.BaseURL})
	printBooks(rc.stdout, generator.NewPlan(cats), client, c.All)
	return nil
}

// ConfigInitCmd writes the sample config.
type ConfigInitCmd struct {
	Path string `arg:"" optional:"" help:"Destination (default: ./quotegen.toml)" type:"path"`
}

func (c *ConfigInitCmd) Run(rc *runContext) error {
	path := c.Path
	if path == "" {
		path = config.ProjectConfigName
	}
	if err := config.CreateSample(path); err != nil {
		return err
	}
	fmt.Fprintf(rc.stdout, "Wrote sample configuration to %s\n", path)
	return nil
}

// ConfigShowCmd prints the configuration after flags are applied.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(rc *runContext) error {
	cfg, err := rc.loadConfig(overrides{})
	if err != nil {
		return err
	}
	data, err := cfg.Encode()
	if err != nil {
		return err
	}
	_, err = rc.stdout.Write(data)
	return err
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(rc *runContext) error {
	d := sqlite.LinkedDriver()
	fmt.Fprintf(rc.stdout, "quotegen %s\n", version)
	fmt.Fprintf(rc.stdout, "sqlite driver: %s (%s, %s)\n", d.Name, d.Type, d.Package)
	if d.CGO() {
		fmt.Fprintln(rc.stdout, "built with cgo")
	}
	return nil
}

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("quotegen"),
		kong.Description("Scripture quote dataset generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}
	return kong.New(cli, append(base, opts...)...)
}

// execute parses args and runs the selected command, writing reports to stdout
// and logs to stderr.
func execute(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&runContext{cli: &cli, stdout: stdout, stderr: stderr})
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run(&runContext{cli: &cli, stdout: os.Stdout, stderr: os.Stderr})
	ctx.FatalIfErrorf(err)
}
