// Package cli implements the dircoll command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmgilman/go/collection/collection"
	"github.com/jmgilman/go/collection/errors"
	"github.com/jmgilman/go/collection/internal/config"
	"github.com/jmgilman/go/collection/internal/logging"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	logLevel   string
	recursive  bool
	exclude    []string
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	opts   rootOptions
	cfg    *config.Config
	logger *slog.Logger
}

// newRootCommand builds the dircoll command tree and the state its
// subcommands share.
func newRootCommand() (*cobra.Command, *app) {
	a := &app{logger: logging.NewNopLogger()}

	cmd := &cobra.Command{
		Use:   "dircoll",
		Short: "Inspect directory trees as flat entry collections",
		Long: `dircoll scans one or more directory trees into collections of entries and
answers queries against them: list, look up by relative path or by file
name, stream file contents and copy the tree elsewhere.

Settings are read from ./.dircoll.yaml, then ./.env and DIRCOLL_*
environment variables, then flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments, flags or patterns)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Root or entry not found
  12 - Permission denied
  13 - I/O error while scanning or reading
  14 - Collection became invalid`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "Config file (default ./"+config.FileName+")")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVarP(&a.opts.recursive, "recursive", "r", true, "Descend into subdirectories")
	flags.StringArrayVarP(&a.opts.exclude, "exclude", "x", nil, "Glob pattern of entries to skip (repeatable)")

	cmd.AddCommand(
		newLsCommand(a),
		newCatCommand(a),
		newStatCommand(a),
		newExtractCommand(a),
	)
	return cmd, a
}

// Execute runs the root command
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

// run executes the command tree with args and reports any failure on stderr
// in the configured output format.
func run(args []string, stdout, stderr io.Writer) error {
	cmd, a := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		a.reportError(stderr, err)
	}
	return err
}

// errorEnvelope is the structured form of a failure.
type errorEnvelope struct {
	Error *errors.ErrorResponse `json:"error" yaml:"error"`
}

func (a *app) reportError(w io.Writer, err error) {
	format := config.OutputText
	if a.cfg != nil {
		format = a.cfg.Output
	}
	switch format {
	case config.OutputJSON, config.OutputYAML:
	default:
		format = config.OutputText
	}

	_ = render(w, format, errorEnvelope{Error: errors.ToJSON(err)}, func(w io.Writer) error {
		_, werr := fmt.Fprintf(w, "Error: %v\n", err)
		return werr
	})
}

// setup resolves configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to determine working directory")
	}

	cfg, err := config.Resolve(dir, a.opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("recursive") {
		cfg.Recursive = a.opts.recursive
	}
	if flags.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, a.opts.exclude...)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "invalid log level")
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(cmd.ErrOrStderr(), logging.LogConfig{Level: level})
	a.logger.Debug("configuration resolved",
		"recursive", cfg.Recursive, "exclude", cfg.Exclude, "output", cfg.Output)
	return nil
}

// openCollection builds a loaded collection over roots. Several roots are
// combined into a Multi in argument order.
func (a *app) openCollection(ctx context.Context, roots []string) (collection.Collection, error) {
	dirs := make([]collection.Collection, 0, len(roots))
	loaders := make([]collection.Loader, 0, len(roots))
	for _, root := range roots {
		d := collection.NewDirectory(root,
			collection.WithRecursive(a.cfg.Recursive),
			collection.WithExclude(a.cfg.Exclude...),
			collection.WithLogger(a.logger),
		)
		if !d.IsValid() {
			return nil, errors.WithContext(
				errors.New(errors.CodeNotFound, "root is not a directory"),
				"root", root)
		}
		dirs = append(dirs, d)
		loaders = append(loaders, d)
	}

	if err := collection.LoadAll(ctx, 0, loaders...); err != nil {
		return nil, err
	}

	if len(dirs) == 1 {
		return dirs[0], nil
	}
	m, err := collection.NewMulti(dirs...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// matchMode maps the --ignore-path flag to a lookup mode.
func matchMode(ignorePath bool) collection.MatchPath {
	if ignorePath {
		return collection.Ignore
	}
	return collection.Match
}
