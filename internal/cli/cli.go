// Package cli implements the bbs command-line interface.
//
// Every command reads a client profile (see package config), builds a
// Bitbucket Server provider from it and runs one operation against the
// profile's owner and repository.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// one line per HTTP request. Loggers are passed through context.Context.
//
// # Output
//
// Results are printed as aligned text, or as JSON with --json. With --json,
// failures are printed to stderr as a JSON error object.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/bitbucket"
	"github.com/jmgilman/go/bitbucket/config"
	"github.com/jmgilman/go/bitbucket/errors"
	"github.com/jmgilman/go/bitbucket/providers/server"
	"github.com/spf13/cobra"
)

// CLI holds the state shared by all commands.
type CLI struct {
	stdout io.Writer
	stderr io.Writer

	// fs, when set, is where profiles are read from. Otherwise profiles are
	// read from the local disk.
	fs billy.Filesystem

	profilePath string
	repository  string
	verbose     bool
	jsonOutput  bool
}

// New creates a CLI writing results to stdout and logs to stderr.
func New(stdout, stderr io.Writer) *CLI {
	return &CLI{stdout: stdout, stderr: stderr}
}

// Execute runs the bbs CLI with ctx.
func Execute(ctx context.Context) error {
	return New(os.Stdout, os.Stderr).execute(ctx, nil)
}

// execute runs the command tree with args, or the process arguments when
// args is nil. With --json a failure is written to stderr as JSON and
// returned marked as reported.
func (c *CLI) execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	if args != nil {
		root.SetArgs(args)
	}
	err := root.ExecuteContext(ctx)
	if err != nil && c.jsonOutput {
		_ = json.NewEncoder(c.stderr).Encode(errors.ToJSON(err))
		return &reportedError{err: err}
	}
	return err
}

// reportedError marks an error that has already been printed. The cause stays
// reachable through Unwrap.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by Execute.
func IsReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bbs",
		Short:         "Query and report to a Bitbucket Server",
		Long:          `bbs reads a client profile and runs Bitbucket Server operations against the configured project or user namespace.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if c.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(c.stderr, level)))
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&c.jsonOutput, "json", false, "print results and errors as JSON")
	flags.StringVarP(&c.profilePath, "profile", "p", "", "profile file (default: bitbucket.cue, bitbucket.yaml or bitbucket.yml in the working directory)")
	flags.StringVarP(&c.repository, "repo", "r", "", "override the profile repository")

	root.AddCommand(c.repoCommand())
	root.AddCommand(c.reposCommand())
	root.AddCommand(c.teamCommand())
	root.AddCommand(c.branchesCommand())
	root.AddCommand(c.prsCommand())
	root.AddCommand(c.prCommand())
	root.AddCommand(c.commitCommand())
	root.AddCommand(c.existsCommand())
	root.AddCommand(c.commentCommand())
	root.AddCommand(c.statusCommand())

	return root
}

// client loads the profile and builds a client from it.
func (c *CLI) client(ctx context.Context) (*bitbucket.Client, error) {
	profile, err := c.loadProfile(ctx)
	if err != nil {
		return nil, err
	}

	var extra []server.Option
	if c.repository != "" {
		extra = append(extra, server.WithRepository(c.repository))
	}

	logger := loggerFromContext(ctx)
	provider, err := profile.NewProvider(logger.WithPrefix("bitbucket"), extra...)
	if err != nil {
		return nil, err
	}
	logger.Debug("provider ready", "base_url", profile.BaseURL, "owner", profile.Owner, "repository", provider.RepositoryName())
	return bitbucket.NewClient(provider), nil
}

func (c *CLI) loadProfile(ctx context.Context) (*config.Profile, error) {
	if c.fs != nil {
		loader := config.NewLoader(c.fs)
		if c.profilePath == "" {
			return loader.Discover(ctx)
		}
		return loader.Load(ctx, c.profilePath)
	}

	if c.profilePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeConfigLoadFailed, "failed to resolve working directory")
		}
		return config.NewOSLoader(wd).Discover(ctx)
	}

	abs, err := filepath.Abs(c.profilePath)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigLoadFailed, "failed to resolve profile path")
	}
	return config.NewOSLoader(filepath.Dir(abs)).Load(ctx, filepath.Base(abs))
}

// print writes v as indented JSON with --json, or calls text otherwise.
func (c *CLI) print(v any, text func(w io.Writer)) error {
	if c.jsonOutput {
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.CodeEncodingFailed, "failed to encode output")
		}
		return nil
	}
	text(c.stdout)
	return nil
}

func fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
