package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/bethropolis/sql-bundler/internal/config"
	"github.com/spf13/cobra"
)

const (
	commandName = "sql-bundler"
	commandUse  = commandName + " <inputDirectory> <outputFile>"
	commandLong = `Concatenate every .sql file under inputDirectory into outputFile,
wrapping each file in "-- Begin:" / "-- End:" banners.

Files are bundled in lexicographic path order. --ignore takes folder names
(matched at any depth, case-insensitively) or folder paths (matched with
everything below them). --flat bundles only the top-level directory and
disables --ignore.

Every flag can also be set through SQLBUNDLER_<FLAG> environment variables
or a --config file.`
	commandExample = `  sql-bundler ./migrations ./dist/bundle.sql
  sql-bundler ./db ./out/all.sql --ignore=temp,archive,./db/legacy
  sql-bundler ./db ./out/top.sql --flat`
)

// NewCommand builds the root command writing to the given streams
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           commandUse,
		Short:         "Bundle a tree of .sql files into one file",
		Long:          commandLong,
		Example:       commandExample,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	config.Bind(cmd)
	return cmd
}

func runCommand(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(cmd, args, stderr)
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "%s version %s\n", commandName, cfg.Version)
		return nil
	}

	application := New(cfg, stderr)

	if len(args) < 2 {
		application.log.Error("Missing required arguments: expected <inputDirectory> <outputFile>, got %d argument(s).", len(args))
		fmt.Fprint(stderr, cmd.UsageString())
		return &exitError{err: ErrUsage}
	}
	if len(args) > 2 {
		application.log.Warn("Ignoring extra arguments: %v", args[2:])
	}

	if _, err := application.Run(); err != nil {
		if errors.Is(err, ErrNoFiles) {
			application.log.Warn("%v", err)
		} else {
			application.log.Error("%v", err)
		}
		return &exitError{err: err}
	}
	return nil
}

// Execute runs the command line and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var reported *exitError
	if !errors.As(err, &reported) {
		// Flag parsing and configuration failures happen before logging is set up
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}
