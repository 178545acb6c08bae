// Package commands implements the CLI commands for pkghash.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkghash/internal/app"
	"go.trai.ch/pkghash/internal/build"
	"go.trai.ch/pkghash/internal/core/domain"
)

// CLI represents the command line interface for pkghash.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Hash(ctx context.Context, path string, opts app.HashOptions) (*domain.HashResult, error)
	Files(ctx context.Context, path string) ([]domain.FileHash, error)
	Deps(ctx context.Context, path string) ([]domain.DependencySpec, error)
	OutputHash(ctx context.Context, path string) (string, error)
	Packages(path string) (domain.PackageInfos, error)
	Report(path, hash string) (*domain.HashReport, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkghash",
		Short:         "Content hashes for packages of JavaScript monorepos",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newFilesCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newOutputHashCmd())
	rootCmd.AddCommand(c.newPackagesCmd())
	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// pathArg returns the optional path argument, defaulting to the working directory.
func pathArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
