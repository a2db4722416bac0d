// Package commands implements the CLI commands for the streak service.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/streak/internal/build"
	"go.trai.ch/streak/internal/core/domain"
)

// CLI represents the command line interface for streak.
type CLI struct {
	app     Application
	server  Server
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Stats(ctx context.Context, username string) (domain.StreakResult, error)
	Card(ctx context.Context, username string, opts domain.CardOptions) (string, error)
}

// Server runs the HTTP surface until its context is done.
type Server interface {
	Serve(ctx context.Context) error
}

// New creates a new CLI instance with the given app and server.
func New(a Application, srv Server) *CLI {
	rootCmd := &cobra.Command{
		Use:           "streak",
		Short:         "GitHub contribution streak cards",
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
		server:  srv,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newCardCmd())
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
