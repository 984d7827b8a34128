// Command trailmap serves, or lists, the routes of a route tree of Lua route modules.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trailmap",
		Short: "Mount a directory of route modules as an HTTP API",
		Long: `trailmap turns a directory tree into URL routes.

Each directory is a path segment, a [name] directory or file is a path parameter,
and a file named route.lua handles the directory itself.

Configuration is read from trailmap.toml, or the file TRAILMAP_CONFIG names,
and from environment variables; flags override both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		routesCmd(),
		serveCmd(),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trailmap %s (%s)\n", version, commit)
		},
	}
}
