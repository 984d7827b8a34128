package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/trailmap/http/filerouter"
	"github.com/xy-planning-network/trailmap/http/routepath"
	"github.com/xy-planning-network/trailmap/logger"
	"github.com/xy-planning-network/trailmap/ranger"
)

// treeFlags are the flags shared by every command loading a route tree.
type treeFlags struct {
	noTags  bool
	strip   string
	verbose bool
}

func (f *treeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noTags, "no-tags", false, "Do not append path templates to tags")
	cmd.Flags().StringVar(&f.strip, "strip", "", `How the root directory's name is removed: "segment" or "text"`)
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log route loading at INFO")
}

// options converts the flags set on cmd into filerouter options.
func (f *treeFlags) options(cmd *cobra.Command) ([]filerouter.Option, error) {
	var opts []filerouter.Option
	if f.noTags {
		opts = append(opts, filerouter.WithAutoTags(false))
	}

	if cmd.Flags().Changed("strip") {
		mode, err := routepath.NewStripMode(f.strip)
		if err != nil {
			return nil, err
		}
		opts = append(opts, filerouter.WithStripMode(mode))
	}

	if f.verbose {
		opts = append(opts, filerouter.WithVerbose(true))
	}

	return opts, nil
}

func routesCmd() *cobra.Command {
	var flags treeFlags

	cmd := &cobra.Command{
		Use:   "routes [dir]",
		Short: "List the routes a route tree mounts",
		Long: `Load the route tree rooted at dir, or the configured routes directory,
and print every mounted prefix in the order it is mounted, with its routes and tags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			return runRoutes(cmd, dirArg(args), opts)
		},
	}
	flags.register(cmd)

	return cmd
}

func runRoutes(cmd *cobra.Command, dir string, opts []filerouter.Option) error {
	rng, err := ranger.New(
		ranger.WithLogger(logger.NewLogger(logger.WithWriter(cmd.ErrOrStderr()), logger.WithLevel(logger.LogLevelWarn))),
		ranger.WithRoutes(dir, nil, opts...),
	)
	if err != nil {
		return err
	}
	defer rng.Shutdown()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PREFIX\tROUTES\tTAGS")
	for _, m := range rng.Mounts() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Prefix, strings.Join(m.Routes, ", "), strings.Join(m.Tags, ", "))
	}

	return w.Flush()
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
