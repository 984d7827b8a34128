package main

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/trailmap/ranger"
)

func serveCmd() *cobra.Command {
	var flags treeFlags

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve the route tree",
		Long: `Mount the route tree rooted at dir, or the configured routes directory,
and serve it until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			rng, err := ranger.New(ranger.WithRoutes(dirArg(args), nil, opts...))
			if err != nil {
				return err
			}

			return rng.Guide()
		},
	}
	flags.register(cmd)

	return cmd
}
