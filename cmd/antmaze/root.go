package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcolony/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "antmaze",
		Short: "Ant colony optimization on grid mazes",
		Long: `antmaze sends a colony of ants from the nest to the food of a grid maze.
Ants follow pheromone and distance, the shortest trails get reinforced, and
the colony converges on a short route. Frames of the pheromone field are
written as CSV for replay.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newMazeCmd(), newConfigCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the antmaze version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "antmaze %s\n", version)
			return err
		},
	}
}

func newConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "YAML configuration file")
	return cmd
}
