package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a run configuration and its seed network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			seed, err := cfg.BuildSeed()
			if err != nil {
				return err
			}
			steps := cfg.StepCounts()
			total := 0
			for _, m := range steps {
				total += m
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d seed nodes, %d seed edges, %d steps, %d requested edges, %d replicates\n",
				seed.Len(), len(seed.Edges), len(steps), total, cfg.ReplicateCount())
			return nil
		},
	}
}
