package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type resetter interface {
	Reset(ctx context.Context) error
}

func newResetCmd(opts *options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace JSON state with the demo seed data",
		Args:  cobra.NoArgs,
		RunE: withEnv(opts, func(cmd *cobra.Command, _ []string, e *env) error {
			r, ok := e.backend.(resetter)
			if !ok {
				return errors.New("reset is only supported for the JSON state backend")
			}
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			if err := r.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "state in %s reset to seed data\n", e.cfg.StateDir)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm that all orders, invoices and links are discarded")
	return cmd
}
