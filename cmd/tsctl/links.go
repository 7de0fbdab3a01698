package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLinksCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Inspect and retire download links",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List download links",
		Args:  cobra.NoArgs,
		RunE: withEnv(opts, func(cmd *cobra.Command, _ []string, e *env) error {
			links, err := e.delivery.Links(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tORDER\tACTIVE\tDOWNLOADS\tEXPIRES")
			for _, l := range links {
				fmt.Fprintf(w, "%s\t%s\t%t\t%d/%d\t%s\n",
					l.ID, l.OrderID, l.IsActive, l.DownloadCount, l.MaxDownloads, l.ExpiresAt.UTC().Format("2006-01-02"))
			}
			return w.Flush()
		}),
	}

	var limit int
	sweep := &cobra.Command{
		Use:   "sweep",
		Short: "Deactivate expired and exhausted links once",
		Args:  cobra.NoArgs,
		RunE: withEnv(opts, func(cmd *cobra.Command, _ []string, e *env) error {
			stale, err := e.delivery.StaleLinks(cmd.Context(), limit)
			if err != nil {
				return err
			}
			retired := 0
			for _, l := range stale {
				ok, err := e.delivery.RetireLink(cmd.Context(), l.ID)
				if err != nil {
					return fmt.Errorf("retire %s: %w", l.ID, err)
				}
				if ok {
					retired++
					fmt.Fprintf(cmd.OutOrStdout(), "deactivated %s (order %s)\n", l.ID, l.OrderID)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d link(s) deactivated\n", retired)
			return nil
		}),
	}
	sweep.Flags().IntVar(&limit, "limit", 100, "maximum links to examine")

	cmd.AddCommand(list, sweep)
	return cmd
}
