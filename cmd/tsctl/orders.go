package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tradsolution/storefront/internal/domain/model"
)

func newOrdersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect orders",
	}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		Args:  cobra.NoArgs,
		RunE: withEnv(opts, func(cmd *cobra.Command, _ []string, e *env) error {
			orders, err := e.orders.List(cmd.Context())
			if err != nil {
				return err
			}
			if status != "" {
				want := model.OrderStatus(strings.ToUpper(status))
				if !want.Valid() {
					return fmt.Errorf("unknown order status %q", status)
				}
				orders = lo.Filter(orders, func(o model.Order, _ int) bool { return o.Status == want })
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tCUSTOMER\tPRODUCT\tTOTAL\tCREATED")
			for _, o := range orders {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s %s\t%s\n",
					o.ID, o.Status, o.CustomerName, o.ProductName,
					o.Total().StringFixed(2), o.Currency, o.CreatedAt.UTC().Format("2006-01-02 15:04"))
			}
			return w.Flush()
		}),
	}
	list.Flags().StringVar(&status, "status", "", "only show orders with this status")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: withEnv(opts, func(cmd *cobra.Command, _ []string, e *env) error {
			s, err := e.orders.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "revenue:     %s %s\n", s.TotalRevenue.StringFixed(2), e.cfg.Currency)
			fmt.Fprintf(out, "orders:      %d\n", s.TotalOrders)
			fmt.Fprintf(out, "customers:   %d\n", s.ActiveUsers)
			fmt.Fprintf(out, "conversion:  %.1f%%\n", s.ConversionRate)
			return nil
		}),
	}

	cmd.AddCommand(list, stats)
	return cmd
}
