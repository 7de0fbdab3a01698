package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInvoicePDFCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "invoice-pdf <invoice-id>",
		Short: "Render an invoice with its delivery audit trail to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			doc, err := e.invoices.RenderPDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = doc.Filename
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(doc.Content)
				return err
			}
			if err := os.WriteFile(output, doc.Content, 0o644); err != nil {
				return fmt.Errorf("write invoice: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", output, len(doc.Content))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default Invoice_<number>.pdf)`)
	return cmd
}
