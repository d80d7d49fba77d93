package commands

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/pos/pkg/interfaces/cli/output"
)

func newHistoryCommand(opts *globalOptions) *cobra.Command {
	var (
		files  StoreFiles
		format string
		saved  bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded transactions or parked carts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := output.ValidateFormat(format); err != nil {
				return err
			}
			appCfg, logger, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			s, err := openStores(ctx, appCfg, files, logger)
			if err != nil {
				return err
			}

			if saved {
				carts, err := s.SavedCarts.ListSavedCarts(ctx)
				if err != nil {
					return err
				}
				return output.SavedCartList(cmd.OutOrStdout(), format, carts)
			}

			txns, err := s.Transactions.ListTransactions(ctx)
			if err != nil {
				return err
			}
			return output.TransactionList(cmd.OutOrStdout(), format, txns)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&files.Catalog, "catalog", "", "Catalog CSV or XLSX file (memory backend)")
	flags.StringVar(&files.Customers, "customers", "", "Customers CSV or XLSX file (memory backend)")
	flags.StringVar(&format, "format", output.FormatText, "Output format: text, json")
	flags.BoolVar(&saved, "saved", false, "List parked carts instead of transactions")

	return cmd
}
