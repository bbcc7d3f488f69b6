package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/tradereport/pkg/exchange/retry"
)

func init() {
	balanceCmd.Flags().String("asset", "", "the asset to query, like BTC")
	RootCmd.AddCommand(balanceCmd)
}

// go run ./cmd/tradereport balance --asset=BTC
var balanceCmd = &cobra.Command{
	Use:          "balance --asset ASSET",
	Short:        "Show the free + locked balance of an asset",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		asset, err := cmd.Flags().GetString("asset")
		if err != nil {
			return err
		}
		if asset == "" {
			return fmt.Errorf("--asset option is required")
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		balance, err := retry.QueryAssetBalanceUntilSuccessful(ctx, ex, asset)
		if err != nil {
			return err
		}

		fmt.Printf("%s (total %f)\n", balance.String(), balance.Total())
		return nil
	},
}
