package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	marketCmd.Flags().String("symbol", "", "the trading pair, like BTCUSDT")
	RootCmd.AddCommand(marketCmd)
}

// go run ./cmd/tradereport market --symbol=BTCUSDT
var marketCmd = &cobra.Command{
	Use:          "market --symbol SYMBOL",
	Short:        "Show the base/quote assets of a trading pair",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}
		if symbol == "" {
			return fmt.Errorf("--symbol option is required")
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		market, err := ex.QueryMarket(ctx, symbol)
		if err != nil {
			return err
		}

		fmt.Printf("%s: base %s, quote %s\n", market.Symbol, market.BaseCurrency, market.QuoteCurrency)
		return nil
	},
}
