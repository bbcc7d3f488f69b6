package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/tradereport/pkg/exchange/retry"
	"github.com/c9s/tradereport/pkg/pricesolver"
	"github.com/c9s/tradereport/pkg/report"
	"github.com/c9s/tradereport/pkg/style"
)

func init() {
	exportCmd.Flags().String("symbol", "", "the trading pair, like BTCUSDT")
	exportCmd.Flags().String("since", "", "start date of the export, like 2023-01-01")
	exportCmd.Flags().String("output", "", "write the report to this csv file instead of stdout")
	RootCmd.AddCommand(exportCmd)
}

// go run ./cmd/tradereport export --symbol=BTCUSDT --since=2023-01-01
var exportCmd = &cobra.Command{
	Use:          "export --symbol SYMBOL --since DATE [--output FILE]",
	Short:        "Export the trade history of a symbol with usd fee values",
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

		sinceStr, err := cmd.Flags().GetString("since")
		if err != nil {
			return err
		}
		if sinceStr == "" {
			return fmt.Errorf("--since option is required")
		}

		since, err := time.Parse("2006-01-02", sinceStr)
		if err != nil {
			return fmt.Errorf("can not parse the since date %q: %w", sinceStr, err)
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		// validate the symbol before walking the whole history
		market, err := retry.QueryMarketUntilSuccessful(ctx, ex, symbol)
		if err != nil {
			return err
		}

		log.Infof("exporting %s trades (base %s, quote %s) since %s", market.Symbol, market.BaseCurrency, market.QuoteCurrency, sinceStr)

		fetcher := report.NewFetcher(ex, pricesolver.New(ex))
		tradeReport, err := fetcher.Generate(ctx, market.Symbol, since)
		if err != nil {
			return err
		}

		for _, asset := range tradeReport.MissingPrices {
			log.Warnf("no usd price found for fee currency %s", asset)
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		if output != "" {
			if err := report.WriteCsvFile(output, tradeReport); err != nil {
				return err
			}

			log.Infof("%d trades written to %s", len(tradeReport.Rows), output)
			return nil
		}

		t := style.NewTableWriter(os.Stdout)
		header := make([]interface{}, 0, len(tradeReport.CsvHeader()))
		for _, h := range tradeReport.CsvHeader() {
			header = append(header, h)
		}
		t.AppendHeader(header)

		for _, record := range tradeReport.CsvRecords() {
			row := make([]interface{}, 0, len(record))
			for _, v := range record {
				row = append(row, v)
			}
			t.AppendRow(row)
		}
		t.Render()

		log.Infof("%d trades, total fee value %f USD", len(tradeReport.Rows), tradeReport.TotalFeeUsd())
		return nil
	},
}
