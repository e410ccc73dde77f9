package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"financial-agent/internal/advisor"
	"financial-agent/internal/marketdata"
)

func newDataCmd(wire func(ctx context.Context) (*app, error)) *cobra.Command {
	var (
		dataType string
		period   string
	)

	cmd := &cobra.Command{
		Use:   "data <ticker>",
		Short: "Fetch raw market data for a ticker",
		Example: `  finagent data AAPL
  finagent data MSFT --type historical --period 6mo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := wire(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.advisor.FinancialData(cmd.Context(), advisor.FinancialDataInput{
				Ticker:   args[0],
				DataType: dataType,
				Period:   period,
			})
			if err != nil {
				if errors.Is(err, advisor.ErrInvalidDataType) {
					return fmt.Errorf("%w: use one of %v", err, dataTypes)
				}
				return err
			}
			return renderData(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&dataType, "type", "t", marketdata.DataTypeComprehensive, "data type to fetch")
	cmd.Flags().StringVarP(&period, "period", "p", "", "history period for --type historical")
	return cmd
}

var dataTypes = []string{
	marketdata.DataTypeComprehensive,
	marketdata.DataTypeHistorical,
	marketdata.DataTypeStatements,
	marketdata.DataTypeNews,
	marketdata.DataTypeEvents,
	marketdata.DataTypeRecommendations,
}
