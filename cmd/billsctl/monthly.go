package main

import (
	"fmt"

	"github.com/SscSPs/bill_tracker_app/internal/cli"
	"github.com/SscSPs/bill_tracker_app/internal/core/aggregation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func monthlyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show paid and unpaid totals per month",
		RunE:  runMonthly,
	}

	cmd.Flags().Int("months", aggregation.DefaultMonthsBack, "number of months, ending with the current one")
	_ = viper.BindPFlag("monthly.months", cmd.Flags().Lookup("months"))

	return cmd
}

func runMonthly(cmd *cobra.Command, _ []string) error {
	months := viper.GetInt("monthly.months")
	if months <= 0 {
		return fmt.Errorf("--months must be positive")
	}

	bills, ref, err := loadBills(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderMonthly(aggregation.MonthlyBreakdown(bills, months, ref)))
	return nil
}
