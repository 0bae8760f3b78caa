package main

import (
	"fmt"

	"github.com/SscSPs/bill_tracker_app/internal/cli"
	"github.com/SscSPs/bill_tracker_app/internal/core/aggregation"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show bill KPIs and totals per category",
		RunE:  runSummary,
	}

	cmd.Flags().String("view", "all", "bill view (all, recurring, one-time, paid, unpaid)")
	_ = viper.BindPFlag("summary.view", cmd.Flags().Lookup("view"))

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	view, err := domain.ParseBillView(viper.GetString("summary.view"))
	if err != nil {
		return err
	}

	bills, ref, err := loadBills(cmd.Context())
	if err != nil {
		return err
	}
	inView := domain.QueryBills(bills, domain.BillQuery{View: view})

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(
		aggregation.SummaryKPIs(inView, ref),
		aggregation.CategoryTotals(inView),
	))
	return nil
}
