package main

import (
	"fmt"

	"github.com/SscSPs/bill_tracker_app/internal/cli"
	"github.com/SscSPs/bill_tracker_app/internal/core/aggregation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func upcomingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List unpaid bills due soon",
		RunE:  runUpcoming,
	}

	cmd.Flags().Int("days", aggregation.DefaultUpcomingDays, "look-ahead window in days")
	cmd.Flags().Int("limit", aggregation.DefaultUpcomingLimit, "maximum number of bills")
	_ = viper.BindPFlag("upcoming.days", cmd.Flags().Lookup("days"))
	_ = viper.BindPFlag("upcoming.limit", cmd.Flags().Lookup("limit"))

	return cmd
}

func runUpcoming(cmd *cobra.Command, _ []string) error {
	days := viper.GetInt("upcoming.days")
	limit := viper.GetInt("upcoming.limit")
	if days <= 0 || limit <= 0 {
		return fmt.Errorf("--days and --limit must be positive")
	}

	bills, ref, err := loadBills(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderUpcoming(aggregation.Upcoming(bills, days, limit, ref), ref))
	return nil
}
