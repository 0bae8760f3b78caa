package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/cli"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/core/store"
	"github.com/SscSPs/bill_tracker_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/bill_tracker_app/internal/utils/dates"
	"github.com/spf13/viper"
)

// asOf returns the reference time for reports. An empty value means now.
func asOf(value string, now func() time.Time) (time.Time, error) {
	if value == "" {
		return now(), nil
	}
	t, err := dates.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of: %w", err)
	}
	return t, nil
}

// loadBills reads bills from the SQLite database when --db is set and from the
// JSON bills file otherwise. The bills are loaded into a store pinned to the
// configured reference time so their statuses are derived against it.
func loadBills(ctx context.Context) ([]domain.Bill, time.Time, error) {
	ref, err := asOf(viper.GetString("as_of"), time.Now)
	if err != nil {
		return nil, time.Time{}, err
	}

	source, bills, err := readBills(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}

	s := store.NewBillStore(store.WithClock(func() time.Time { return ref }))
	loaded := s.Load(bills)
	slog.Debug("Bills loaded", "source", source, "count", len(loaded), "as_of", ref.Format(dates.DateLayout))
	return loaded, ref, nil
}

func readBills(ctx context.Context) (string, []domain.Bill, error) {
	if dbPath := viper.GetString("bills.db"); dbPath != "" {
		db, err := sqlite.Open(dbPath)
		if err != nil {
			return "", nil, err
		}
		defer db.Close()

		bills, err := sqlite.NewBillRepository(db).ListBills(ctx)
		return dbPath, bills, err
	}

	path := viper.GetString("bills.file")
	bills, err := cli.ReadBillsFile(path)
	return path, bills, err
}
