package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/cli"
	"github.com/SscSPs/bill_tracker_app/internal/repositories/database/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Copy the bills file into the SQLite database",
		Long: `import reads the JSON bills file and inserts every bill into the database
given by --db. Bills whose id already exists are skipped.`,
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, _ []string) error {
	dbPath := viper.GetString("bills.db")
	if dbPath == "" {
		return errors.New("import needs --db")
	}

	bills, err := cli.ReadBillsFile(viper.GetString("bills.file"))
	if err != nil {
		return err
	}

	db, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := sqlite.NewBillRepository(db)
	imported, skipped := 0, 0
	for _, b := range bills {
		err := repo.SaveBill(cmd.Context(), b)
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			skipped++
			slog.Debug("Skipping existing bill", "bill_id", b.ID)
		case err != nil:
			return err
		default:
			imported++
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
		fmt.Sprintf("Imported %d bills into %s (%d already present)", imported, dbPath, skipped)))
	return nil
}
