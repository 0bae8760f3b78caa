package pgsql

import (
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BillRepo:        newPgxBillRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
