package pgsql

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestBuildTransactionQuery(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	query, args := buildTransactionQuery(domain.TransactionFilter{})
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)

	query, args = buildTransactionQuery(domain.TransactionFilter{Category: "Food", From: &from, To: &to})
	assert.Contains(t, query, "WHERE category = $1 AND transaction_date >= $2 AND transaction_date <= $3")
	assert.Equal(t, []any{"Food", from, to}, args)

	query, args = buildTransactionQuery(domain.TransactionFilter{To: &to})
	assert.Contains(t, query, "WHERE transaction_date <= $1")
	assert.Equal(t, []any{to}, args)
}

func TestMapWriteError(t *testing.T) {
	dup := mapWriteError(fmt.Errorf("exec: %w", &pgconn.PgError{Code: uniqueViolation}), "bill", "b1")
	assert.ErrorIs(t, dup, apperrors.ErrDuplicate)

	other := mapWriteError(errors.New("connection reset"), "bill", "b1")
	assert.NotErrorIs(t, other, apperrors.ErrDuplicate)
	assert.Contains(t, other.Error(), "connection reset")
}
