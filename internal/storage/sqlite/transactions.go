package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"settleup/internal/models"
)

// CreateTransaction appends a transaction and its splits. Transactions are
// append-only; there is no update or delete.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if transaction.CreatedAt == 0 {
		transaction.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, event_id, payer_id, description, total, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		transaction.ID, transaction.EventID, transaction.PayerID,
		transaction.Description, transaction.Total, transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for _, split := range transaction.Splits {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO transaction_splits (transaction_id, debtor_id, owed) VALUES (?, ?, ?)",
			transaction.ID, split.DebtorID, split.Owed,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListTransactionsByEvent retrieves an event's full transaction history,
// oldest first, including splits.
func (s *SQLiteStore) ListTransactionsByEvent(ctx context.Context, eventID string) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, event_id, payer_id, description, total, created_at
		 FROM transactions WHERE event_id = ? ORDER BY created_at, id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		transaction := &models.Transaction{}
		if err := rows.Scan(&transaction.ID, &transaction.EventID, &transaction.PayerID,
			&transaction.Description, &transaction.Total, &transaction.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	for _, transaction := range transactions {
		splitRows, err := s.db.QueryContext(ctx,
			"SELECT debtor_id, owed FROM transaction_splits WHERE transaction_id = ? ORDER BY debtor_id",
			transaction.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get transaction splits: %w", err)
		}

		for splitRows.Next() {
			var split models.Split
			if err := splitRows.Scan(&split.DebtorID, &split.Owed); err != nil {
				splitRows.Close()
				return nil, fmt.Errorf("failed to scan transaction split: %w", err)
			}
			transaction.Splits = append(transaction.Splits, split)
		}
		splitRows.Close()
		if err := splitRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate transaction splits: %w", err)
		}
	}

	return transactions, nil
}
