package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"settleup/internal/models"
)

// CreateSettlement appends a settlement record. Settlements are append-only;
// there is no update, delete, or compensating entry.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, event_id, debtor_id, creditor_id, amount, settled_by_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.EventID, settlement.DebtorID, settlement.CreditorID,
		settlement.Amount, settlement.SettledByID, settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	return nil
}

// ListSettlementsByEvent retrieves an event's full settlement history,
// oldest first.
func (s *SQLiteStore) ListSettlementsByEvent(ctx context.Context, eventID string) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, event_id, debtor_id, creditor_id, amount, settled_by_id, created_at
		 FROM settlements WHERE event_id = ? ORDER BY created_at, id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		if err := rows.Scan(&settlement.ID, &settlement.EventID, &settlement.DebtorID,
			&settlement.CreditorID, &settlement.Amount, &settlement.SettledByID,
			&settlement.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}
