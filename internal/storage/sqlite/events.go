package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"settleup/internal/models"
	"settleup/internal/storage"
)

// CreateEvent persists a new event together with its initial member roster.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt == 0 {
		event.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO events (id, name, creator_id, currency, created_at) VALUES (?, ?, ?, ?, ?)",
		event.ID, event.Name, event.CreatorID, event.Currency, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	for _, userID := range event.MemberIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO event_members (event_id, user_id) VALUES (?, ?)",
			event.ID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID, including its member roster.
func (s *SQLiteStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event := &models.Event{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, creator_id, currency, created_at FROM events WHERE id = ?",
		eventID,
	).Scan(&event.ID, &event.Name, &event.CreatorID, &event.Currency, &event.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event %s: %w", eventID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM event_members WHERE event_id = ? ORDER BY user_id",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get event members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan event member: %w", err)
		}
		event.MemberIDs = append(event.MemberIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event members: %w", err)
	}

	return event, nil
}

// ListEventsForUser retrieves the events the user is a member of, newest first.
func (s *SQLiteStore) ListEventsForUser(ctx context.Context, userID string) ([]*models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.id, e.name, e.creator_id, e.currency, e.created_at
		 FROM events e
		 JOIN event_members m ON m.event_id = e.id
		 WHERE m.user_id = ?
		 ORDER BY e.created_at DESC, e.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for user: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(&event.ID, &event.Name, &event.CreatorID, &event.Currency, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	// Rosters are small; fetch them per event rather than denormalizing.
	for _, event := range events {
		full, err := s.GetEvent(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		event.MemberIDs = full.MemberIDs
	}

	return events, nil
}

// AddEventMember appends a user to an event's roster.
func (s *SQLiteStore) AddEventMember(ctx context.Context, eventID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO event_members (event_id, user_id) VALUES (?, ?)",
		eventID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add event member: %w", err)
	}
	return nil
}
