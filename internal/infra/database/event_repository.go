package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/softharbor/zenvia-bridge/internal/entity"
)

type InboundEventRepository struct {
	DB *sql.DB
}

func NewInboundEventRepository(db *sql.DB) *InboundEventRepository {
	return &InboundEventRepository{DB: db}
}

func (r *InboundEventRepository) Create(ctx context.Context, event *entity.InboundEvent) error {
	query := `
		INSERT INTO inbound_events (
			id,
			event_type,
			channel,
			direction,
			payload,
			received_at
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		event.ID,
		event.EventType,
		event.Channel,
		event.Direction,
		[]byte(event.Payload),
		event.ReceivedAt,
	)

	if err != nil {
		return fmt.Errorf("storing inbound event: %w", err)
	}

	return nil
}

func (r *InboundEventRepository) ListRecent(ctx context.Context, limit int) ([]*entity.InboundEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, event_type, channel, COALESCE(direction, ''), payload, received_at
		FROM inbound_events
		ORDER BY received_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*entity.InboundEvent
	for rows.Next() {
		var event entity.InboundEvent
		var payload []byte
		if err := rows.Scan(
			&event.ID,
			&event.EventType,
			&event.Channel,
			&event.Direction,
			&payload,
			&event.ReceivedAt,
		); err != nil {
			return nil, err
		}
		event.Payload = payload
		events = append(events, &event)
	}

	return events, rows.Err()
}
