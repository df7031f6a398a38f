package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/softharbor/zenvia-bridge/internal/entity"
)

type SubscriptionRepository struct {
	DB *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id,
			zenvia_id,
			event_type,
			channel,
			direction,
			webhook_url,
			status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.ZenviaID,
		sub.EventType,
		sub.Channel,
		sub.Direction,
		sub.WebhookURL,
		sub.Status,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("creating subscription mirror: %w", err)
	}

	return nil
}

func (r *SubscriptionRepository) FindByZenviaID(ctx context.Context, zenviaID string) (*entity.Subscription, error) {
	query := `
		SELECT id, zenvia_id, event_type, channel, COALESCE(direction, ''), webhook_url, status, created_at, updated_at
		FROM subscriptions
		WHERE zenvia_id = $1
	`

	var sub entity.Subscription
	err := r.DB.QueryRowContext(ctx, query, zenviaID).Scan(
		&sub.ID,
		&sub.ZenviaID,
		&sub.EventType,
		&sub.Channel,
		&sub.Direction,
		&sub.WebhookURL,
		&sub.Status,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("subscription not found: %w", err)
	}

	return &sub, nil
}

func (r *SubscriptionRepository) List(ctx context.Context) ([]*entity.Subscription, error) {
	query := `
		SELECT id, zenvia_id, event_type, channel, COALESCE(direction, ''), webhook_url, status, created_at, updated_at
		FROM subscriptions
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*entity.Subscription
	for rows.Next() {
		var sub entity.Subscription
		if err := rows.Scan(
			&sub.ID,
			&sub.ZenviaID,
			&sub.EventType,
			&sub.Channel,
			&sub.Direction,
			&sub.WebhookURL,
			&sub.Status,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		); err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}

	return subs, rows.Err()
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, zenviaID string, status string) error {
	query := `UPDATE subscriptions SET status = $1, updated_at = NOW() WHERE zenvia_id = $2`
	_, err := r.DB.ExecContext(ctx, query, status, zenviaID)
	return err
}
