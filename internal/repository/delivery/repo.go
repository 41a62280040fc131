package delivery

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

const uniqueViolation = "23505"

var (
	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrDuplicateKey     = errors.New("delivery idempotency key already exists")
	ErrStaleDelivery    = errors.New("delivery was changed concurrently")
)

const deliveryColumns = `
		id, reminder_id, channel, status, attempts, max_attempts, job_id, idempotency_key,
		queued_at, processed_at, sent_at, dead_letter_at, last_error, provider_message_id,
		payload, created_at, updated_at`

// Repository provides methods to interact with the reminder_deliveries table.
//
// Every query runs on the master node: the delivery state machine reads its
// own writes and cannot tolerate replica lag.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new delivery repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDelivery(row rowScanner) (model.Delivery, error) {
	var (
		d       model.Delivery
		payload []byte
	)

	err := row.Scan(
		&d.ID, &d.ReminderID, &d.Channel, &d.Status, &d.Attempts, &d.MaxAttempts, &d.JobID, &d.IdempotencyKey,
		&d.QueuedAt, &d.ProcessedAt, &d.SentAt, &d.DeadLetterAt, &d.LastError, &d.ProviderMessageID,
		&payload, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return model.Delivery{}, err
	}

	if len(payload) > 0 {
		var p model.DeliveryPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return model.Delivery{}, fmt.Errorf("decode payload: %w", err)
		}

		d.Payload = &p
	}

	return d, nil
}

// encodePayload returns the jsonb text of p, or nil for SQL NULL.
func encodePayload(p *model.DeliveryPayload) (any, error) {
	if p == nil {
		return nil, nil
	}

	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	return string(b), nil
}

func (r *Repository) getOne(ctx context.Context, where string, arg any) (model.Delivery, error) {
	query := `SELECT` + deliveryColumns + `
		FROM reminder_deliveries
		WHERE ` + where + `;`

	d, err := scanDelivery(r.db.Master.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Delivery{}, ErrDeliveryNotFound
		}

		return model.Delivery{}, fmt.Errorf("failed to get delivery: %w", err)
	}

	return d, nil
}

// GetByID returns the delivery with the given id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Delivery, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByIdempotencyKey returns the delivery owning key.
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (model.Delivery, error) {
	return r.getOne(ctx, "idempotency_key = $1", key)
}

// Create inserts d and returns the stored row.
//
// ErrDuplicateKey is returned when another delivery already owns the idempotency key.
func (r *Repository) Create(ctx context.Context, d model.Delivery) (model.Delivery, error) {
	query := `
		INSERT INTO reminder_deliveries (
		    reminder_id, channel, status, attempts, max_attempts, idempotency_key, queued_at, payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at;
    `

	payload, err := encodePayload(d.Payload)
	if err != nil {
		return model.Delivery{}, err
	}

	err = r.db.Master.QueryRowContext(
		ctx, query, d.ReminderID, d.Channel, d.Status, d.Attempts, d.MaxAttempts, d.IdempotencyKey, d.QueuedAt, payload,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.Delivery{}, ErrDuplicateKey
		}

		return model.Delivery{}, fmt.Errorf("failed to create delivery: %w", err)
	}

	return d, nil
}

// Update writes every mutable field of d, provided the stored status still equals expected.
//
// ErrStaleDelivery is returned when the row moved on in the meantime.
func (r *Repository) Update(ctx context.Context, d model.Delivery, expected model.DeliveryStatus) error {
	query := `
		UPDATE reminder_deliveries
		SET status = $1, attempts = $2, max_attempts = $3, job_id = $4, queued_at = $5, processed_at = $6,
		    sent_at = $7, dead_letter_at = $8, last_error = $9, provider_message_id = $10, payload = $11,
		    updated_at = NOW()
		WHERE id = $12 AND status = $13;
    `

	payload, err := encodePayload(d.Payload)
	if err != nil {
		return err
	}

	res, err := r.db.Master.ExecContext(
		ctx, query,
		d.Status, d.Attempts, d.MaxAttempts, d.JobID, d.QueuedAt, d.ProcessedAt,
		d.SentAt, d.DeadLetterAt, d.LastError, d.ProviderMessageID, payload,
		d.ID, expected,
	)
	if err != nil {
		return fmt.Errorf("failed to update delivery: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrStaleDelivery
	}

	return nil
}

// UpdateJobID records the queue job carrying the delivery.
func (r *Repository) UpdateJobID(ctx context.Context, id uuid.UUID, jobID string) error {
	query := `
		UPDATE reminder_deliveries
		SET job_id = $1, updated_at = NOW()
		WHERE id = $2;
    `

	res, err := r.db.Master.ExecContext(ctx, query, jobID, id)
	if err != nil {
		return fmt.Errorf("failed to update delivery job id: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrDeliveryNotFound
	}

	return nil
}

// ListByReminder returns every delivery of a reminder.
func (r *Repository) ListByReminder(ctx context.Context, reminderID uuid.UUID) ([]model.Delivery, error) {
	query := `SELECT` + deliveryColumns + `
		FROM reminder_deliveries
		WHERE reminder_id = $1
		ORDER BY created_at;`

	rows, err := r.db.Master.QueryContext(ctx, query, reminderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []model.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}

		deliveries = append(deliveries, d)
	}

	return deliveries, rows.Err()
}

// List returns one page of deliveries matching filter, newest queued first, with the total match count.
func (r *Repository) List(ctx context.Context, filter model.DeliveryFilter) (model.DeliveryPage, error) {
	var (
		conds []string
		args  []any
	)

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Channel != "" {
		args = append(args, filter.Channel)
		conds = append(conds, fmt.Sprintf("channel = $%d", len(args)))
	}
	if filter.ReminderID != nil {
		args = append(args, *filter.ReminderID)
		conds = append(conds, fmt.Sprintf("reminder_id = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var page model.DeliveryPage

	countQuery := `SELECT COUNT(*) FROM reminder_deliveries` + where + `;`
	if err := r.db.Master.QueryRowContext(ctx, countQuery, args...).Scan(&page.Total); err != nil {
		return model.DeliveryPage{}, fmt.Errorf("failed to count deliveries: %w", err)
	}

	listArgs := append(args, filter.PageSize, filter.Offset())
	listQuery := `SELECT` + deliveryColumns + `
		FROM reminder_deliveries` + where + fmt.Sprintf(`
		ORDER BY queued_at DESC NULLS LAST
		LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)

	rows, err := r.db.Master.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return model.DeliveryPage{}, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	page.Items = []model.Delivery{}
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return model.DeliveryPage{}, err
		}

		page.Items = append(page.Items, d)
	}

	return page, rows.Err()
}

// DeleteUnsentByReminders removes the QUEUED, FAILED and DEAD_LETTER deliveries of the given reminders.
//
// PROCESSING and SENT rows are kept: they may already have reached the provider.
func (r *Repository) DeleteUnsentByReminders(ctx context.Context, reminderIDs []uuid.UUID) (int64, error) {
	if len(reminderIDs) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(reminderIDs))
	for _, id := range reminderIDs {
		ids = append(ids, id.String())
	}

	query := `
		DELETE FROM reminder_deliveries
		WHERE reminder_id = ANY($1::uuid[])
		  AND status IN ('QUEUED', 'FAILED', 'DEAD_LETTER');
    `

	res, err := r.db.Master.ExecContext(ctx, query, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete deliveries: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}
