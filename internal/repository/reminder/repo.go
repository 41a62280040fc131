package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

var ErrReminderNotFound = errors.New("reminder not found")

const reminderColumns = `
		id, message, scheduled_date, status, source_type, type, target_type, target_id, priority,
		COALESCE(channel, ''), reminder_rule_id, assignment_id, maintenance_id, created_at, updated_at`

// Repository provides methods to interact with the reminders table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (model.Reminder, error) {
	var r model.Reminder

	err := row.Scan(
		&r.ID, &r.Message, &r.ScheduledDate, &r.Status, &r.SourceType, &r.Type, &r.TargetType, &r.TargetID, &r.Priority,
		&r.Channel, &r.ReminderRuleID, &r.AssignmentID, &r.MaintenanceID, &r.CreatedAt, &r.UpdatedAt,
	)

	return r, err
}

// nullChannel maps an unset channel to SQL NULL.
func nullChannel(c model.Channel) any {
	if c == "" {
		return nil
	}

	return c
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Create inserts a reminder and returns it with its generated id and timestamps.
func (r *Repository) Create(ctx context.Context, reminder model.Reminder) (model.Reminder, error) {
	return insertReminder(ctx, r.db.Master, reminder)
}

func insertReminder(ctx context.Context, q queryer, reminder model.Reminder) (model.Reminder, error) {
	query := `
		INSERT INTO reminders (
		    message, scheduled_date, status, source_type, type, target_type, target_id, priority,
		    channel, reminder_rule_id, assignment_id, maintenance_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at;
    `

	err := q.QueryRowContext(
		ctx, query,
		reminder.Message, reminder.ScheduledDate, reminder.Status, reminder.SourceType, reminder.Type,
		reminder.TargetType, reminder.TargetID, reminder.Priority, nullChannel(reminder.Channel),
		reminder.ReminderRuleID, reminder.AssignmentID, reminder.MaintenanceID,
	).Scan(&reminder.ID, &reminder.CreatedAt, &reminder.UpdatedAt)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminder, nil
}

// GetByID returns the reminder with the given id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	query := `SELECT` + reminderColumns + `
		FROM reminders
		WHERE id = $1;`

	reminder, err := scanReminder(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reminder{}, ErrReminderNotFound
		}

		return model.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

// FindDue returns PENDING and OVERDUE reminders scheduled at or before now, oldest first.
func (r *Repository) FindDue(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	query := `SELECT` + reminderColumns + `
		FROM reminders
		WHERE status IN ('PENDING', 'OVERDUE') AND scheduled_date <= $1
		ORDER BY scheduled_date;`

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find due reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}

		reminders = append(reminders, reminder)
	}

	return reminders, rows.Err()
}

// List returns one page of reminders matching filter, latest scheduled first, with the total match count.
// IsSent is derived from status: true selects SENT, false everything else.
func (r *Repository) List(ctx context.Context, filter model.ReminderFilter) (model.ReminderPage, error) {
	var (
		conds []string
		args  []any
	)

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.IsSent != nil {
		args = append(args, model.ReminderSent)
		if *filter.IsSent {
			conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
		} else {
			conds = append(conds, fmt.Sprintf("status <> $%d", len(args)))
		}
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var page model.ReminderPage

	countQuery := `SELECT COUNT(*) FROM reminders` + where + `;`
	if err := r.db.Master.QueryRowContext(ctx, countQuery, args...).Scan(&page.Total); err != nil {
		return model.ReminderPage{}, fmt.Errorf("failed to count reminders: %w", err)
	}

	listArgs := append(args, filter.PageSize, filter.Offset())
	listQuery := `SELECT` + reminderColumns + `
		FROM reminders` + where + fmt.Sprintf(`
		ORDER BY scheduled_date DESC
		LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)

	rows, err := r.db.Master.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return model.ReminderPage{}, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	page.Items = []model.Reminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return model.ReminderPage{}, err
		}

		page.Items = append(page.Items, reminder)
	}

	return page, rows.Err()
}

// UpdateStatus sets the status of a reminder.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReminderStatus) error {
	query := `
		UPDATE reminders
		SET status = $1, updated_at = NOW()
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// DeletePendingByRule deletes the live reminder(s) generated by a rule and returns their ids.
// SENT and OVERDUE reminders are history and stay.
func (r *Repository) DeletePendingByRule(ctx context.Context, ruleID uuid.UUID) ([]uuid.UUID, error) {
	return deletePendingByRule(ctx, r.db.Master, ruleID)
}

func deletePendingByRule(ctx context.Context, q queryer, ruleID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		DELETE FROM reminders
		WHERE reminder_rule_id = $1 AND source_type = 'RULE' AND status = 'PENDING'
		RETURNING id;
    `

	rows, err := q.QueryContext(ctx, query, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete pending reminders: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ReplacePendingByRule swaps the pending reminder(s) of the reminder's rule for the given one
// in a single transaction, so the rule never ends up with zero or two live reminders.
// It returns the created reminder and the ids it replaced.
func (r *Repository) ReplacePendingByRule(ctx context.Context, reminder model.Reminder) (model.Reminder, []uuid.UUID, error) {
	if reminder.ReminderRuleID == nil {
		return model.Reminder{}, nil, errors.New("reminder has no rule")
	}

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.Reminder{}, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	replaced, err := deletePendingByRule(ctx, tx, *reminder.ReminderRuleID)
	if err != nil {
		return model.Reminder{}, nil, err
	}

	created, err := insertReminder(ctx, tx, reminder)
	if err != nil {
		return model.Reminder{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		return model.Reminder{}, nil, fmt.Errorf("failed to commit reminder replacement: %w", err)
	}

	return created, replaced, nil
}

// MarkOverdue flags PENDING reminders scheduled before the cutoff as OVERDUE.
func (r *Repository) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	query := `
		UPDATE reminders
		SET status = 'OVERDUE', updated_at = NOW()
		WHERE status = 'PENDING' AND scheduled_date < $1;
    `

	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue reminders: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}
