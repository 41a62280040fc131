package rule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

var ErrRuleNotFound = errors.New("reminder rule not found")

const ruleColumns = `
		id, target_entity_type, target_entity_id, offset_value, offset_unit, target_type, priority,
		channel, message_template, active, created_at, updated_at`

// Repository provides methods to interact with the reminder_rules table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder rule repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRule(row rowScanner) (model.ReminderRule, error) {
	var rule model.ReminderRule

	err := row.Scan(
		&rule.ID, &rule.TargetEntityType, &rule.TargetEntityID, &rule.OffsetValue, &rule.OffsetUnit,
		&rule.TargetType, &rule.Priority, &rule.Channel, &rule.MessageTemplate, &rule.Active,
		&rule.CreatedAt, &rule.UpdatedAt,
	)

	return rule, err
}

// Create inserts a rule and returns it with its generated id and timestamps.
func (r *Repository) Create(ctx context.Context, rule model.ReminderRule) (model.ReminderRule, error) {
	query := `
		INSERT INTO reminder_rules (
		    target_entity_type, target_entity_id, offset_value, offset_unit, target_type, priority,
		    channel, message_template, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query,
		rule.TargetEntityType, rule.TargetEntityID, rule.OffsetValue, rule.OffsetUnit, rule.TargetType,
		rule.Priority, rule.Channel, rule.MessageTemplate, rule.Active,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return model.ReminderRule{}, fmt.Errorf("failed to create reminder rule: %w", err)
	}

	return rule, nil
}

// GetByID returns the rule with the given id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.ReminderRule, error) {
	query := `SELECT` + ruleColumns + `
		FROM reminder_rules
		WHERE id = $1;`

	rule, err := scanRule(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReminderRule{}, ErrRuleNotFound
		}

		return model.ReminderRule{}, fmt.Errorf("failed to get reminder rule: %w", err)
	}

	return rule, nil
}

// Update overwrites the mutable fields of a rule and returns the refreshed timestamp.
func (r *Repository) Update(ctx context.Context, rule model.ReminderRule) (model.ReminderRule, error) {
	query := `
		UPDATE reminder_rules
		SET offset_value = $1, offset_unit = $2, target_type = $3, priority = $4,
		    channel = $5, message_template = $6, active = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query,
		rule.OffsetValue, rule.OffsetUnit, rule.TargetType, rule.Priority,
		rule.Channel, rule.MessageTemplate, rule.Active, rule.ID,
	).Scan(&rule.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReminderRule{}, ErrRuleNotFound
		}

		return model.ReminderRule{}, fmt.Errorf("failed to update reminder rule: %w", err)
	}

	return rule, nil
}

// Delete removes a rule and its pending RULE reminders in one transaction and returns the removed reminder ids.
// Remaining reminders keep their history; the foreign key clears their rule reference.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
		DELETE FROM reminders
		WHERE reminder_rule_id = $1 AND source_type = 'RULE' AND status = 'PENDING'
		RETURNING id;
    `, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete pending reminders of rule: %w", err)
	}

	var removed []uuid.UUID
	for rows.Next() {
		var reminderID uuid.UUID
		if err := rows.Scan(&reminderID); err != nil {
			_ = rows.Close()
			return nil, err
		}

		removed = append(removed, reminderID)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM reminder_rules WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete reminder rule: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrRuleNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rule deletion: %w", err)
	}

	return removed, nil
}

// List returns all rules, optionally narrowed to one target entity.
func (r *Repository) List(ctx context.Context, entityType model.TargetEntityType, entityID *uuid.UUID) ([]model.ReminderRule, error) {
	query := `SELECT` + ruleColumns + `
		FROM reminder_rules
		WHERE ($1 = '' OR target_entity_type = $1)
		  AND ($2::uuid IS NULL OR target_entity_id = $2)
		ORDER BY created_at;`

	return r.query(ctx, query, string(entityType), entityID)
}

// ListActiveByTarget returns the active rules bound to one target entity.
func (r *Repository) ListActiveByTarget(ctx context.Context, entityType model.TargetEntityType, entityID uuid.UUID) ([]model.ReminderRule, error) {
	query := `SELECT` + ruleColumns + `
		FROM reminder_rules
		WHERE target_entity_type = $1 AND target_entity_id = $2 AND active
		ORDER BY created_at;`

	return r.query(ctx, query, entityType, entityID)
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]model.ReminderRule, error) {
	rows, err := r.db.Master.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder rules: %w", err)
	}
	defer rows.Close()

	rules := []model.ReminderRule{}
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	return rules, rows.Err()
}
