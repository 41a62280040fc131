package target

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

var ErrTargetNotFound = errors.New("target entity not found")

// Repository reads the assignments and maintenances owned by the CRUD services.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new target repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetAssignment returns an assignment with the name of its asset.
func (r *Repository) GetAssignment(ctx context.Context, id uuid.UUID) (model.Assignment, error) {
	query := `
		SELECT a.id, a.asset_id, COALESCE(s.name, ''), a.assignee_id, a.start_date, a.due_date
		FROM assignments a
		LEFT JOIN assets s ON s.id = a.asset_id
		WHERE a.id = $1;
    `

	var a model.Assignment
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.AssetID, &a.AssetName, &a.AssigneeID, &a.StartDate, &a.DueDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Assignment{}, fmt.Errorf("assignment %s: %w", id, ErrTargetNotFound)
		}

		return model.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

// GetMaintenance returns a maintenance plan with the name of its asset.
func (r *Repository) GetMaintenance(ctx context.Context, id uuid.UUID) (model.Maintenance, error) {
	query := `
		SELECT m.id, m.asset_id, COALESCE(s.name, ''), m.frequency_amount, m.frequency_unit,
		       m.last_service_date, m.next_service_date
		FROM maintenances m
		LEFT JOIN assets s ON s.id = m.asset_id
		WHERE m.id = $1;
    `

	var m model.Maintenance
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.AssetID, &m.AssetName, &m.FrequencyAmount, &m.Unit, &m.LastServiceDate, &m.NextServiceDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Maintenance{}, fmt.Errorf("maintenance %s: %w", id, ErrTargetNotFound)
		}

		return model.Maintenance{}, fmt.Errorf("failed to get maintenance: %w", err)
	}

	return m, nil
}
