package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

// ErrInvalidReminder is returned when a manual reminder fails validation.
var ErrInvalidReminder = errors.New("invalid reminder")

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks
type reminderRepository interface {
	Create(ctx context.Context, reminder model.Reminder) (model.Reminder, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	List(ctx context.Context, filter model.ReminderFilter) (model.ReminderPage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReminderStatus) error
	MarkOverdue(ctx context.Context, before time.Time) (int64, error)
}

type deliveryTracker interface {
	MarkAsSentByReminder(ctx context.Context, reminderID uuid.UUID) error
}

// Service handles manually managed reminders and the overdue sweep.
type Service struct {
	repo         reminderRepository
	deliveries   deliveryTracker
	overdueGrace time.Duration
}

// NewService creates a reminder service. Pending reminders older than overdueGrace are swept to OVERDUE.
func NewService(repo reminderRepository, deliveries deliveryTracker, overdueGrace time.Duration) *Service {
	return &Service{repo: repo, deliveries: deliveries, overdueGrace: overdueGrace}
}

// Create stores a manual reminder.
func (s *Service) Create(ctx context.Context, reminder model.Reminder) (model.Reminder, error) {
	reminder.Status = model.ReminderPending
	reminder.SourceType = model.SourceManual
	reminder.ReminderRuleID = nil

	if reminder.TargetType == "" {
		reminder.TargetType = model.TargetSystem
	}
	if reminder.Priority == "" {
		reminder.Priority = model.PriorityMedium
	}

	switch {
	case reminder.Type == model.ReminderAssignment && (reminder.AssignmentID == nil || reminder.MaintenanceID != nil):
		return model.Reminder{}, fmt.Errorf("%w: assignment reminder needs assignment_id only", ErrInvalidReminder)
	case reminder.Type == model.ReminderMaintenance && (reminder.MaintenanceID == nil || reminder.AssignmentID != nil):
		return model.Reminder{}, fmt.Errorf("%w: maintenance reminder needs maintenance_id only", ErrInvalidReminder)
	case reminder.Type != model.ReminderAssignment && reminder.Type != model.ReminderMaintenance:
		return model.Reminder{}, fmt.Errorf("%w: unknown type %q", ErrInvalidReminder, reminder.Type)
	case reminder.Channel != "" && !reminder.Channel.Valid():
		return model.Reminder{}, fmt.Errorf("%w: unknown channel %q", ErrInvalidReminder, reminder.Channel)
	}

	created, err := s.repo.Create(ctx, reminder)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}

	return created, nil
}

// Get returns one reminder.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	reminder, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("get reminder %s: %w", id, err)
	}

	return reminder, nil
}

// List returns one page of reminders.
func (s *Service) List(ctx context.Context, filter model.ReminderFilter) (model.ReminderPage, error) {
	if filter.Status != "" && filter.Status != model.ReminderPending &&
		filter.Status != model.ReminderSent && filter.Status != model.ReminderOverdue {
		return model.ReminderPage{}, fmt.Errorf("%w: unknown status %q", ErrInvalidReminder, filter.Status)
	}

	page, err := s.repo.List(ctx, filter)
	if err != nil {
		return model.ReminderPage{}, fmt.Errorf("list reminders: %w", err)
	}

	return page, nil
}

// MarkSent marks a reminder as sent by hand, together with all of its deliveries.
func (s *Service) MarkSent(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	if err := s.repo.UpdateStatus(ctx, id, model.ReminderSent); err != nil {
		return model.Reminder{}, fmt.Errorf("mark reminder %s sent: %w", id, err)
	}

	if err := s.deliveries.MarkAsSentByReminder(ctx, id); err != nil {
		return model.Reminder{}, err
	}

	return s.Get(ctx, id)
}

// SweepOverdue flags pending reminders that stayed unsent past the grace period.
func (s *Service) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.repo.MarkOverdue(ctx, now.Add(-s.overdueGrace))
	if err != nil {
		return 0, fmt.Errorf("sweep overdue reminders: %w", err)
	}

	if n > 0 {
		zlog.Logger.Info().Int64("count", n).Msg("reminders marked overdue")
	}

	return n, nil
}
