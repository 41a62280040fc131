package rule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

// ErrInvalidRule is returned when a rule fails validation.
var ErrInvalidRule = errors.New("invalid reminder rule")

const fallbackAssetName = "Activo"

//go:generate mockgen -source=service.go -destination=../../mocks/service/rule/mock.go -package=mocks
type ruleRepository interface {
	Create(ctx context.Context, rule model.ReminderRule) (model.ReminderRule, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.ReminderRule, error)
	Update(ctx context.Context, rule model.ReminderRule) (model.ReminderRule, error)
	Delete(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	List(ctx context.Context, entityType model.TargetEntityType, entityID *uuid.UUID) ([]model.ReminderRule, error)
	ListActiveByTarget(ctx context.Context, entityType model.TargetEntityType, entityID uuid.UUID) ([]model.ReminderRule, error)
}

type reminderRepository interface {
	ReplacePendingByRule(ctx context.Context, reminder model.Reminder) (model.Reminder, []uuid.UUID, error)
}

type targetRepository interface {
	GetAssignment(ctx context.Context, id uuid.UUID) (model.Assignment, error)
	GetMaintenance(ctx context.Context, id uuid.UUID) (model.Maintenance, error)
}

type deliveryCanceller interface {
	DeleteUnsentByReminders(ctx context.Context, reminderIDs []uuid.UUID) (int64, error)
}

// Service is the rule engine: it keeps every active rule's reminder in line with its target's due date.
type Service struct {
	rules          ruleRepository
	reminders      reminderRepository
	targets        targetRepository
	deliveries     deliveryCanceller
	cancelInFlight bool
	now            func() time.Time
}

// NewService creates a rule engine.
//
// With cancelInFlight set, regeneration also drops the unsent deliveries of the reminders it replaces.
func NewService(
	rules ruleRepository,
	reminders reminderRepository,
	targets targetRepository,
	deliveries deliveryCanceller,
	cancelInFlight bool,
) *Service {
	return &Service{
		rules:          rules,
		reminders:      reminders,
		targets:        targets,
		deliveries:     deliveries,
		cancelInFlight: cancelInFlight,
		now:            time.Now,
	}
}

func validate(rule model.ReminderRule) error {
	var problems []string

	if rule.OffsetValue < 1 {
		problems = append(problems, "offset_value must be at least 1")
	}

	switch rule.TargetEntityType {
	case model.TargetEntityAssignment, model.TargetEntityMaintenance:
	default:
		problems = append(problems, fmt.Sprintf("unknown target_entity_type %q", rule.TargetEntityType))
	}

	switch rule.OffsetUnit {
	case model.OffsetDay, model.OffsetWeek, model.OffsetMonth:
	default:
		problems = append(problems, fmt.Sprintf("unknown offset_unit %q", rule.OffsetUnit))
	}

	switch rule.TargetType {
	case model.TargetSystem, model.TargetContact, model.TargetBoth:
	default:
		problems = append(problems, fmt.Sprintf("unknown target_type %q", rule.TargetType))
	}

	switch rule.Priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
	default:
		problems = append(problems, fmt.Sprintf("unknown priority %q", rule.Priority))
	}

	if !rule.Channel.Valid() {
		problems = append(problems, fmt.Sprintf("unknown channel %q", rule.Channel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRule, strings.Join(problems, "; "))
	}

	return nil
}

func applyDefaults(rule *model.ReminderRule) {
	if rule.TargetType == "" {
		rule.TargetType = model.TargetSystem
	}
	if rule.Priority == "" {
		rule.Priority = model.PriorityMedium
	}
	if rule.Channel == "" {
		rule.Channel = model.ChannelInApp
	}
}

// CreateRule validates and stores a rule, then generates its reminder.
// The caller decides Active; the HTTP layer defaults it to true.
func (s *Service) CreateRule(ctx context.Context, rule model.ReminderRule) (model.ReminderRule, error) {
	applyDefaults(&rule)
	if err := validate(rule); err != nil {
		return model.ReminderRule{}, err
	}

	created, err := s.rules.Create(ctx, rule)
	if err != nil {
		return model.ReminderRule{}, fmt.Errorf("create rule: %w", err)
	}

	if _, err := s.generate(ctx, created); err != nil {
		return model.ReminderRule{}, err
	}

	return created, nil
}

// UpdateRule applies patch to a rule and regenerates its reminder.
func (s *Service) UpdateRule(ctx context.Context, id uuid.UUID, patch model.RulePatch) (model.ReminderRule, error) {
	rule, err := s.GetRule(ctx, id)
	if err != nil {
		return model.ReminderRule{}, err
	}

	patch.Apply(&rule)
	if err := validate(rule); err != nil {
		return model.ReminderRule{}, err
	}

	updated, err := s.rules.Update(ctx, rule)
	if err != nil {
		return model.ReminderRule{}, fmt.Errorf("update rule %s: %w", id, err)
	}

	if _, err := s.generate(ctx, updated); err != nil {
		return model.ReminderRule{}, err
	}

	return updated, nil
}

// DeleteRule removes a rule together with its pending reminder.
// SENT and OVERDUE reminders stay as history with their rule reference cleared.
func (s *Service) DeleteRule(ctx context.Context, id uuid.UUID) error {
	removed, err := s.rules.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete rule %s: %w", id, err)
	}

	if err := s.cancelDeliveries(ctx, id, removed); err != nil {
		return err
	}

	zlog.Logger.Info().Str("rule_id", id.String()).Int("reminders", len(removed)).Msg("reminder rule deleted")

	return nil
}

// GetRule returns one rule.
func (s *Service) GetRule(ctx context.Context, id uuid.UUID) (model.ReminderRule, error) {
	rule, err := s.rules.GetByID(ctx, id)
	if err != nil {
		return model.ReminderRule{}, fmt.Errorf("get rule %s: %w", id, err)
	}

	return rule, nil
}

// ListRules returns the rules, optionally narrowed to one target entity.
func (s *Service) ListRules(ctx context.Context, entityType model.TargetEntityType, entityID *uuid.UUID) ([]model.ReminderRule, error) {
	rules, err := s.rules.List(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	return rules, nil
}

// GeneratePreview returns the dates a rule would produce without persisting anything.
func (s *Service) GeneratePreview(ctx context.Context, id uuid.UUID) (model.RulePreview, error) {
	rule, err := s.GetRule(ctx, id)
	if err != nil {
		return model.RulePreview{}, err
	}

	t, err := s.resolveTarget(ctx, rule)
	if err != nil {
		return model.RulePreview{}, err
	}

	return model.RulePreview{DueDate: t.due, ScheduledDate: rule.ScheduledDate(t.due)}, nil
}

// GenerateFromRule replaces the pending reminder of a rule with a fresh one.
// An inactive rule generates nothing and returns a nil reminder.
func (s *Service) GenerateFromRule(ctx context.Context, id uuid.UUID) (*model.Reminder, error) {
	rule, err := s.GetRule(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.generate(ctx, rule)
}

// RegenerateForTarget regenerates every active rule bound to a target entity.
// It is called whenever the assignment or maintenance changes.
func (s *Service) RegenerateForTarget(ctx context.Context, entityType model.TargetEntityType, entityID uuid.UUID) ([]model.Reminder, error) {
	rules, err := s.rules.ListActiveByTarget(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list rules of %s %s: %w", entityType, entityID, err)
	}

	reminders := make([]model.Reminder, 0, len(rules))
	for _, rule := range rules {
		reminder, err := s.generate(ctx, rule)
		if err != nil {
			return nil, err
		}
		if reminder != nil {
			reminders = append(reminders, *reminder)
		}
	}

	return reminders, nil
}

func (s *Service) generate(ctx context.Context, rule model.ReminderRule) (*model.Reminder, error) {
	if !rule.Active {
		return nil, nil
	}

	t, err := s.resolveTarget(ctx, rule)
	if err != nil {
		return nil, err
	}

	message := t.message
	if rule.MessageTemplate != nil && strings.TrimSpace(*rule.MessageTemplate) != "" {
		message = *rule.MessageTemplate
	}

	ruleID := rule.ID
	reminder := model.Reminder{
		Message:        message,
		ScheduledDate:  rule.ScheduledDate(t.due),
		Status:         model.ReminderPending,
		SourceType:     model.SourceRule,
		Type:           t.reminderType,
		TargetType:     rule.TargetType,
		TargetID:       t.recipient,
		Priority:       rule.Priority,
		Channel:        rule.Channel,
		ReminderRuleID: &ruleID,
		AssignmentID:   t.assignmentID,
		MaintenanceID:  t.maintenanceID,
	}

	created, replaced, err := s.reminders.ReplacePendingByRule(ctx, reminder)
	if err != nil {
		return nil, fmt.Errorf("replace reminder of rule %s: %w", rule.ID, err)
	}

	if err := s.cancelDeliveries(ctx, rule.ID, replaced); err != nil {
		return nil, err
	}

	zlog.Logger.Info().
		Str("rule_id", rule.ID.String()).
		Str("reminder_id", created.ID.String()).
		Int("replaced", len(replaced)).
		Time("scheduled_date", created.ScheduledDate).
		Msg("reminder generated from rule")

	return &created, nil
}

// cancelDeliveries drops the unsent deliveries of reminders a rule no longer owns, when enabled.
func (s *Service) cancelDeliveries(ctx context.Context, ruleID uuid.UUID, reminderIDs []uuid.UUID) error {
	if !s.cancelInFlight || len(reminderIDs) == 0 {
		return nil
	}

	n, err := s.deliveries.DeleteUnsentByReminders(ctx, reminderIDs)
	if err != nil {
		return fmt.Errorf("cancel deliveries of rule %s: %w", ruleID, err)
	}

	zlog.Logger.Info().Str("rule_id", ruleID.String()).Int64("deliveries", n).Msg("cancelled unsent deliveries of dropped reminders")

	return nil
}

// target is what a rule needs to know about its entity.
type target struct {
	due           time.Time
	reminderType  model.ReminderType
	recipient     uuid.UUID
	assignmentID  *uuid.UUID
	maintenanceID *uuid.UUID
	message       string
}

func assetName(name string) string {
	if name == "" {
		return fallbackAssetName
	}

	return name
}

// formatDate renders d the way the default messages show dates (day/month/year).
func formatDate(d time.Time) string {
	return d.Format("2/1/2006")
}

func (s *Service) resolveTarget(ctx context.Context, rule model.ReminderRule) (target, error) {
	switch rule.TargetEntityType {
	case model.TargetEntityAssignment:
		a, err := s.targets.GetAssignment(ctx, rule.TargetEntityID)
		if err != nil {
			return target{}, fmt.Errorf("get target of rule %s: %w", rule.ID, err)
		}

		due := a.Due()
		id := a.ID

		return target{
			due:          due,
			reminderType: model.ReminderAssignment,
			recipient:    a.AssigneeID,
			assignmentID: &id,
			message: fmt.Sprintf("Recordatorio: la asignacion del activo %q vence el %s.",
				assetName(a.AssetName), formatDate(due)),
		}, nil
	case model.TargetEntityMaintenance:
		m, err := s.targets.GetMaintenance(ctx, rule.TargetEntityID)
		if err != nil {
			return target{}, fmt.Errorf("get target of rule %s: %w", rule.ID, err)
		}

		due := m.Due(s.now())
		id := m.ID

		return target{
			due:           due,
			reminderType:  model.ReminderMaintenance,
			recipient:     m.AssetID,
			maintenanceID: &id,
			message: fmt.Sprintf("Recordatorio: el mantenimiento de %q vence el %s.",
				assetName(m.AssetName), formatDate(due)),
		}, nil
	default:
		return target{}, fmt.Errorf("%w: unknown target_entity_type %q", ErrInvalidRule, rule.TargetEntityType)
	}
}
