package reminder

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

var columns = []string{
	"id", "message", "scheduled_date", "status", "source_type", "type", "target_type", "target_id", "priority",
	"channel", "reminder_rule_id", "assignment_id", "maintenance_id", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	ruleID := uuid.New()
	maintenanceID := uuid.New()
	now := time.Now()

	rem := model.Reminder{
		Message:        "service due",
		ScheduledDate:  now,
		Status:         model.ReminderPending,
		SourceType:     model.SourceRule,
		Type:           model.ReminderMaintenance,
		TargetType:     model.TargetSystem,
		TargetID:       uuid.New(),
		Priority:       model.PriorityMedium,
		ReminderRuleID: &ruleID,
		MaintenanceID:  &maintenanceID,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reminders`)).
		WithArgs(
			rem.Message, rem.ScheduledDate, rem.Status, rem.SourceType, rem.Type,
			rem.TargetType, rem.TargetID, rem.Priority, nil,
			ruleID, nil, maintenanceID,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	created, err := repo.Create(context.Background(), rem)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	assignmentID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`FROM reminders WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			id, "return laptop", now, "SENT", "MANUAL", "ASSIGNMENT", "CONTACT", uuid.New(), "HIGH",
			"", nil, assignmentID, nil, now, now,
		))

	rem, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, rem.IsSent())
	assert.Equal(t, model.Channel(""), rem.Channel)
	assert.Nil(t, rem.ReminderRuleID)
	require.NotNil(t, rem.AssignmentID)
	assert.Equal(t, assignmentID, *rem.AssignmentID)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(`FROM reminders WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrReminderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDue(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status IN ('PENDING', 'OVERDUE') AND scheduled_date <= $1 ORDER BY scheduled_date;`)).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.New(), "a", now.Add(-2*time.Hour), "OVERDUE", "RULE", "MAINTENANCE", "SYSTEM", uuid.New(), "LOW",
				"SMS", uuid.New(), nil, uuid.New(), now, now).
			AddRow(uuid.New(), "b", now.Add(-time.Hour), "PENDING", "MANUAL", "ASSIGNMENT", "SYSTEM", uuid.New(), "LOW",
				"", nil, uuid.New(), nil, now, now))

	due, err := repo.FindDue(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, model.ChannelSMS, due[0].Channel)
	assert.Equal(t, model.ReminderPending, due[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM reminders`)).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.FindDue(context.Background(), now)
	assert.Error(t, err)
}

func TestList_Filters(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	sent := false
	filter := model.ReminderFilter{Status: model.ReminderOverdue, IsSent: &sent, Page: 2, PageSize: 5}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM reminders WHERE status = $1 AND status <> $2;`)).
		WithArgs(model.ReminderOverdue, model.ReminderSent).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY scheduled_date DESC LIMIT $3 OFFSET $4;`)).
		WithArgs(model.ReminderOverdue, model.ReminderSent, 5, 5).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.New(), "a", now, "OVERDUE", "MANUAL", "ASSIGNMENT", "SYSTEM", uuid.New(), "LOW",
				"", nil, uuid.New(), nil, now, now))

	page, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, model.ReminderOverdue, page.Items[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_SentOnly(t *testing.T) {
	repo, mock := setupMockDB(t)

	sent := true

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM reminders WHERE status = $1;`)).
		WithArgs(model.ReminderSent).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $2 OFFSET $3;`)).
		WithArgs(model.ReminderSent, 20, 0).
		WillReturnRows(sqlmock.NewRows(columns))

	page, err := repo.List(context.Background(), model.ReminderFilter{IsSent: &sent, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM reminders;`)).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.List(context.Background(), model.ReminderFilter{Page: 1, PageSize: 20})
	assert.Error(t, err)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE reminders
		SET status = $1, updated_at = NOW()
		WHERE id = $2;
    `)).
		WithArgs(model.ReminderSent, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateStatus(context.Background(), id, model.ReminderSent))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reminders`)).
		WithArgs(model.ReminderOverdue, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), id, model.ReminderOverdue), ErrReminderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePendingByRule(t *testing.T) {
	repo, mock := setupMockDB(t)

	ruleID := uuid.New()
	deleted := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE reminder_rule_id = $1 AND source_type = 'RULE' AND status = 'PENDING' RETURNING id;`)).
		WithArgs(ruleID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(deleted))

	ids, err := repo.DeletePendingByRule(context.Background(), ruleID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{deleted}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplacePendingByRule(t *testing.T) {
	repo, mock := setupMockDB(t)

	ruleID := uuid.New()
	old := uuid.New()
	id := uuid.New()
	now := time.Now()
	rem := model.Reminder{
		Message:        "service due",
		ScheduledDate:  now,
		Status:         model.ReminderPending,
		SourceType:     model.SourceRule,
		Type:           model.ReminderMaintenance,
		ReminderRuleID: &ruleID,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM reminders`)).
		WithArgs(ruleID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(old))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reminders`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))
	mock.ExpectCommit()

	created, replaced, err := repo.ReplacePendingByRule(context.Background(), rem)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, []uuid.UUID{old}, replaced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplacePendingByRule_InsertFailsRollsBack(t *testing.T) {
	repo, mock := setupMockDB(t)

	ruleID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM reminders`)).
		WithArgs(ruleID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reminders`)).
		WillReturnError(errors.New("check constraint violated"))
	mock.ExpectRollback()

	_, _, err := repo.ReplacePendingByRule(context.Background(), model.Reminder{ReminderRuleID: &ruleID})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	_, _, err = repo.ReplacePendingByRule(context.Background(), model.Reminder{})
	assert.Error(t, err)
}

func TestMarkOverdue(t *testing.T) {
	repo, mock := setupMockDB(t)

	cutoff := time.Now().Add(-24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(`SET status = 'OVERDUE', updated_at = NOW() WHERE status = 'PENDING' AND scheduled_date < $1;`)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.MarkOverdue(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
