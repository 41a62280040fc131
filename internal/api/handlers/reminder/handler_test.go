package reminder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/reminder-dispatcher/internal/api/dto"
	mocks "github.com/aliskhannn/reminder-dispatcher/internal/mocks/api/handlers/reminder"
	"github.com/aliskhannn/reminder-dispatcher/internal/model"
	reminderrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/reminder"
	remindersvc "github.com/aliskhannn/reminder-dispatcher/internal/service/reminder"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockreminderService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockreminderService(ctrl)
	return NewHandler(mockService, validator.New()), mockService
}

func createRequest() dto.CreateReminderRequest {
	maintenanceID := uuid.New()

	return dto.CreateReminderRequest{
		Message:       "Cambio de aceite",
		ScheduledDate: time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC),
		Type:          "MAINTENANCE",
		TargetID:      uuid.New(),
		MaintenanceID: &maintenanceID,
	}
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	body, _ := json.Marshal(createRequest())
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/reminders", bytes.NewReader(body))

	mockService.EXPECT().
		Create(gomock.Any(), gomock.AssignableToTypeOf(model.Reminder{})).
		Return(model.Reminder{ID: uuid.New(), Status: model.ReminderPending}, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"is_sent":false`)
}

func TestHandler_Create_RejectedByService(t *testing.T) {
	handler, mockService := setupHandler(t)

	body, _ := json.Marshal(createRequest())
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/reminders", bytes.NewReader(body))

	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(model.Reminder{}, fmt.Errorf("%w: maintenance reminder needs maintenance_id only", remindersvc.ErrInvalidReminder))

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Create_MissingMessage(t *testing.T) {
	handler, _ := setupHandler(t)

	req := createRequest()
	req.Message = ""
	body, _ := json.Marshal(req)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/reminders", bytes.NewReader(body))

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/reminders/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().Get(gomock.Any(), id).
		Return(model.Reminder{}, fmt.Errorf("get reminder %s: %w", id, reminderrepo.ErrReminderNotFound))

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MarkSent(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/reminders/"+id.String()+"/sent", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().MarkSent(gomock.Any(), id).
		Return(model.Reminder{ID: id, Status: model.ReminderSent}, nil)

	handler.MarkSent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_sent":true`)
}

func TestHandler_List_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/reminders?sent=false&status=OVERDUE&page=2&page_size=10", nil)

	mockService.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter model.ReminderFilter) (model.ReminderPage, error) {
			assert.Equal(t, model.ReminderOverdue, filter.Status)
			if assert.NotNil(t, filter.IsSent) {
				assert.False(t, *filter.IsSent)
			}
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, 10, filter.PageSize)

			return model.ReminderPage{Items: []model.Reminder{{ID: uuid.New(), Status: model.ReminderOverdue}}, Total: 11}, nil
		})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":11`)
	assert.Contains(t, w.Body.String(), `"is_sent":false`)
}

func TestHandler_List_InvalidStatus(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/reminders?status=ARCHIVED", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
