package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prajapat/featuresgym-sub010/internal/membership"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) SubmitSchedule(ctx context.Context, userID int, req SubmitRequest) (*SubmitResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SubmitResult), args.Error(1)
}

func (m *MockService) GetUserEntries(ctx context.Context, userID int) ([]Entry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockService) GetEntriesByGym(ctx context.Context, gymID int) ([]Entry, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func newTestRouter(svc Service, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set("user_id", userID)
		}
	})
	r.POST("/schedules", h.SubmitSchedule)
	r.GET("/schedules", h.ListMySchedules)
	r.GET("/admin/gyms/:gymID/schedules", h.ListGymSchedules)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		MembershipID:      42,
		GymID:             3,
		ActivityType:      "yoga",
		StartDate:         "2026-09-01",
		EndDate:           "2026-09-03",
		TimeSlot:          "morning",
		RecurrencePattern: "daily",
	}
}

func TestSubmitScheduleHandlerCreated(t *testing.T) {
	svc := &MockService{}
	svc.On("SubmitSchedule", mock.Anything, 7, validRequest()).Return(&SubmitResult{
		State:      StateCommitted,
		CreatedIDs: []int{101, 102, 103},
	}, nil)

	w := postJSON(t, newTestRouter(svc, 7), "/schedules", validRequest())

	assert.Equal(t, http.StatusCreated, w.Code)

	var res SubmitResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, StateCommitted, res.State)
	assert.Equal(t, []int{101, 102, 103}, res.CreatedIDs)
	svc.AssertExpectations(t)
}

func TestSubmitScheduleHandlerUnauthenticated(t *testing.T) {
	svc := &MockService{}

	w := postJSON(t, newTestRouter(svc, 0), "/schedules", validRequest())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "SubmitSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitScheduleHandlerMissingFields(t *testing.T) {
	svc := &MockService{}

	w := postJSON(t, newTestRouter(svc, 7), "/schedules", gin.H{"gym_id": 3})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SubmitSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitScheduleHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", validationErr("end date precedes start date"), http.StatusBadRequest},
		{"not owner", ErrNotOwner, http.StatusForbidden},
		{"wrong gym", membership.ErrWrongGym, http.StatusForbidden},
		{"tier price", membership.ErrInsufficientTierPrice, http.StatusForbidden},
		{"not bookable", membership.ErrMembershipNotBookable, http.StatusForbidden},
		{"day budget", membership.ErrInsufficientDailyBudget, http.StatusConflict},
		{"capacity", ErrCapacityExceeded, http.StatusConflict},
		{"membership missing", membership.ErrNotFound, http.StatusNotFound},
		{"persistence", persistenceErr(assert.AnError), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockService{}
			svc.On("SubmitSchedule", mock.Anything, 7, mock.Anything).Return(nil, tc.err)

			w := postJSON(t, newTestRouter(svc, 7), "/schedules", validRequest())

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestListMySchedules(t *testing.T) {
	svc := &MockService{}
	svc.On("GetUserEntries", mock.Anything, 7).Return([]Entry{{ID: 1, UserID: 7}}, nil)

	r := newTestRouter(svc, 7)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedules", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var entries []Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].UserID)
}

func TestListGymSchedules(t *testing.T) {
	svc := &MockService{}
	svc.On("GetEntriesByGym", mock.Anything, 3).Return([]Entry{{ID: 1, GymID: 3}}, nil)

	r := newTestRouter(svc, 7)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/gyms/3/schedules", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListGymSchedulesBadID(t *testing.T) {
	svc := &MockService{}

	r := newTestRouter(svc, 7)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/gyms/abc/schedules", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetEntriesByGym", mock.Anything, mock.Anything)
}
