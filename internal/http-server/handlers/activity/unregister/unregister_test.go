package unregister

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"activitySignup/internal/http-server/handlers/activity/unregister/mocks"
	"activitySignup/internal/lib/logger/handlers/slogdiscard"
	"activitySignup/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnregisterHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		activity       string
		email          string
		mockSetup      func(mock *mocks.StudentRemover)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:     "Success",
			activity: "Chess Club",
			email:    "michael@mergington.edu",
			mockSetup: func(mock *mocks.StudentRemover) {
				mock.On("UnregisterStudent", "Chess Club", "michael@mergington.edu").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Unregistered michael@mergington.edu from Chess Club"}`,
		},
		{
			name:           "Missing activity name",
			activity:       "",
			email:          "student@mergington.edu",
			mockSetup:      func(mock *mocks.StudentRemover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"activity name is required"}`,
		},
		{
			name:           "Missing email",
			activity:       "Chess Club",
			email:          "",
			mockSetup:      func(mock *mocks.StudentRemover) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"detail":`)
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:     "Activity not found",
			activity: "Nonexistent Activity",
			email:    "x@y.edu",
			mockSetup: func(mock *mocks.StudentRemover) {
				mock.On("UnregisterStudent", "Nonexistent Activity", "x@y.edu").
					Return(storage.ErrActivityNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Activity not found"}`,
		},
		{
			name:     "Not signed up",
			activity: "Chess Club",
			email:    "notsignedup@mergington.edu",
			mockSetup: func(mock *mocks.StudentRemover) {
				mock.On("UnregisterStudent", "Chess Club", "notsignedup@mergington.edu").
					Return(storage.ErrNotRegistered)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"Student is not signed up for this activity"}`,
		},
		{
			name:     "Internal server error",
			activity: "Chess Club",
			email:    "student@mergington.edu",
			mockSetup: func(mock *mocks.StudentRemover) {
				mock.On("UnregisterStudent", "Chess Club", "student@mergington.edu").
					Return(errors.New("storage failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"detail":"failed to unregister from activity"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRemover := mocks.NewStudentRemover(t)
			tc.mockSetup(mockRemover)

			handler := New(logger, mockRemover)

			req := httptest.NewRequest(http.MethodDelete, "/unregister?email="+tc.email, nil)

			rctx := chi.NewRouteContext()
			if tc.activity != "" {
				rctx.URLParams.Add("activity", tc.activity)
			}
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestUnregisterThroughRouter(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockRemover := mocks.NewStudentRemover(t)
	mockRemover.On("UnregisterStudent", "Gym Class", "john@mergington.edu").Return(nil)

	router := chi.NewRouter()
	router.Delete("/activities/{activity}/unregister", New(logger, mockRemover))

	req, err := http.NewRequest(http.MethodDelete,
		"/activities/Gym%20Class/unregister?email=john@mergington.edu", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"message":"Unregistered john@mergington.edu from Gym Class"}`,
		rr.Body.String(),
	)
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, "student@mergington.edu", "Math Club")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"message":"Unregistered student@mergington.edu from Math Club"}`,
		rr.Body.String(),
	)
}
