package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/protech-admin/internal/notification"
	mocknotificationhandler "github.com/xw1nchester/protech-admin/internal/notification/handler/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
	})
}

func newRouter(s Service) *chi.Mux {
	router := chi.NewRouter()
	New(func(ctx context.Context) (Service, error) { return s, nil }, authMiddleware, zap.NewNop()).Register(router)

	return router
}

func TestHandler_streamHandler(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	ch := make(chan notification.Event, 2)
	ch <- notification.Event{Kind: notification.EventNavigate, Route: "login"}
	close(ch)

	cancelled := false

	service := mocknotificationhandler.NewMockService(c)
	service.EXPECT().Subscribe().Return((<-chan notification.Event)(ch), func() { cancelled = true })

	w := httptest.NewRecorder()
	newRouter(service).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/stream", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"route":"login"`)
	assert.True(t, cancelled)
}

func TestHandler_answerConfirmationHandler(t *testing.T) {
	type mockBehavior func(s *mocknotificationhandler.MockService)

	tests := []struct {
		name               string
		inputBody          string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:      "Confirm",
			inputBody: `{"confirmed":true}`,
			mockBehavior: func(s *mocknotificationhandler.MockService) {
				s.EXPECT().Confirm("d-1").Return(nil)
			},
			expectedStatusCode: 204,
		},
		{
			name:      "Cancel",
			inputBody: `{"confirmed":false}`,
			mockBehavior: func(s *mocknotificationhandler.MockService) {
				s.EXPECT().Cancel("d-1").Return(nil)
			},
			expectedStatusCode: 204,
		},
		{
			name:               "Missing answer",
			inputBody:          `{}`,
			mockBehavior:       func(s *mocknotificationhandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:      "Stale dialog",
			inputBody: `{"confirmed":true}`,
			mockBehavior: func(s *mocknotificationhandler.MockService) {
				s.EXPECT().Confirm("d-1").Return(notification.ErrDialogNotFound)
			},
			expectedStatusCode: 404,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mocknotificationhandler.NewMockService(c)
			tc.mockBehavior(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/notifications/confirmations/d-1", bytes.NewBufferString(tc.inputBody))

			newRouter(service).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}

func TestHandler_getStateHandler(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	service := mocknotificationhandler.NewMockService(c)
	service.EXPECT().Snackbar().Return(notification.Snackbar{Show: true, Text: "Item deleted.", Color: notification.ColorSuccess})
	service.EXPECT().ConfirmDialog().Return(notification.ConfirmDialog{})

	w := httptest.NewRecorder()
	newRouter(service).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"text":"Item deleted."`)
}
