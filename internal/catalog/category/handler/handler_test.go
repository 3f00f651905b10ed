package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/protech-admin/internal/catalog/category"
	mockcategoryhandler "github.com/xw1nchester/protech-admin/internal/catalog/category/handler/mocks"
	"github.com/xw1nchester/protech-admin/internal/handlers"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
	})
}

func TestHandler_updateCategoryHandler(t *testing.T) {
	type mockBehavior func(s *mockcategoryhandler.MockService)

	tests := []struct {
		name               string
		path               string
		inputBody          string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:      "OK with string brand ids",
			path:      "/categories/7",
			inputBody: `{"name":"Drills","brandIds":["3",1]}`,
			mockBehavior: func(s *mockcategoryhandler.MockService) {
				s.EXPECT().
					UpdateItem(gomock.Any(), category.UpdateInput{ID: 7, Name: "Drills", BrandIDs: []int{3, 1}}).
					Return(&category.Category{ID: 7, Name: "Drills", BrandIDs: []int{3, 1}}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:               "Invalid brand id",
			path:               "/categories/7",
			inputBody:          `{"name":"Drills","brandIds":[0]}`,
			mockBehavior:       func(s *mockcategoryhandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:               "Invalid path id",
			path:               "/categories/seven",
			inputBody:          `{"name":"Drills"}`,
			mockBehavior:       func(s *mockcategoryhandler.MockService) {},
			expectedStatusCode: 400,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockcategoryhandler.NewMockService(c)
			tc.mockBehavior(service)

			h := New(
				func(ctx context.Context) (Service, error) { return service, nil },
				handlers.NoConfirm,
				authMiddleware,
				1<<20,
				zap.NewNop(),
			)

			router := chi.NewRouter()
			h.Register(router)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, tc.path, bytes.NewBufferString(tc.inputBody))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}
