package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nkarpova/taskboard/internal/jwt"
	"github.com/nkarpova/taskboard/internal/middlewares"
	"github.com/nkarpova/taskboard/internal/models"
	"github.com/nkarpova/taskboard/internal/services"
)

// authedRequest builds a request carrying verified claims, as the auth
// middleware would after token validation.
func authedRequest(method, target, body string, userID int64) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := middlewares.SetClaimsToContext(req.Context(), &jwt.Claims{
		UserID: userID,
		Email:  "alice@example.com",
	})
	return req.WithContext(ctx)
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		authed       bool
		mockSetup    func(m *MockUserGetter)
		expectedCode int
	}{
		{
			name:   "success",
			authed: true,
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(1)).
					Return(&models.UserDB{ID: 1, Email: "alice@example.com", Name: "Alice"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "user deleted since token issued",
			authed: true,
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(1)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "no claims in context",
			authed:       false,
			mockSetup:    func(m *MockUserGetter) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "internal server error",
			authed: true,
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetUser(gomock.Any(), int64(1)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			tt.mockSetup(mockSvc)

			var req *http.Request
			if tt.authed {
				req = authedRequest(http.MethodGet, "/api/users/me", "", 1)
			} else {
				req = httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			}
			rec := httptest.NewRecorder()

			NewMeHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var body map[string]any
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				user := body["user"].(map[string]any)
				assert.Equal(t, "Alice", user["name"])
			}
		})
	}
}
