package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/mesto-api/internal/mocks"
	"github.com/phrazzld/mesto-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID primitive.ObjectID
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			middleware := NewAuthMiddleware(jwtService)

			var capturedUserID primitive.ObjectID
			var nextCalled bool
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if id, ok := GetUserID(r); ok {
					capturedUserID = id
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				require.True(t, nextCalled, "next handler should run for valid tokens")
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			} else {
				assert.False(t, nextCalled, "next handler must not run on auth failure")
				assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
			}
		})
	}
}
