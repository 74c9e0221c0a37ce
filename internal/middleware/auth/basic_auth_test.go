package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedHandler(t *testing.T) (http.Handler, *bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	return BasicAuth("admin", "s3cret")(next), &reached
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	handler, reached := protectedHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/templates", nil)
	req.SetBasicAuth("admin", "s3cret")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, *reached)
}

func TestBasicAuth_WrongCredentials(t *testing.T) {
	cases := []struct {
		name string
		user string
		pass string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong user", "nobody", "s3cret"},
		{"both wrong", "nobody", "wrong"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler, reached := protectedHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/templates", nil)
			req.SetBasicAuth(tc.user, tc.pass)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, *reached)
		})
	}
}

func TestBasicAuth_MissingHeaderChallenges(t *testing.T) {
	handler, reached := protectedHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/templates", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "CheckMaster Templates")
	assert.False(t, *reached)
}
