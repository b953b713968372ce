package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func contextWithRoles(roles ...string) context.Context {
	return context.WithValue(context.Background(), UserRolesKey, roles)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name      string
		userRoles []string
		required  []string
		wantPass  bool
	}{
		{"exact match", []string{"therapist"}, []string{"therapist"}, true},
		{"admin passes any check", []string{"admin"}, []string{"secretary"}, true},
		{"wrong role", []string{"therapist"}, []string{"secretary"}, false},
		{"no roles", nil, []string{"therapist"}, false},
		{"one of several", []string{"secretary"}, []string{"therapist", "secretary"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(contextWithRoles(tt.userRoles...))
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			}

			err := RequireRole(tt.required...)(handler)(c)

			if tt.wantPass && err != nil {
				t.Fatalf("expected pass, got %v", err)
			}
			if !tt.wantPass {
				httpErr, ok := err.(*echo.HTTPError)
				if !ok {
					t.Fatalf("expected HTTPError, got %v", err)
				}
				if httpErr.Code != http.StatusForbidden {
					t.Errorf("expected 403, got %d", httpErr.Code)
				}
			}
		})
	}
}
