package middleware

import (
	"strings"
	"testing"
)

func TestParseRouteInfo(t *testing.T) {
	tests := []struct {
		path   string
		method string
		module string
		action string
	}{
		{"/api/projects/:id", "PUT", "projects", "Update"},
		{"/api/applications", "POST", "applications", "Create"},
		{"/api/users/:id", "DELETE", "users", "Delete"},
		{"/api/auth/login", "POST", "auth", "Create"},
		{"", "POST", "unknown", "Create"},
	}

	for _, tt := range tests {
		module, action := parseRouteInfo(tt.path, tt.method)
		if module != tt.module || action != tt.action {
			t.Errorf("parseRouteInfo(%q, %q) = (%q, %q), expected (%q, %q)",
				tt.path, tt.method, module, action, tt.module, tt.action)
		}
	}
}

func TestMaskSensitiveFields(t *testing.T) {
	body := `{"email":"a@b.co","password":"hunter2","bio":"hi"}`
	masked := maskSensitiveFields(body)

	if strings.Contains(masked, "hunter2") {
		t.Errorf("password leaked: %s", masked)
	}
	if !strings.Contains(masked, `"password":"***"`) {
		t.Errorf("masked body = %s", masked)
	}
	if !strings.Contains(masked, "a@b.co") {
		t.Error("non-sensitive fields must survive masking")
	}
}

func TestMaskSensitiveFields_NoSensitiveKeys(t *testing.T) {
	body := `{"title":"Website","budget":100}`
	if got := maskSensitiveFields(body); got != body {
		t.Errorf("body without sensitive keys changed: %s", got)
	}
}
