package models

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		wantErr  bool
	}{
		{"ADMIN", RoleAdmin, false},
		{"admin", RoleAdmin, false},
		{" client ", RoleClient, false},
		{"Freelancer", RoleFreelancer, false},
		{"", "", true},
		{"manager", "", true},
		{"ADMINISTRATOR", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if r != tt.expected {
				t.Errorf("ParseRole(%q) = %q, expected %q", tt.input, r, tt.expected)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleClient, RoleFreelancer} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	for _, r := range []Role{"", "admin", "GUEST"} {
		if r.Valid() {
			t.Errorf("%q should not be valid", r)
		}
	}
}
