package models

import "testing"

func TestParseApplicationStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected ApplicationStatus
		wantErr  bool
	}{
		{"PENDING", StatusPending, false},
		{"pending", StatusPending, false},
		{" approved ", StatusApproved, false},
		{"Rejected", StatusRejected, false},
		{"", "", true},
		{"CANCELLED", "", true},
		{"APPROVE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			st, err := ParseApplicationStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseApplicationStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if st != tt.expected {
				t.Errorf("ParseApplicationStatus(%q) = %q, expected %q", tt.input, st, tt.expected)
			}
		})
	}
}

func TestApplicationStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Error("PENDING should not be terminal")
	}
	if !StatusApproved.Terminal() {
		t.Error("APPROVED should be terminal")
	}
	if !StatusRejected.Terminal() {
		t.Error("REJECTED should be terminal")
	}
}
