package entity

import "testing"

func TestRoleFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Role
		ok       bool
	}{
		{name: "patient", input: "patient", expected: RolePatient, ok: true},
		{name: "doctor", input: "doctor", expected: RoleDoctor, ok: true},
		{name: "admin", input: "admin", expected: RoleAdmin, ok: true},
		{name: "empty defaults to patient", input: "", expected: RolePatient, ok: true},
		{name: "unknown role", input: "superuser", expected: Role("superuser"), ok: false},
		{name: "case sensitive", input: "Patient", expected: Role("Patient"), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			role, ok := RoleFromString(tt.input)
			if role != tt.expected || ok != tt.ok {
				t.Fatalf("RoleFromString(%q) = (%q, %v), want (%q, %v)", tt.input, role, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestRoleIsValid(t *testing.T) {
	t.Parallel()

	if !RolePatient.IsValid() || !RoleDoctor.IsValid() || !RoleAdmin.IsValid() {
		t.Fatal("known roles must be valid")
	}
	if Role("").IsValid() {
		t.Fatal("empty role must not be valid")
	}
}
