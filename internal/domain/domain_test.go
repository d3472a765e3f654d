package domain

import (
	"testing"
)

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{"draft", true},
		{"published", true},
		{"archived", true},
		{"deleted", false},
		{"pending", false},
		{"", false},
		{"DRAFT", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsSortableField(t *testing.T) {
	tests := []struct {
		field string
		valid bool
	}{
		{"pub_date", true},
		{"views", true},
		{"title", true},
		{"password_hash", false},
		{"", false},
		{"VIEWS", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := IsSortableField(tt.field); got != tt.valid {
				t.Errorf("IsSortableField(%q) = %v, want %v", tt.field, got, tt.valid)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{"admin", true},
		{"user", true},
		{"moderator", true},
		{"superuser", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.valid {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestIsPrivileged(t *testing.T) {
	tests := []struct {
		role       string
		privileged bool
	}{
		{RoleAdmin, true},
		{RoleModerator, true},
		{RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			u := User{Role: tt.role}
			if got := u.IsPrivileged(); got != tt.privileged {
				t.Errorf("IsPrivileged() with role %q = %v, want %v", tt.role, got, tt.privileged)
			}
		})
	}
}
