package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"bb1b2cf2-cf9d-4f34-b54c-11e1b7591b29",
		"00000000-0000-0000-0000-000000000000",
		"0190b3c2-13f1-7cde-8a5b-1f2a3b4c5d6e",
	}
	invalid := []string{
		"",
		"not-a-uuid",
		"bb1b2cf2-cf9d-4f34-b54c-11e1b7591b2",
		"bb1b2cf2cf9d4f34b54c11e1b7591b29zz",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(2024-02-29) = false, want true")
	}
	if _, ok := IsValidDate("2023-02-29"); ok {
		t.Error("IsValidDate(2023-02-29) = true, want false")
	}
	if _, ok := IsValidDate("29.02.2024"); ok {
		t.Error("IsValidDate(29.02.2024) = true, want false")
	}
}

func TestIsValidDepartmentCode(t *testing.T) {
	valid := []string{"1", "17", "BAR-01", "kitchen_2"}
	invalid := []string{"", "way-too-long-department-code", "code with space"}
	for _, code := range valid {
		if !IsValidDepartmentCode(code) {
			t.Errorf("IsValidDepartmentCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidDepartmentCode(code) {
			t.Errorf("IsValidDepartmentCode(%q) = true, want false", code)
		}
	}
}
