package validator

import (
	"testing"
	"time"
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

func TestIsRequired(t *testing.T) {
	blank := "  "
	filled := "E1"
	var nilPtr *string
	cases := []struct {
		name  string
		input any
		want  bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"whitespace", " \t ", false},
		{"value", "x", true},
		{"padded value", "  x  ", true},
		{"nil pointer", nilPtr, false},
		{"blank pointer", &blank, false},
		{"pointer", &filled, true},
		{"number", 42, true},
	}
	for _, c := range cases {
		if got := IsRequired(c.input); got != c.want {
			t.Errorf("IsRequired(%s) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd", "john@example.com", "jane@x.com"}
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", "", "john@@x", "a@b.c1"}
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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestTodayDate(t *testing.T) {
	fixed := time.Date(2024, time.March, 7, 23, 15, 0, 0, time.Local)
	got := TodayDate(func() time.Time { return fixed })
	if got != "2024-03-07" {
		t.Errorf("TodayDate() = %q, want %q", got, "2024-03-07")
	}

	if got := FormatDate(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)); got != "2024-12-01" {
		t.Errorf("FormatDate() = %q, want zero-padded %q", got, "2024-12-01")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "department", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; department: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "department", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "department": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
