package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Result is the outcome of validating a form draft. It is built fresh on
// every submit attempt.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

// ToResult converts a list of field errors into a Result.
func (v ValidationErrors) ToResult() Result {
	return Result{IsValid: len(v) == 0, Errors: v.ToMap()}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsRequired reports whether value is present and not blank once stringified.
func IsRequired(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return !IsEmpty(v)
	case *string:
		return v != nil && !IsEmpty(*v)
	case fmt.Stringer:
		return !IsEmpty(v.String())
	default:
		return !IsEmpty(fmt.Sprint(v))
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

const dateLayout = "2006-01-02"

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, dateStr)
	return date, err == nil
}

// FormatDate renders t as YYYY-MM-DD in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// TodayDate returns the current local day read from now as YYYY-MM-DD.
func TodayDate(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return FormatDate(now().Local())
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	return slices.Contains(slice, value)
}
