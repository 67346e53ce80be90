package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	cases := []struct {
		status Status
		want   bool
	}{
		{StatusPresent, true},
		{StatusAbsent, true},
		{"present", false},
		{"Late", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.status.IsValid(), "status %q", c.status)
	}
}
