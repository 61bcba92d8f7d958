package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "—"},
		{"2024-03-01T00:00:00", "01/03/2024"},
		{"2024-12-31T23:59:59", "31/12/2024"},
		{"2024-03-01T10:00:00.123456", "01/03/2024"},
		{"2024-03-01T10:00:00Z", "01/03/2024"},
		{"2024-03-01T22:00:00-03:00", "01/03/2024"},
		{"2024-03-01T10:00", "01/03/2024"},
		{"01/03/2024 10:00", "01/03/2024"},
		{"01/03/2024", "01/03/2024"},
		{"garbage value", "garbage"},
		{"NotADateT", "NotADateT"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "7", FormatCount(7))
	assert.Equal(t, "1.234", FormatCount(1234))
	assert.Equal(t, "1.000.000", FormatCount(1000000))
}
