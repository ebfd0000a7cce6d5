package timeentry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationSeconds(t *testing.T) {
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int64
	}{
		{"ninety minutes", start.Add(90 * time.Minute), 5400},
		{"zero length", start, 0},
		{"sub-second truncates", start.Add(1500 * time.Millisecond), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, durationSeconds(start, tt.end))
		})
	}
}
