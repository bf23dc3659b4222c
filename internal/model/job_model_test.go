package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDeadlineDerivations(t *testing.T) {
	today := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	date := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name     string
		job      Job
		isActive bool
		days     *int
	}{
		{
			name:     "open with future deadline",
			job:      Job{Status: JobStatusOpen, Deadline: date(2026, 9, 10)},
			isActive: true,
			days:     intPtr(10),
		},
		{
			name:     "deadline today still active",
			job:      Job{Status: JobStatusOpen, Deadline: date(2026, 8, 31)},
			isActive: true,
			days:     intPtr(0),
		},
		{
			name:     "expired yesterday reads inactive but days floor at zero",
			job:      Job{Status: JobStatusOpen, Deadline: date(2026, 8, 30)},
			isActive: false,
			days:     intPtr(0),
		},
		{
			name:     "paused is never active",
			job:      Job{Status: JobStatusPaused, Deadline: date(2026, 9, 10)},
			isActive: false,
			days:     intPtr(10),
		},
		{
			name:     "no deadline",
			job:      Job{Status: JobStatusOpen},
			isActive: false,
			days:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isActive, tt.job.IsActive(today))
			got := tt.job.DaysUntilDeadline(today)
			if tt.days == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.days, *got)
			}
		})
	}
}

func intPtr(i int) *int {
	return &i
}
