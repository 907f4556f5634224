package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "(555) 123-4567", want: "+15551234567"},
		{in: "+1 555 123 4567", want: "+15551234567"},
		{in: "15551234567", want: "+15551234567"},
		{in: "555-1234", wantErr: true},
		{in: "25551234567", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizePhone(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCustomer_FindJobAndActive(t *testing.T) {
	now := time.Now().UTC()
	c := Customer{ID: "c-1", Jobs: []Job{
		{ID: "j-1", Status: JobStatusCompleted, CreatedAt: now},
		{ID: "j-2", Status: JobStatusPending, CreatedAt: now},
	}}

	assert.Equal(t, 1, c.FindJob("j-2"))
	assert.Equal(t, -1, c.FindJob("missing"))
	assert.True(t, c.HasActiveJobs())

	c.Jobs[1].Status = JobStatusCompleted
	assert.False(t, c.HasActiveJobs())
}

func TestWaitTimeEstimate_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewWaitTimeEstimate("c-1", []string{"Oil Change"}, 30, now)

	assert.Equal(t, now.Add(7*24*time.Hour), e.ExpiresAt)
	assert.False(t, e.IsExpired(now.Add(6*24*time.Hour)))
	assert.True(t, e.IsExpired(now.Add(7*24*time.Hour)))
	assert.False(t, WaitTimeEstimate{}.IsExpired(now))
}
