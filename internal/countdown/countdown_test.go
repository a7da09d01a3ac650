package countdown

import (
	"math/rand"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	deadline := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want domain.TimeLeft
	}{
		{name: "at deadline", now: deadline, want: domain.TimeLeft{}},
		{name: "after deadline", now: deadline.Add(time.Hour), want: domain.TimeLeft{}},
		{name: "three days", now: deadline.Add(-72 * time.Hour), want: domain.TimeLeft{Days: 3}},
		{
			name: "mixed units",
			now:  deadline.Add(-(26*time.Hour + 3*time.Minute + 4*time.Second)),
			want: domain.TimeLeft{Days: 1, Hours: 2, Minutes: 3, Seconds: 4},
		},
		{
			name: "sub-second remainder is dropped",
			now:  deadline.Add(-(59*time.Second + 999*time.Millisecond)),
			want: domain.TimeLeft{Seconds: 59},
		},
		{name: "less than a second", now: deadline.Add(-400 * time.Millisecond), want: domain.TimeLeft{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(deadline, tt.now))
		})
	}
}

func TestCompute_TotalSecondsMatchesFlooredDelta(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	deadline := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		delta := time.Duration(rnd.Int63n(int64(400*24*time.Hour))) + time.Millisecond
		now := deadline.Add(-delta)

		left := Compute(deadline, now)

		assert.Equal(t, delta.Milliseconds()/1000, left.TotalSeconds(), "delta %s", delta)
		assert.Less(t, left.Hours, int64(24))
		assert.Less(t, left.Minutes, int64(60))
		assert.Less(t, left.Seconds, int64(60))
	}
}
