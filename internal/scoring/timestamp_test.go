package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindow_Contains(t *testing.T) {
	const now int64 = 1700000000

	tests := []struct {
		name string
		ts   int64
		want bool
	}{
		{name: "301s old", ts: now - 301, want: false},
		{name: "300s old", ts: now - 300, want: true},
		{name: "299s old", ts: now - 299, want: true},
		{name: "now", ts: now, want: true},
		{name: "29s ahead", ts: now + 29, want: true},
		{name: "30s ahead", ts: now + 30, want: true},
		{name: "31s ahead", ts: now + 31, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultWindow.Contains(tt.ts, now))
		})
	}
}

func TestSigner_CheckTimestamp_UsesClock(t *testing.T) {
	now := time.Unix(1700000000, 0)
	s := newTestSigner(t, WithClock(func() time.Time { return now }))

	assert.False(t, s.CheckTimestamp(now.Unix()-301))
	assert.True(t, s.CheckTimestamp(now.Unix()-299))
	assert.False(t, s.CheckTimestamp(now.Unix()+31))
	assert.True(t, s.CheckTimestamp(now.Unix()+29))
	assert.Equal(t, now.Unix(), s.Timestamp())
}

func TestSigner_CustomWindow(t *testing.T) {
	now := time.Unix(1700000000, 0)
	s := newTestSigner(t,
		WithClock(func() time.Time { return now }),
		WithWindow(Window{MaxAge: 10, MaxFuture: 0}),
	)

	assert.True(t, s.CheckTimestamp(now.Unix()-10))
	assert.False(t, s.CheckTimestamp(now.Unix()-11))
	assert.False(t, s.CheckTimestamp(now.Unix()+1))
}

func TestIsTimestampValid_WallClock(t *testing.T) {
	assert.True(t, IsTimestampValid(Timestamp()))
	assert.False(t, IsTimestampValid(Timestamp()-3600))
	assert.False(t, IsTimestampValid(Timestamp()+3600))
}

func TestIsTimestampValidWithin(t *testing.T) {
	now := time.Now().Unix()

	assert.True(t, IsTimestampValid(now-10))
	assert.False(t, IsTimestampValid(now-3600))

	w := Window{MaxAge: 3600, MaxFuture: 0}
	assert.True(t, IsTimestampValidWithin(now-1800, w))
	assert.False(t, IsTimestampValidWithin(now-7200, w))
	assert.False(t, IsTimestampValidWithin(now+60, w))
}
