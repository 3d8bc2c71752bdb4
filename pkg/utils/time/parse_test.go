package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlexibleTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc1123z", "Tue, 02 Jan 2024 15:04:05 +0000", time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"rfc1123 gmt", "Tue, 05 Mar 2024 08:00:00 GMT", time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)},
		{"rfc3339", "2024-06-01T12:30:00+00:00", time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)},
		{"date only", "2023-11-20", time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)},
		{"padded", "  2023-11-20  ", time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlexibleTime(tt.in)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseFlexibleTime_Unparsable(t *testing.T) {
	assert.True(t, ParseFlexibleTime("").IsZero())
	assert.True(t, ParseFlexibleTime("not a date").IsZero())
}

func TestParseWithDefault(t *testing.T) {
	def := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, def, ParseWithDefault("garbage", def))
	assert.False(t, ParseWithDefault("2024-01-01", def).Equal(def))
}

func TestNewestFirst(t *testing.T) {
	older := "Mon, 01 Jan 2024 00:00:00 +0000"
	newer := "Tue, 02 Jan 2024 00:00:00 +0000"

	assert.Less(t, NewestFirst(newer, older), 0)
	assert.Greater(t, NewestFirst(older, newer), 0)
	assert.Equal(t, 0, NewestFirst(newer, newer))

	assert.Greater(t, NewestFirst("bogus", older), 0)
	assert.Less(t, NewestFirst(older, "bogus"), 0)
	assert.Equal(t, 0, NewestFirst("bogus", ""))
}
