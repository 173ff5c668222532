package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Scan(t *testing.T) {
	want := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		src  any
	}{
		{name: "time from postgres", src: time.Date(2023, 5, 15, 0, 0, 0, 0, time.FixedZone("", 3600))},
		{name: "plain string", src: "2023-05-15"},
		{name: "bytes", src: []byte("2023-05-15")},
		{name: "sqlite timestamp text", src: "2023-05-15T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.True(t, want.Equal(d.Time), "got %s", d.Time)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("yesterday"))
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", v)
}
