package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0"},
		{in: 999, want: "999"},
		{in: 1000, want: "1,000"},
		{in: 123456, want: "123,456"},
		{in: 1234567, want: "1,234,567"},
		{in: -1234567, want: "-1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.in))
		})
	}
}

func TestParsePrice(t *testing.T) {
	got, err := ParsePrice("1,234,567.5")
	require.NoError(t, err)
	assert.InDelta(t, 1234567.5, got, 1e-9)

	got, err = ParsePrice(FormatPrice(-42000))
	require.NoError(t, err)
	assert.InDelta(t, -42000.0, got, 1e-9)

	_, err = ParsePrice("abc")
	assert.Error(t, err)
}
