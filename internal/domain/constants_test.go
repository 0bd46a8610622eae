package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBookingNumber(t *testing.T) {
	assert.Equal(t, "NB00001", FormatBookingNumber(1))
	assert.Equal(t, "NB00042", FormatBookingNumber(42))
	assert.Equal(t, "NB99999", FormatBookingNumber(99999))
}

func TestParseBookingNumber(t *testing.T) {
	n, ok := ParseBookingNumber("NB00042")
	require.True(t, ok)
	assert.Equal(t, int64(42), n)

	n, ok = ParseBookingNumber("NB99999")
	require.True(t, ok)
	assert.Equal(t, int64(99999), n)
}

func TestParseBookingNumber_RoundTrip(t *testing.T) {
	for _, v := range []int64{1, 7, 123, 99999} {
		n, ok := ParseBookingNumber(FormatBookingNumber(v))
		require.True(t, ok, "formatted number %d must parse back", v)
		assert.Equal(t, v, n)
	}
}

func TestParseBookingNumber_RejectsLegacyFormats(t *testing.T) {
	for _, s := range []string{"", "NB123", "NB123456", "XX00042", "nb00042", "NB0004a", "00042"} {
		_, ok := ParseBookingNumber(s)
		assert.False(t, ok, "must reject %q", s)
	}
}
