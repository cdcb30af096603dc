package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSynthesizeComposesAllSections(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 12, 0, 0, 0, time.UTC)
	reference := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	result := Synthesize(birth, 0, 0, reference)

	require.Len(t, result.Positions, len(Bodies))
	require.GreaterOrEqual(t, result.Ascendant, 0.0)
	require.Less(t, result.Ascendant, 360.0)
	require.LessOrEqual(t, len(result.Aspects), 6)
	require.NotEmpty(t, result.Nakshatra.Name)
	require.NotEmpty(t, result.Mahadasha.Lord)
	require.True(t, result.Mahadasha.EndsAt.After(reference))
}

func TestSynthesizeDeterministic(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 12, 0, 0, 0, time.UTC)
	reference := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	first := Synthesize(birth, 0, 0, reference)
	second := Synthesize(birth, 0, 0, reference)
	require.Equal(t, first, second)
}

func TestSynthesizeVedicUsesMoon(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 12, 0, 0, 0, time.UTC)
	reference := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	result := Synthesize(birth, 16.8409, 96.1735, reference)
	fromMoon := NakshatraOf(result.Positions[Moon])
	require.Equal(t, fromMoon, result.Nakshatra)
	require.Equal(t, fromMoon.Lord, result.Mahadasha.Lord)
}

func TestFormatLongitude(t *testing.T) {
	require.Equal(t, "Aries 0.0°", FormatLongitude(0))
	require.Equal(t, "Gemini 24.1°", FormatLongitude(84.13))
	require.Equal(t, "Pisces 29.9°", FormatLongitude(359.94))
}
