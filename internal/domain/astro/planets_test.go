package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLongitudeAlwaysNormalized(t *testing.T) {
	instants := []time.Time{
		time.Date(1950, time.March, 21, 0, 0, 0, 0, time.UTC),
		time.Date(1990, time.June, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, instant := range instants {
		for _, body := range Bodies {
			lon := Longitude(instant, body)
			require.GreaterOrEqual(t, lon, 0.0, "%s at %s", body, instant)
			require.Less(t, lon, 360.0, "%s at %s", body, instant)
		}
	}
}

func TestSunLongitudeInGemini(t *testing.T) {
	// Mid June puts the Sun firmly in Gemini (sign index 2).
	birth := time.Date(1990, time.June, 15, 12, 0, 0, 0, time.UTC)
	lon := Longitude(birth, Sun)
	require.Equal(t, 2, SignIndex(lon))
	require.Equal(t, "Gemini", SignName(lon))
}

func TestLongitudeDeterministic(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 12, 0, 0, 0, time.UTC)
	for _, body := range Bodies {
		first := Longitude(birth, body)
		second := Longitude(birth, body)
		require.Equal(t, first, second, "%s must be bit-identical", body)
	}
}

func TestLongitudeUnknownBodyPanics(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 12, 0, 0, 0, time.UTC)
	require.Panics(t, func() {
		Longitude(birth, Body(42))
	})
}

func TestPositionsCoversAllBodies(t *testing.T) {
	positions := Positions(time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC))
	require.Len(t, positions, len(Bodies))
	for _, body := range Bodies {
		require.Contains(t, positions, body)
	}
}

func TestSignDerivationBounds(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 7.3 {
		idx := SignIndex(lon)
		require.GreaterOrEqual(t, idx, 0)
		require.LessOrEqual(t, idx, 11)
	}
}
