package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysSinceJ2000AtEpoch(t *testing.T) {
	epoch := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, 0.0, DaysSinceJ2000(epoch))
}

func TestDaysSinceJ2000PreservesFractionalDay(t *testing.T) {
	epoch := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	quarterDay := epoch.Add(6 * time.Hour)
	require.InDelta(t, 0.25, DaysSinceJ2000(quarterDay), 1e-9)

	withSeconds := epoch.Add(1*time.Minute + 30*time.Second)
	require.InDelta(t, 90.0/86400.0, DaysSinceJ2000(withSeconds), 1e-9)
}

func TestDaysSinceJ2000BeforeEpoch(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 12, 0, 0, 0, time.UTC)
	require.Equal(t, -3487.0, DaysSinceJ2000(birth))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, 0.0, normalize(0))
	require.Equal(t, 0.0, normalize(360))
	require.Equal(t, 0.0, normalize(720))
	require.Equal(t, 350.0, normalize(-10))
	require.InDelta(t, 84.13, normalize(-3155.87), 1e-9)
	got := normalize(359.999)
	require.GreaterOrEqual(t, got, 0.0)
	require.Less(t, got, 360.0)
}
