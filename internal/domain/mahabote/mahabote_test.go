package mahabote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBurmeseEraYearThingyanBoundary(t *testing.T) {
	before := BurmeseEraYear(date(1990, time.April, 13))
	after := BurmeseEraYear(date(1990, time.April, 14))
	require.Equal(t, 1351, before)
	require.Equal(t, 1352, after)
	require.NotEqual(t, before, after)
}

func TestBurmeseEraYearJanuary(t *testing.T) {
	require.Equal(t, 1351, BurmeseEraYear(date(1990, time.January, 1)))
}

func TestSaturdayBirthWithZeroKyinLandsInHouseZero(t *testing.T) {
	// 2003-04-19 is a Saturday after Thingyan: BE 1365, 1365 mod 7 = 0.
	birth := date(2003, time.April, 19)
	require.Equal(t, time.Saturday, birth.Weekday())

	profile := Calculate(birth)
	require.Equal(t, 1365, profile.BEYear)
	require.Equal(t, 0, profile.Kyin)
	require.Equal(t, 0, profile.DayValue)
	require.Equal(t, 0, profile.HouseIndex)
	require.Equal(t, "Binga (ဘင်္ဂ)", profile.HouseName)
	require.Equal(t, "Saturn", profile.RulingPlanet)
	require.Equal(t, 1, profile.GridNumber)
}

func TestDayValueScaleStartsOnSaturday(t *testing.T) {
	require.Equal(t, 0, dayValue(time.Saturday))
	require.Equal(t, 1, dayValue(time.Sunday))
	require.Equal(t, 2, dayValue(time.Monday))
	require.Equal(t, 6, dayValue(time.Friday))
}

func TestHouseIndexAlwaysInRange(t *testing.T) {
	day := date(1960, time.January, 1)
	end := date(2030, time.December, 31)
	for day.Before(end) {
		profile := Calculate(day)
		require.GreaterOrEqual(t, profile.HouseIndex, 0)
		require.LessOrEqual(t, profile.HouseIndex, 6)
		require.Equal(t, profile.HouseIndex+1, profile.GridNumber)
		require.NotEmpty(t, profile.HouseName)
		require.NotEmpty(t, profile.Characteristics)
		day = day.AddDate(0, 0, 97)
	}
}

func TestCalculatePopulatesBurmeseMetadata(t *testing.T) {
	profile := Calculate(date(1990, time.June, 15)) // a Friday
	require.Equal(t, "Friday", profile.BirthDay)
	require.Equal(t, "သောကြာ", profile.BirthDayBurmese)
	require.Equal(t, "သမာ (Tha Ma)", profile.NakshatraBurmese)
	require.Equal(t, 6, profile.DayValue)
}
