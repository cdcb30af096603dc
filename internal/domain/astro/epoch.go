package astro

import (
	"math"
	"time"
)

// j2000 is the Julian Day of the J2000.0 reference epoch (2000-Jan-1.5 TT).
const j2000 = 2451545.0

// julianDay converts a UTC timestamp to a fractional Julian Day Number using
// the standard Gregorian-calendar algorithm. Proleptic dates before the 1582
// reform are outside the supported domain.
func julianDay(t time.Time) float64 {
	year, month, day := t.Date()
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return float64(jdn) +
		float64(t.Hour()-12)/24.0 +
		float64(t.Minute())/1440.0 +
		float64(t.Second())/86400.0
}

// DaysSinceJ2000 returns the continuous fractional day count since the
// J2000.0 epoch for the given UTC instant.
func DaysSinceJ2000(t time.Time) float64 {
	return julianDay(t) - j2000
}

// normalize reduces an angle in degrees to [0, 360).
func normalize(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
