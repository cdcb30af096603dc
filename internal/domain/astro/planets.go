package astro

import (
	"fmt"
	"math"
	"time"
)

// Longitude computes the approximate geocentric ecliptic longitude of a body
// at the given UTC instant, in degrees normalized to [0, 360).
//
// Each body combines a linear mean-longitude term with a small sinusoidal
// correction series driven by its mean anomaly. The Sun and Moon carry denser
// series (Sun ±0.01°, Moon sub-degree); the remaining planets use one or two
// harmonics, which is sufficient for sign and nakshatra resolution. Passing
// an unknown body is a programming error and panics.
func Longitude(t time.Time, b Body) float64 {
	d := DaysSinceJ2000(t)
	T := d / 36525.0 // Julian centuries

	switch b {
	case Sun:
		l0 := 280.46646 + 36000.76983*T
		m := rad(normalize(357.52911 + 35999.05029*T))
		c := (1.914602-0.004817*T)*math.Sin(m) + 0.019993*math.Sin(2*m)
		return normalize(l0 + c)

	case Moon:
		lm := normalize(218.316 + 13.176396*d)
		mm := normalize(134.963 + 13.064993*d) // Moon mean anomaly
		dd := normalize(297.850 + 12.190749*d) // mean elongation
		ms := normalize(357.529 + 0.985608*d)  // Sun mean anomaly
		lon := lm +
			6.289*math.Sin(rad(mm)) -
			1.274*math.Sin(rad(2*dd-mm)) +
			0.658*math.Sin(rad(2*dd)) -
			0.186*math.Sin(rad(ms)) -
			0.059*math.Sin(rad(2*dd-2*mm)) -
			0.057*math.Sin(rad(2*dd+mm-ms))
		return normalize(lon)

	case Mercury:
		l := normalize(252.250906 + 149472.6746358*T)
		m := normalize(168.672 + 149472.515*T)
		return normalize(l + 1.2*math.Sin(rad(m)))

	case Venus:
		l := normalize(181.979801 + 58517.8156760*T)
		m := normalize(48.0052 + 58517.8030*T)
		return normalize(l + 0.77*math.Sin(rad(m)))

	case Mars:
		l := normalize(355.433 + 19140.2993*T)
		m := normalize(19.387 + 19140.3025*T)
		return normalize(l + 10.691*math.Sin(rad(m)) + 0.623*math.Sin(rad(2*m)))

	case Jupiter:
		l := normalize(34.351519 + 3034.9056606*T)
		m := normalize(20.9 + 3034.906*T)
		return normalize(l + 5.55*math.Sin(rad(m)) + 0.168*math.Sin(rad(2*m)))

	case Saturn:
		l := normalize(50.077444 + 1222.1138488*T)
		m := normalize(317.0 + 1222.114*T)
		return normalize(l + 6.394*math.Sin(rad(m)) + 0.344*math.Sin(rad(2*m)))

	default:
		panic(fmt.Sprintf("astro: unknown body %d", int(b)))
	}
}

// Positions computes the longitude of every tracked body in the fixed order.
func Positions(t time.Time) map[Body]float64 {
	positions := make(map[Body]float64, len(Bodies))
	for _, b := range Bodies {
		positions[b] = Longitude(t, b)
	}
	return positions
}
