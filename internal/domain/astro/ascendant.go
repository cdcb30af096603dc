package astro

import (
	"math"
	"time"
)

// maxAscendantLat saturates latitudes near the poles, where the rising-point
// identity degenerates (tan of the latitude diverges). The clamp trades a
// fraction of a degree for a defined result instead of undefined float math.
const maxAscendantLat = 89.9

// Ascendant computes the ecliptic longitude rising on the eastern horizon for
// an observer at the given coordinates, in degrees normalized to [0, 360).
//
// Greenwich mean sidereal time is a linear function of days since J2000;
// adding the observer longitude yields local sidereal time. The rising point
// follows from the spherical identity solved with atan2, which stays finite
// everywhere except the exact poles.
func Ascendant(t time.Time, lat, lon float64) float64 {
	d := DaysSinceJ2000(t)

	gmst := normalize(280.46061837 + 360.98564736629*d)
	lst := normalize(gmst + lon)

	eps := rad(23.439 - 0.0000004*d)

	lat = math.Max(-maxAscendantLat, math.Min(maxAscendantLat, lat))
	lstR := rad(lst)
	latR := rad(lat)

	asc := deg(math.Atan2(
		math.Cos(lstR),
		-(math.Sin(lstR)*math.Cos(eps) + math.Tan(latR)*math.Sin(eps)),
	))
	return normalize(asc)
}
