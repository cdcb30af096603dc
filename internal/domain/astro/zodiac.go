package astro

import (
	"fmt"
	"math"
)

var zodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignIndex maps an ecliptic longitude to its zodiac sign index in [0, 11].
func SignIndex(lon float64) int {
	return int(lon/30) % 12
}

// SignName returns the zodiac sign containing the longitude.
func SignName(lon float64) string {
	return zodiacSigns[SignIndex(lon)]
}

// FormatLongitude renders a longitude as "<Sign> <degree>°" with one decimal
// of degree-in-sign precision.
func FormatLongitude(lon float64) string {
	degree := math.Round(math.Mod(lon, 30)*10) / 10
	return fmt.Sprintf("%s %.1f°", SignName(lon), degree)
}
