package astro

import "time"

const (
	nakshatraSpan = 360.0 / 27
	padaSpan      = 360.0 / 108
)

var nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishtha",
	"Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// nakshatraLords cycles through the nine Vimshottari rulers across the 27
// nakshatras. Rahu and Ketu appear only here; they are never computed as
// planetary positions.
var nakshatraLords = []string{
	"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn",
	"Mercury", "Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter",
	"Saturn", "Mercury", "Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu",
	"Jupiter", "Saturn", "Mercury",
}

// vimshottariOrder fixes the dasha sequence and each ruler's year allotment.
// The allotments total 120, the full Vimshottari cycle.
var vimshottariOrder = []struct {
	Lord  string
	Years float64
}{
	{"Ketu", 7}, {"Venus", 20}, {"Sun", 6}, {"Moon", 10}, {"Mars", 7},
	{"Rahu", 18}, {"Jupiter", 16}, {"Saturn", 19}, {"Mercury", 17},
}

// NakshatraInfo describes the lunar mansion holding the Moon.
type NakshatraInfo struct {
	Name string
	Pada int
	Lord string
}

// MahadashaState describes the running Vimshottari major period.
type MahadashaState struct {
	Lord           string
	YearsRemaining float64
	EndsAt         time.Time
	NextLord       string
}

// nakshatraIndex clamps to 26 so a longitude of exactly 360° (a floating
// point edge) still lands in the final mansion.
func nakshatraIndex(moonLon float64) int {
	idx := int(moonLon / nakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	return idx
}

// NakshatraOf derives the nakshatra, pada, and ruling lord from the Moon's
// ecliptic longitude. Pada is always in [1, 4].
func NakshatraOf(moonLon float64) NakshatraInfo {
	idx := nakshatraIndex(moonLon)
	pada := int((moonLon-float64(idx)*nakshatraSpan)/padaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return NakshatraInfo{
		Name: nakshatras[idx],
		Pada: pada,
		Lord: nakshatraLords[idx],
	}
}

// MahadashaOf computes the running Vimshottari major period from the Moon's
// longitude. The fraction of the nakshatra already traversed maps linearly
// onto the ruling lord's year allotment; the period end is projected from the
// reference instant using 365.25-day years.
func MahadashaOf(moonLon float64, reference time.Time) MahadashaState {
	idx := nakshatraIndex(moonLon)
	lord := nakshatraLords[idx]

	fractionElapsed := (moonLon - float64(idx)*nakshatraSpan) / nakshatraSpan

	var (
		allotment float64
		orderIdx  int
	)
	for i, entry := range vimshottariOrder {
		if entry.Lord == lord {
			allotment = entry.Years
			orderIdx = i
			break
		}
	}

	yearsRemaining := allotment - fractionElapsed*allotment
	endsAt := reference.Add(time.Duration(yearsRemaining * 365.25 * 24 * float64(time.Hour)))
	nextLord := vimshottariOrder[(orderIdx+1)%len(vimshottariOrder)].Lord

	return MahadashaState{
		Lord:           lord,
		YearsRemaining: yearsRemaining,
		EndsAt:         endsAt,
		NextLord:       nextLord,
	}
}
