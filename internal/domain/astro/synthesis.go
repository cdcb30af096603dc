package astro

import "time"

// maxAspects caps the number of aspect records carried by a synthesis, in
// fixed pair-iteration order.
const maxAspects = 6

// Synthesis is the immutable aggregate of every western and vedic fact
// derived from one birth instant and location. It is created once per
// request and never mutated.
type Synthesis struct {
	Positions map[Body]float64
	Ascendant float64
	Aspects   []AspectRecord
	Nakshatra NakshatraInfo
	Mahadasha MahadashaState
}

// Synthesize computes planetary positions, the ascendant, classified aspects,
// and the vedic state for a birth instant at the given coordinates. The
// reference instant anchors the mahadasha end-date projection. The call is a
// pure function of its arguments: no component result feeds back into an
// earlier one.
func Synthesize(birth time.Time, lat, lon float64, reference time.Time) Synthesis {
	positions := Positions(birth)
	ascendant := Ascendant(birth, lat, lon)

	aspects := ClassifyAspects(positions)
	if len(aspects) > maxAspects {
		aspects = aspects[:maxAspects]
	}

	moonLon := positions[Moon]
	return Synthesis{
		Positions: positions,
		Ascendant: ascendant,
		Aspects:   aspects,
		Nakshatra: NakshatraOf(moonLon),
		Mahadasha: MahadashaOf(moonLon, reference),
	}
}
