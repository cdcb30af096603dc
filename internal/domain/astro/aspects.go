package astro

import (
	"fmt"
	"math"
)

// AspectKind names a classified angular relationship between two bodies.
type AspectKind string

const (
	Conjunction AspectKind = "Conjunction"
	Sextile     AspectKind = "Sextile"
	Square      AspectKind = "Square"
	Trine       AspectKind = "Trine"
	Opposition  AspectKind = "Opposition"
)

// aspectTypes is the classification table checked in priority order; the
// first matching entry wins.
var aspectTypes = []struct {
	angle float64
	orb   float64
	kind  AspectKind
}{
	{0, 8, Conjunction},
	{60, 6, Sextile},
	{90, 8, Square},
	{120, 8, Trine},
	{180, 8, Opposition},
}

// AspectRecord captures one classified pairwise relationship. First always
// precedes Second in the fixed body order.
type AspectRecord struct {
	First      Body
	Second     Body
	Kind       AspectKind
	Separation float64
}

// Describe renders the record as "<Body1> <Kind> <Body2>".
func (r AspectRecord) Describe() string {
	return fmt.Sprintf("%s %s %s", r.First, r.Kind, r.Second)
}

// ClassifyAspects detects major aspects between every unordered pair of
// bodies, iterating pairs in the fixed body order. The absolute separation is
// reduced to [0, 180] before matching against the aspect table. Pairs that
// match nothing contribute no record.
func ClassifyAspects(positions map[Body]float64) []AspectRecord {
	var records []AspectRecord
	for i, first := range Bodies {
		for _, second := range Bodies[i+1:] {
			diff := math.Abs(positions[first] - positions[second])
			if diff > 180 {
				diff = 360 - diff
			}
			for _, at := range aspectTypes {
				if math.Abs(diff-at.angle) <= at.orb {
					records = append(records, AspectRecord{
						First:      first,
						Second:     second,
						Kind:       at.kind,
						Separation: diff,
					})
					break
				}
			}
		}
	}
	return records
}
