package astro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyAspectsKinds(t *testing.T) {
	positions := map[Body]float64{
		Sun:     0,
		Moon:    3,   // Conjunction with Sun
		Mercury: 58,  // Sextile with Sun
		Venus:   95,  // Square with Sun
		Mars:    115, // Trine with Sun
		Jupiter: 185, // Opposition with Sun
		Saturn:  312, // 48° from Sun, no aspect
	}
	records := ClassifyAspects(positions)

	require.Equal(t, Conjunction, mustFindAspect(t, records, Sun, Moon).Kind)
	require.Equal(t, Sextile, mustFindAspect(t, records, Sun, Mercury).Kind)
	require.Equal(t, Square, mustFindAspect(t, records, Sun, Venus).Kind)
	require.Equal(t, Trine, mustFindAspect(t, records, Sun, Mars).Kind)
	require.Equal(t, Opposition, mustFindAspect(t, records, Sun, Jupiter).Kind)
	_, found := findAspect(records, Sun, Saturn)
	require.False(t, found)
}

func TestClassifyAspectsReducesReflexSeparation(t *testing.T) {
	// 355° of raw separation reads as 5° once reduced past 180.
	positions := noAspectPositions()
	positions[Sun] = 2
	positions[Moon] = 357
	rec := mustFindAspect(t, ClassifyAspects(positions), Sun, Moon)
	require.Equal(t, Conjunction, rec.Kind)
	require.InDelta(t, 5.0, rec.Separation, 1e-9)
}

func TestClassifyAspectsSymmetric(t *testing.T) {
	forward := noAspectPositions()
	forward[Sun] = 10
	forward[Moon] = 130

	backward := noAspectPositions()
	backward[Sun] = 130
	backward[Moon] = 10

	a := mustFindAspect(t, ClassifyAspects(forward), Sun, Moon)
	b := mustFindAspect(t, ClassifyAspects(backward), Sun, Moon)
	require.Equal(t, Trine, a.Kind)
	require.Equal(t, a.Kind, b.Kind)
	require.Equal(t, a.Separation, b.Separation)
}

func TestClassifyAspectsPairOrderFollowsBodyList(t *testing.T) {
	positions := map[Body]float64{}
	for i, body := range Bodies {
		positions[body] = float64(i) // tight cluster, all conjunctions
	}
	records := ClassifyAspects(positions)
	require.NotEmpty(t, records)
	require.Equal(t, Sun, records[0].First)
	require.Equal(t, Moon, records[0].Second)
	require.Equal(t, "Sun Conjunction Moon", records[0].Describe())
	for _, rec := range records {
		require.Less(t, int(rec.First), int(rec.Second))
	}
}

func TestClassifyAspectsCanBeEmpty(t *testing.T) {
	require.Empty(t, ClassifyAspects(noAspectPositions()))
}

// noAspectPositions spaces all seven bodies 34° apart; every pairwise
// separation then falls between the orb windows of the aspect table.
func noAspectPositions() map[Body]float64 {
	positions := make(map[Body]float64, len(Bodies))
	for i, body := range Bodies {
		positions[body] = float64(i) * 34
	}
	return positions
}

func findAspect(records []AspectRecord, first, second Body) (AspectRecord, bool) {
	for _, rec := range records {
		if rec.First == first && rec.Second == second {
			return rec, true
		}
	}
	return AspectRecord{}, false
}

func mustFindAspect(t *testing.T, records []AspectRecord, first, second Body) AspectRecord {
	t.Helper()
	rec, found := findAspect(records, first, second)
	require.True(t, found, "no %s/%s aspect classified", first, second)
	return rec
}
