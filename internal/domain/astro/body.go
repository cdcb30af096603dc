package astro

import "fmt"

// Body identifies one of the seven classical planets tracked by the engine.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
)

// Bodies lists every tracked body in the fixed computation order. Pair
// iteration for aspects and position assembly both follow this order.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

var bodyNames = map[Body]string{
	Sun:     "Sun",
	Moon:    "Moon",
	Mercury: "Mercury",
	Venus:   "Venus",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
}

// String returns the canonical English name of the body.
func (b Body) String() string {
	name, ok := bodyNames[b]
	if !ok {
		panic(fmt.Sprintf("astro: unknown body %d", int(b)))
	}
	return name
}
