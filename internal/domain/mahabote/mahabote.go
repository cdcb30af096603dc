// Package mahabote computes Burmese Mahabote house assignments. The system
// keys entirely off the birth date: the Burmese-era year modulo 7 (the Kyin)
// and the birth weekday re-based to a Saturday-first scale together select
// one of seven houses.
package mahabote

import "time"

// Thingyan, the Burmese new year, falls around April 13–16. The fixed
// April-14 cut is an approximation of the movable boundary; exact per-year
// Thingyan dates are not modeled.
const (
	thingyanMonth = time.April
	thingyanDay   = 14
)

// Profile is the full Mahabote reading for one birth date.
type Profile struct {
	BirthDay         string `json:"birth_day"`
	BirthDayBurmese  string `json:"birth_day_burmese"`
	HouseName        string `json:"house_name"`
	HouseBurmese     string `json:"house_burmese"`
	RulingPlanet     string `json:"ruling_planet"`
	BEYear           int    `json:"be_year"`
	Kyin             int    `json:"kyin"`
	DayValue         int    `json:"day_value"`
	HouseIndex       int    `json:"house_index"`
	NakshatraBurmese string `json:"nakshatra_burmese"`
	GridNumber       int    `json:"grid_number"`
	Characteristics  string `json:"characteristics"`
}

// BurmeseEraYear converts a Gregorian birth date to the Burmese-era year.
// Dates strictly before April 14 belong to the previous Burmese year.
func BurmeseEraYear(birthDate time.Time) int {
	year, month, day := birthDate.Date()
	if month < thingyanMonth || (month == thingyanMonth && day < thingyanDay) {
		return year - 639
	}
	return year - 638
}

// Kyin is the Burmese-era year reduced modulo 7.
func Kyin(beYear int) int {
	return beYear % 7
}

// dayValue re-bases the civil weekday to the Mahabote scale, where
// Saturday=0, Sunday=1, ..., Friday=6.
func dayValue(weekday time.Weekday) int {
	return (int(weekday) + 1) % 7
}

// Calculate derives the complete Mahabote profile for a birth date. Every
// valid calendar date yields exactly one house.
func Calculate(birthDate time.Time) Profile {
	beYear := BurmeseEraYear(birthDate)
	kyin := Kyin(beYear)

	weekday := birthDate.Weekday()
	dv := dayValue(weekday)

	houseIndex := ((dv-kyin)%7 + 7) % 7
	house := houses[houseIndex]

	return Profile{
		BirthDay:         weekday.String(),
		BirthDayBurmese:  burmeseWeekdays[weekday],
		HouseName:        house.Name,
		HouseBurmese:     house.Burmese,
		RulingPlanet:     house.Planet,
		BEYear:           beYear,
		Kyin:             kyin,
		DayValue:         dv,
		HouseIndex:       houseIndex,
		NakshatraBurmese: burmeseNakshatras[weekday],
		GridNumber:       houseIndex + 1,
		Characteristics:  house.Characteristics,
	}
}
