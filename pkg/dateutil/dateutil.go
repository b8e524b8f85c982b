package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// CalendarYearAtAge returns the calendar year in which a person born on
// birthDate turns the given age.
func CalendarYearAtAge(birthDate time.Time, age int) int {
	return birthDate.Year() + age
}

