package store

import "strings"

// Passenger types with a fare discount. Unknown types pay full fare.
const (
	PassengerAdult   = "adult"
	PassengerStudent = "student"
	PassengerSenior  = "senior"
)

var discounts = map[string]float64{
	PassengerAdult:   1.0,
	PassengerStudent: 0.7,
	PassengerSenior:  0.5,
}

// Discount returns the fare multiplier for a passenger type.
func Discount(passengerType string) float64 {
	if d, ok := discounts[strings.ToLower(passengerType)]; ok {
		return d
	}
	return 1.0
}

// PriceFor computes the fare for quantity tickets on a route. Pure: the
// route is never modified.
func PriceFor(r *Route, passengerType string, quantity int) float64 {
	return r.Price * Discount(passengerType) * float64(quantity)
}
