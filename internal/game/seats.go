package game

type Seat string

const (
	SeatNorth Seat = "N"
	SeatEast  Seat = "E"
	SeatSouth Seat = "S"
	SeatWest  Seat = "W"
)

// SeatOrder is the fixed clockwise turn order.
var SeatOrder = []Seat{SeatNorth, SeatEast, SeatSouth, SeatWest}

// NextSeat returns the seat clockwise of s, wrapping W back to N.
func NextSeat(s Seat) (Seat, error) {
	for i, seat := range SeatOrder {
		if seat == s {
			return SeatOrder[(i+1)%len(SeatOrder)], nil
		}
	}
	return "", ErrInvalidSeat
}
