package game

import "slices"

type SeatInfo struct {
	Participant string `json:"participant,omitempty"`
	Name        string `json:"name,omitempty"`
}

// RoomView is the per-viewer projection of a room. Only the viewer's own
// hand is carried in full; everyone else contributes a count. Table plays
// are public.
type RoomView struct {
	Code            string            `json:"code"`
	Phase           Phase             `json:"phase"`
	Seats           map[Seat]SeatInfo `json:"seats"`
	CurrentTurn     Seat              `json:"current_turn,omitempty"`
	TrumpSuit       Suit              `json:"trump_suit,omitempty"`
	StartingPlayer  Seat              `json:"starting_player,omitempty"`
	DrawPileCount   int               `json:"draw_pile_count"`
	DiscardCount    int               `json:"discard_count"`
	BottomPileCount int               `json:"bottom_pile_count"`
	YourSeat        Seat              `json:"your_seat,omitempty"`
	Hand            []Card            `json:"hand"`
	HandCounts      map[string]int    `json:"hand_counts"`
	Table           map[string][]Card `json:"table"`
	YourPoints      int               `json:"your_points"`
	CanReshuffle    bool              `json:"can_reshuffle"`
}

// ProjectFor derives the view the given participant is allowed to see.
// The result owns its slices, so it stays valid after the room mutates.
func ProjectFor(participant string, r *Room) RoomView {
	seat, _ := r.SeatOf(participant)
	hand := slices.Clone(r.Hands[participant])
	if hand == nil {
		hand = []Card{}
	}

	v := RoomView{
		Code:            r.Code,
		Phase:           r.Phase,
		Seats:           make(map[Seat]SeatInfo, len(r.Seats)),
		CurrentTurn:     r.CurrentTurn,
		TrumpSuit:       r.TrumpSuit,
		StartingPlayer:  r.StartingPlayer,
		DrawPileCount:   len(r.DrawPile),
		DiscardCount:    len(r.Discards),
		BottomPileCount: len(r.BottomPile),
		YourSeat:        seat,
		Hand:            hand,
		HandCounts:      make(map[string]int, len(r.Hands)),
		Table:           make(map[string][]Card, len(r.Table)),
		YourPoints:      HandPoints(r.Hands[participant]),
	}
	for s, occ := range r.Seats {
		v.Seats[s] = SeatInfo{Participant: occ, Name: r.Names[occ]}
	}
	for p, h := range r.Hands {
		v.HandCounts[p] = len(h)
	}
	for p, cards := range r.Table {
		v.Table[p] = slices.Clone(cards)
	}
	v.CanReshuffle = r.Phase == PhaseDiscardingBottom &&
		seat != "" && seat == r.StartingPlayer &&
		v.YourPoints < reshufflePointCap
	return v
}
