package types

// RoomView (per-viewer state snapshot):
//   code: string
//   phase: "waiting" | "drawing" | "awaiting_bottom_pile" | "discarding_bottom_pile" | "playing"
//   seats: { [N|E|S|W]: { participant, name } }
//   current_turn: seat (absent between drawing and the bottom-pile claim)
//   trump_suit: "spade" | "heart" | "diamond" | "club" (absent until a 2 is drawn)
//   starting_player: seat (set together with trump_suit)
//   draw_pile_count: number
//   discard_count: number
//   bottom_pile_count: number // contents are never sent
//   your_seat: seat (absent when spectating)
//   hand: Card[] // the viewer's own cards only
//   hand_counts: { [participant]: number } // other hands appear as counts
//   table: { [participant]: Card[] } // plays are public
//   your_points: number // 5s count 5, 10s and kings count 10
//   can_reshuffle: boolean
