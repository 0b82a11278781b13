package types

// Client -> Server (all over /ws, JSON, one object per frame)
// create_room: {}
//
// join_room:
//   code: string
//
// sit:
//   code: string
//   seat: "N" | "E" | "S" | "W"
//   name: string (optional display name)
//
// draw_card: { code }
// auto_deal: { code }
// undo_draw: { code }
// start_bottom_pile: { code }
//
// discard_bottom_pile:
//   code: string
//   card_ids: string[8]
//
// reshuffle_round: { code }
//
// play_cards:
//   code: string
//   card_ids: string[]
//
// clear_trick: { code }

// Server -> Client
// room_created:
//   code: string
//
// joined_room:
//   code: string
//
// room_state:
//   state: RoomView (see snapshot.go)
//
// error_msg:
//   message: string // sent only to the requester of the rejected event
