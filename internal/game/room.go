package game

import (
	"errors"
	"slices"
)

var ErrInvalidSeat = errors.New("invalid seat")
var ErrSeatTaken = errors.New("seat already taken")
var ErrWrongPhase = errors.New("operation not valid in current phase")
var ErrNotSeated = errors.New("participant is not seated")
var ErrNotYourTurn = errors.New("not your turn")
var ErrHandFull = errors.New("hand is full")
var ErrIncompleteSeating = errors.New("all four seats must be filled")
var ErrNothingToUndo = errors.New("nothing to undo")
var ErrNotYourDraw = errors.New("last draw was not yours")
var ErrNoStartingPlayer = errors.New("no starting player yet")
var ErrNotStartingPlayer = errors.New("not the starting player")
var ErrWrongDiscardCount = errors.New("must discard exactly eight cards")
var ErrCardsNotFound = errors.New("cards not found in hand")
var ErrNotEligible = errors.New("not eligible to reshuffle")

type Phase string

const (
	PhaseWaiting          Phase = "waiting"
	PhaseDrawing          Phase = "drawing"
	PhaseAwaitingBottom   Phase = "awaiting_bottom_pile"
	PhaseDiscardingBottom Phase = "discarding_bottom_pile"
	PhasePlaying          Phase = "playing"
)

const (
	maxHandSize       = 25
	bottomPileSize    = 8
	autoDealBound     = 2000
	reshufflePointCap = 25
)

// DrawRecord remembers the most recent draw so exactly one level of undo
// is possible. setTrump marks the draw that fixed the trump suit.
type DrawRecord struct {
	Seat     Seat
	CardID   string
	setTrump bool
}

// Room is the per-game aggregate. It is not safe for concurrent use; the
// room actor serializes all access.
type Room struct {
	Code           string
	Seats          map[Seat]string // seat -> participant handle, "" if empty
	Names          map[string]string
	Hands          map[string][]Card
	Table          map[string][]Card
	Discards       []Card
	DrawPile       []Card // stack: draw pops the end, undo pushes it back
	BottomPile     []Card
	TrumpSuit      Suit
	StartingPlayer Seat
	CurrentTurn    Seat
	Phase          Phase
	LastAction     *DrawRecord

	started bool
}

func NewRoom(code string) *Room {
	return &Room{
		Code: code,
		Seats: map[Seat]string{
			SeatNorth: "", SeatEast: "", SeatSouth: "", SeatWest: "",
		},
		Names: make(map[string]string),
		Hands: make(map[string][]Card),
		Table: make(map[string][]Card),
		Phase: PhaseWaiting,
	}
}

// SeatOf is a pure lookup of the seat a participant occupies, if any.
func (r *Room) SeatOf(participant string) (Seat, bool) {
	if participant == "" {
		return "", false
	}
	for _, s := range SeatOrder {
		if r.Seats[s] == participant {
			return s, true
		}
	}
	return "", false
}

func (r *Room) fullSeated() bool {
	for _, s := range SeatOrder {
		if r.Seats[s] == "" {
			return false
		}
	}
	return true
}

// Sit places the participant on the requested seat, vacating any seat they
// already hold. The first time all four seats fill, the room auto-starts
// the drawing phase; re-seating later never re-triggers it.
func (r *Room) Sit(participant, name string, seat Seat) error {
	if _, ok := r.Seats[seat]; !ok {
		return ErrInvalidSeat
	}
	if occ := r.Seats[seat]; occ != "" && occ != participant {
		return ErrSeatTaken
	}
	for s, occ := range r.Seats {
		if occ == participant {
			r.Seats[s] = ""
		}
	}
	r.Seats[seat] = participant
	if name != "" {
		r.Names[participant] = name
	}
	if r.started {
		// Rejoins after a disconnect need their bookkeeping back.
		if _, ok := r.Hands[participant]; !ok {
			r.Hands[participant] = []Card{}
		}
		if _, ok := r.Table[participant]; !ok {
			r.Table[participant] = []Card{}
		}
	}
	if !r.started && r.fullSeated() {
		r.started = true
		r.startRound()
	}
	return nil
}

// startRound rebuilds all card state for a fresh round: new deck, first
// eight cards reserved as the bottom pile, north to draw first. Seats and
// display names are untouched.
func (r *Room) startRound() {
	deck := BuildShuffledDeck()
	r.BottomPile = slices.Clone(deck[:bottomPileSize])
	r.DrawPile = deck[bottomPileSize:]
	r.Discards = nil
	r.Hands = make(map[string][]Card)
	r.Table = make(map[string][]Card)
	for _, s := range SeatOrder {
		if p := r.Seats[s]; p != "" {
			r.Hands[p] = []Card{}
			r.Table[p] = []Card{}
		}
	}
	r.TrumpSuit = SuitNone
	r.StartingPlayer = ""
	r.LastAction = nil
	r.Phase = PhaseDrawing
	r.CurrentTurn = SeatNorth
}

// DrawCard draws one card for the participant whose turn it is. The first
// rank-2 card drawn in a round fixes the trump suit and starting player.
func (r *Room) DrawCard(participant string) error {
	if r.Phase != PhaseDrawing {
		return ErrWrongPhase
	}
	seat, ok := r.SeatOf(participant)
	if !ok {
		return ErrNotSeated
	}
	if seat != r.CurrentTurn {
		return ErrNotYourTurn
	}
	return r.drawFor(seat)
}

func (r *Room) drawFor(seat Seat) error {
	participant := r.Seats[seat]
	if len(r.Hands[participant]) >= maxHandSize {
		return ErrHandFull
	}
	card := r.DrawPile[len(r.DrawPile)-1]
	r.DrawPile = r.DrawPile[:len(r.DrawPile)-1]
	r.Hands[participant] = append(r.Hands[participant], card)

	rec := &DrawRecord{Seat: seat, CardID: card.ID}
	if card.Rank == 2 && r.TrumpSuit == SuitNone {
		r.TrumpSuit = card.Suit
		r.StartingPlayer = seat
		rec.setTrump = true
	}
	r.LastAction = rec

	next, err := NextSeat(seat)
	if err != nil {
		return err
	}
	r.CurrentTurn = next
	if len(r.DrawPile) == 0 {
		r.Phase = PhaseAwaitingBottom
		r.CurrentTurn = ""
	}
	return nil
}

// AutoDeal drains the draw pile in seat-ring order starting from the
// current turn. The iteration bound only guarantees termination when a
// full hand blocks a seat from drawing.
func (r *Room) AutoDeal(participant string) error {
	if r.Phase != PhaseDrawing {
		return ErrWrongPhase
	}
	if !r.fullSeated() {
		return ErrIncompleteSeating
	}
	for i := 0; i < autoDealBound && len(r.DrawPile) > 0; i++ {
		seat := r.CurrentTurn
		if err := r.drawFor(seat); err != nil {
			if !errors.Is(err, ErrHandFull) {
				return err
			}
			next, nerr := NextSeat(seat)
			if nerr != nil {
				return nerr
			}
			r.CurrentTurn = next
		}
	}
	return nil
}

// UndoDraw reverts the single most recent draw: the card goes back on top
// of the pile, the turn returns to the drawer, and a trump assignment made
// by that draw is cleared.
func (r *Room) UndoDraw(participant string) error {
	if r.Phase != PhaseDrawing || r.LastAction == nil {
		return ErrNothingToUndo
	}
	seat, ok := r.SeatOf(participant)
	if !ok || seat != r.LastAction.Seat {
		return ErrNotYourDraw
	}
	hand := r.Hands[participant]
	idx := slices.IndexFunc(hand, func(c Card) bool { return c.ID == r.LastAction.CardID })
	if idx < 0 {
		return ErrCardsNotFound
	}
	card := hand[idx]
	r.Hands[participant] = slices.Delete(hand, idx, idx+1)
	r.DrawPile = append(r.DrawPile, card)
	if r.LastAction.setTrump {
		r.TrumpSuit = SuitNone
		r.StartingPlayer = ""
	}
	r.CurrentTurn = r.LastAction.Seat
	r.LastAction = nil
	return nil
}

// ClaimBottomPile moves all eight bottom cards into the starting player's
// hand once the draw pile is exhausted.
func (r *Room) ClaimBottomPile(participant string) error {
	if r.Phase != PhaseAwaitingBottom {
		return ErrWrongPhase
	}
	if r.StartingPlayer == "" {
		return ErrNoStartingPlayer
	}
	if seat, ok := r.SeatOf(participant); !ok || seat != r.StartingPlayer {
		return ErrNotStartingPlayer
	}
	r.Hands[participant] = append(r.Hands[participant], r.BottomPile...)
	r.BottomPile = nil
	r.Phase = PhaseDiscardingBottom
	return nil
}

// DiscardBottomPile buries exactly eight identified cards from the
// starting player's hand as the new bottom pile and opens play. Nothing
// is removed unless all eight identifiers resolve.
func (r *Room) DiscardBottomPile(participant string, cardIDs []string) error {
	if r.Phase != PhaseDiscardingBottom {
		return ErrWrongPhase
	}
	if seat, ok := r.SeatOf(participant); !ok || seat != r.StartingPlayer {
		return ErrNotStartingPlayer
	}
	if len(cardIDs) != bottomPileSize {
		return ErrWrongDiscardCount
	}
	want := make(map[string]bool, bottomPileSize)
	for _, id := range cardIDs {
		if want[id] {
			return ErrCardsNotFound
		}
		want[id] = true
	}
	hand := r.Hands[participant]
	matched := 0
	for _, c := range hand {
		if want[c.ID] {
			matched++
		}
	}
	if matched != bottomPileSize {
		return ErrCardsNotFound
	}

	kept := make([]Card, 0, len(hand)-bottomPileSize)
	buried := make([]Card, 0, bottomPileSize)
	for _, c := range hand {
		if want[c.ID] {
			buried = append(buried, c)
		} else {
			kept = append(kept, c)
		}
	}
	r.Hands[participant] = kept
	r.BottomPile = buried
	r.Phase = PhasePlaying
	r.CurrentTurn = r.StartingPlayer
	return nil
}

// ReshuffleRound lets a starting player holding fewer than 25 points in
// hand throw the round in and redeal. Seats and names survive the reset.
func (r *Room) ReshuffleRound(participant string) error {
	if r.Phase != PhaseDiscardingBottom {
		return ErrWrongPhase
	}
	if seat, ok := r.SeatOf(participant); !ok || seat != r.StartingPlayer {
		return ErrNotStartingPlayer
	}
	if HandPoints(r.Hands[participant]) >= reshufflePointCap {
		return ErrNotEligible
	}
	r.startRound()
	return nil
}

// PlayCards lays the resolved subset of the identified cards on the
// caller's table spot, overwriting any previous play there. Identifiers
// not found in the hand are skipped.
func (r *Room) PlayCards(participant string, cardIDs []string) error {
	if r.Phase != PhasePlaying {
		return ErrWrongPhase
	}
	seat, ok := r.SeatOf(participant)
	if !ok {
		return ErrNotSeated
	}
	if seat != r.CurrentTurn {
		return ErrNotYourTurn
	}
	want := make(map[string]bool, len(cardIDs))
	for _, id := range cardIDs {
		want[id] = true
	}
	hand := r.Hands[participant]
	kept := make([]Card, 0, len(hand))
	played := make([]Card, 0, len(cardIDs))
	for _, c := range hand {
		if want[c.ID] {
			played = append(played, c)
		} else {
			kept = append(kept, c)
		}
	}
	r.Hands[participant] = kept
	r.Table[participant] = played
	next, err := NextSeat(seat)
	if err != nil {
		return err
	}
	r.CurrentTurn = next
	return nil
}

// ClearTrick archives every table play into the discards. Winner
// determination is a pending extension; for now the table is just swept.
func (r *Room) ClearTrick(participant string) error {
	for p, cards := range r.Table {
		r.Discards = append(r.Discards, cards...)
		r.Table[p] = []Card{}
	}
	return nil
}

// RemoveParticipant clears all bookkeeping for a disconnected participant.
// Reports whether the room actually changed.
func (r *Room) RemoveParticipant(participant string) bool {
	changed := false
	for s, occ := range r.Seats {
		if occ == participant && participant != "" {
			r.Seats[s] = ""
			changed = true
		}
	}
	if _, ok := r.Hands[participant]; ok {
		delete(r.Hands, participant)
		changed = true
	}
	if _, ok := r.Table[participant]; ok {
		delete(r.Table, participant)
		changed = true
	}
	if _, ok := r.Names[participant]; ok {
		delete(r.Names, participant)
		changed = true
	}
	return changed
}
