package game

import "errors"

var ErrUnsupportedCommand = errors.New("unsupported command")

type CommandType string

const (
	CmdSit               CommandType = "sit"
	CmdDrawCard          CommandType = "draw_card"
	CmdAutoDeal          CommandType = "auto_deal"
	CmdStartBottomPile   CommandType = "start_bottom_pile"
	CmdDiscardBottomPile CommandType = "discard_bottom_pile"
	CmdReshuffleRound    CommandType = "reshuffle_round"
	CmdUndoDraw          CommandType = "undo_draw"
	CmdPlayCards         CommandType = "play_cards"
	CmdClearTrick        CommandType = "clear_trick"
)

type Command struct {
	Type    CommandType
	Seat    Seat
	Name    string
	CardIDs []string
}

// Apply dispatches one participant command against the room. Failures are
// sentinel errors and never leave a partial mutation behind.
func Apply(r *Room, participant string, cmd Command) error {
	switch cmd.Type {
	case CmdSit:
		return r.Sit(participant, cmd.Name, cmd.Seat)
	case CmdDrawCard:
		return r.DrawCard(participant)
	case CmdAutoDeal:
		return r.AutoDeal(participant)
	case CmdUndoDraw:
		return r.UndoDraw(participant)
	case CmdStartBottomPile:
		return r.ClaimBottomPile(participant)
	case CmdDiscardBottomPile:
		return r.DiscardBottomPile(participant, cmd.CardIDs)
	case CmdReshuffleRound:
		return r.ReshuffleRound(participant)
	case CmdPlayCards:
		return r.PlayCards(participant, cmd.CardIDs)
	case CmdClearTrick:
		return r.ClearTrick(participant)
	default:
		return ErrUnsupportedCommand
	}
}
