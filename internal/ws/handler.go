package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hqin8/tractor-backend/internal/game"
	"github.com/hqin8/tractor-backend/internal/hub"
	"github.com/hqin8/tractor-backend/internal/room"
	"github.com/hqin8/tractor-backend/internal/types"
)

const writeTimeout = 3 * time.Second

// Handler upgrades the connection and routes inbound events: room
// lifecycle events (create_room, join_room) go to the hub, everything
// else to the currently joined room actor.
func Handler(h *hub.Hub, log *zap.Logger, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		participantID := uuid.NewString()
		log := log.With(zap.String("participant", participantID))
		log.Info("participant connected")

		// On disconnect, sweep every room for this participant.
		defer func() {
			h.Inbox() <- hub.DropParticipant{ParticipantID: participantID}
			log.Info("participant disconnected")
		}()

		sessionCtx, sessionCancel := context.WithCancel(r.Context())
		defer sessionCancel()

		// Single writer goroutine owns the socket's write side.
		out := make(chan types.ServerMessage, 16)
		go func() {
			for {
				select {
				case <-sessionCtx.Done():
					return
				case msg, ok := <-out:
					if !ok {
						return
					}
					payload, err := json.Marshal(msg)
					if err != nil {
						log.Error("marshal outbound", zap.Error(err))
						continue
					}
					ctx, cancel := context.WithTimeout(sessionCtx, writeTimeout)
					_ = conn.Write(ctx, websocket.MessageText, payload)
					cancel()
				}
			}
		}()

		send := func(msg types.ServerMessage) {
			select {
			case out <- msg:
			case <-sessionCtx.Done():
			}
		}
		sendErr := func(message string) {
			send(types.ServerMessage{Type: "error_msg", Message: message})
		}

		var joined *room.Room

		for {
			_, data, err := conn.Read(sessionCtx)
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				sendErr("bad json")
				continue
			}

			switch cm.Type {
			case "create_room":
				reply := make(chan *room.Room, 1)
				h.Inbox() <- hub.CreateRoom{Reply: reply}
				rm := <-reply
				if rm == nil {
					sendErr("failed to create room")
					continue
				}
				send(types.ServerMessage{Type: "room_created", Code: rm.Code()})

			case "join_room":
				reply := make(chan *room.Room, 1)
				h.Inbox() <- hub.GetRoom{Code: cm.Code, Reply: reply}
				rm := <-reply
				if rm == nil {
					sendErr("room not found")
					continue
				}
				if joined != nil {
					joined.Inbox() <- room.Leave{ParticipantID: participantID}
				}
				joined = rm
				send(types.ServerMessage{Type: "joined_room", Code: rm.Code()})

				roomOut := make(chan room.Outbound, 8)
				go func() {
					for ob := range roomOut {
						msg := types.ServerMessage{Type: "room_state", State: ob.State}
						if ob.Err != "" {
							msg = types.ServerMessage{Type: "error_msg", Message: ob.Err}
						}
						select {
						case out <- msg:
						case <-sessionCtx.Done():
							return
						}
					}
				}()
				rm.Inbox() <- room.Join{ParticipantID: participantID, Outbox: roomOut}

			default:
				cmd, ok := toCommand(cm)
				if !ok {
					sendErr("unknown type")
					continue
				}
				if joined == nil {
					sendErr("join a room first")
					continue
				}
				if cm.Code != "" && cm.Code != joined.Code() {
					sendErr("not in that room")
					continue
				}
				joined.Inbox() <- room.FromClient{ParticipantID: participantID, Cmd: cmd}
			}
		}
	}
}

func toCommand(m types.ClientMessage) (game.Command, bool) {
	switch m.Type {
	case "sit":
		seat, ok := parseSeat(m.Seat)
		if !ok {
			return game.Command{}, false
		}
		return game.Command{Type: game.CmdSit, Seat: seat, Name: m.Name}, true
	case "draw_card":
		return game.Command{Type: game.CmdDrawCard}, true
	case "auto_deal":
		return game.Command{Type: game.CmdAutoDeal}, true
	case "undo_draw":
		return game.Command{Type: game.CmdUndoDraw}, true
	case "start_bottom_pile":
		return game.Command{Type: game.CmdStartBottomPile}, true
	case "discard_bottom_pile":
		return game.Command{Type: game.CmdDiscardBottomPile, CardIDs: m.CardIDs}, true
	case "reshuffle_round":
		return game.Command{Type: game.CmdReshuffleRound}, true
	case "play_cards":
		return game.Command{Type: game.CmdPlayCards, CardIDs: m.CardIDs}, true
	case "clear_trick":
		return game.Command{Type: game.CmdClearTrick}, true
	default:
		return game.Command{}, false
	}
}

func parseSeat(seat string) (game.Seat, bool) {
	switch seat {
	case "N":
		return game.SeatNorth, true
	case "E":
		return game.SeatEast, true
	case "S":
		return game.SeatSouth, true
	case "W":
		return game.SeatWest, true
	default:
		return "", false
	}
}
