package room

import (
	"context"

	"github.com/hqin8/tractor-backend/internal/game"
)

type Msg interface{ isRoomMsg() }

// Outbound is one delivery to a single client: either a rejected-command
// message or a per-viewer state projection.
type Outbound struct {
	Err   string
	State *game.RoomView
}

type Join struct {
	ParticipantID string
	Outbox        chan Outbound // where this client wants to receive state
}

func (Join) isRoomMsg() {}

type Leave struct{ ParticipantID string }

func (Leave) isRoomMsg() {}

type FromClient struct {
	ParticipantID string
	Cmd           game.Command
}

func (FromClient) isRoomMsg() {}

// RemovePlayer is the disconnect sweep: it clears the participant's seat,
// hand, table and name and re-broadcasts if anything changed.
type RemovePlayer struct{ ParticipantID string }

func (RemovePlayer) isRoomMsg() {}

type GetView struct {
	ParticipantID string
	Reply         chan game.RoomView
}

func (GetView) isRoomMsg() {}

type Shutdown struct{}

func (Shutdown) isRoomMsg() {}

// Room is the actor that owns one game.Room. Every inbound message runs
// to completion before the next, which is the whole serialization story.
type Room struct {
	inbox   chan Msg
	state   *game.Room
	clients map[string]chan Outbound
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewRoom(parent context.Context, state *game.Room) *Room {
	ctx, cancel := context.WithCancel(parent)
	r := &Room{
		inbox:   make(chan Msg, 64),
		state:   state,
		clients: make(map[string]chan Outbound),
		ctx:     ctx,
		cancel:  cancel,
	}
	go r.loop()
	return r
}

func (r *Room) Inbox() chan<- Msg { return r.inbox }

func (r *Room) Code() string { return r.state.Code }

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Join:
				r.clients[msg.ParticipantID] = msg.Outbox
				view := game.ProjectFor(msg.ParticipantID, r.state)
				msg.Outbox <- Outbound{State: &view}

			case Leave:
				if ch, ok := r.clients[msg.ParticipantID]; ok {
					close(ch)
					delete(r.clients, msg.ParticipantID)
				}

			case FromClient:
				if err := game.Apply(r.state, msg.ParticipantID, msg.Cmd); err != nil {
					// Rejections go to the requester only.
					r.send(msg.ParticipantID, Outbound{Err: err.Error()})
					break
				}
				r.broadcast()

			case RemovePlayer:
				if ch, ok := r.clients[msg.ParticipantID]; ok {
					close(ch)
					delete(r.clients, msg.ParticipantID)
				}
				if r.state.RemoveParticipant(msg.ParticipantID) {
					r.broadcast()
				}

			case GetView:
				msg.Reply <- game.ProjectFor(msg.ParticipantID, r.state)

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) send(participantID string, out Outbound) {
	ch, ok := r.clients[participantID]
	if !ok {
		return
	}
	select {
	case ch <- out:
	default:
		// Client is slow/full - drop them.
		close(ch)
		delete(r.clients, participantID)
	}
}

// broadcast recomputes the projection per viewer, so no client ever sees
// another hand's contents.
func (r *Room) broadcast() {
	for id := range r.clients {
		view := game.ProjectFor(id, r.state)
		r.send(id, Outbound{State: &view})
	}
}

func (r *Room) shutdown() {
	for id, ch := range r.clients {
		close(ch)
		delete(r.clients, id)
	}
	r.cancel()
}
