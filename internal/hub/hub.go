package hub

import (
	"context"
	"crypto/rand"
	"math/big"

	"go.uber.org/zap"

	"github.com/hqin8/tractor-backend/internal/game"
	"github.com/hqin8/tractor-backend/internal/room"
)

type HubMsg interface{ isHubMsg() }

// CreateRoom allocates a fresh room under a unique code and replies with
// the actor. Code generation and collision checks both live inside the
// hub loop, so uniqueness needs no extra locking.
type CreateRoom struct {
	Reply chan *room.Room
}

type GetRoom struct {
	Code  string
	Reply chan *room.Room
}

type RemoveRoom struct {
	Code string
}

// DropParticipant sweeps every room for a disconnected participant. It is
// the only registry-wide operation.
type DropParticipant struct {
	ParticipantID string
}

type ShutdownHub struct{}

func (CreateRoom) isHubMsg()      {}
func (GetRoom) isHubMsg()         {}
func (RemoveRoom) isHubMsg()      {}
func (DropParticipant) isHubMsg() {}
func (ShutdownHub) isHubMsg()     {}

type Hub struct {
	inbox  chan HubMsg
	rooms  map[string]*room.Room
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		rooms:  make(map[string]*room.Room),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateRoom:
				code, err := h.freshCode()
				if err != nil {
					h.log.Error("room code generation failed", zap.Error(err))
					msg.Reply <- nil
					break
				}
				rm := room.NewRoom(h.ctx, game.NewRoom(code))
				h.rooms[code] = rm
				h.log.Info("room created", zap.String("code", code))
				msg.Reply <- rm

			case GetRoom:
				msg.Reply <- h.rooms[msg.Code] // may be nil

			case RemoveRoom:
				if rm := h.rooms[msg.Code]; rm != nil {
					rm.Inbox() <- room.Shutdown{}
					delete(h.rooms, msg.Code)
					h.log.Info("room removed", zap.String("code", msg.Code))
				}

			case DropParticipant:
				for _, rm := range h.rooms {
					rm.Inbox() <- room.RemovePlayer{ParticipantID: msg.ParticipantID}
				}

			case ShutdownHub:
				for _, rm := range h.rooms {
					rm.Inbox() <- room.Shutdown{}
				}
				clear(h.rooms)
				h.cancel()
			}
		}
	}
}

const codeLength = 6
const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (h *Hub) freshCode() (string, error) {
	for {
		code, err := generateCode()
		if err != nil {
			return "", err
		}
		if _, taken := h.rooms[code]; !taken {
			return code, nil
		}
		h.log.Debug("collision on code, regenerating", zap.String("code", code))
	}
}

func generateCode() (string, error) {
	code := make([]byte, codeLength)
	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeCharset))))
		if err != nil {
			return "", err
		}
		code[i] = codeCharset[num.Int64()]
	}
	return string(code), nil
}
