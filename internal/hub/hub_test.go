package hub

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hqin8/tractor-backend/internal/game"
	"github.com/hqin8/tractor-backend/internal/room"
)

func createRoom(t *testing.T, h *Hub) *room.Room {
	t.Helper()
	reply := make(chan *room.Room, 1)
	h.Inbox() <- CreateRoom{Reply: reply}
	select {
	case rm := <-reply:
		if rm == nil {
			t.Fatalf("hub failed to create a room")
		}
		return rm
	case <-time.After(time.Second):
		t.Fatalf("timed out creating a room")
		return nil // unreachable
	}
}

func TestHub_CreateThenGet_SamePointer(t *testing.T) {
	h := NewHub(context.Background(), zap.NewNop())

	rm1 := createRoom(t, h)

	reply := make(chan *room.Room, 1)
	h.Inbox() <- GetRoom{Code: rm1.Code(), Reply: reply}
	rm2 := <-reply

	if rm2 == nil || rm1 != rm2 {
		t.Fatalf("expected same room pointer for code %q", rm1.Code())
	}
}

func TestHub_CodesAreUnique(t *testing.T) {
	h := NewHub(context.Background(), zap.NewNop())

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		rm := createRoom(t, h)
		code := rm.Code()
		if len(code) != 6 {
			t.Fatalf("want 6-char code, got %q", code)
		}
		if seen[code] {
			t.Fatalf("duplicate room code %q", code)
		}
		seen[code] = true
	}
}

func TestHub_GetUnknownCode(t *testing.T) {
	h := NewHub(context.Background(), zap.NewNop())

	reply := make(chan *room.Room, 1)
	h.Inbox() <- GetRoom{Code: "NOPE00", Reply: reply}
	if rm := <-reply; rm != nil {
		t.Fatalf("unknown code should yield nil, got %v", rm)
	}
}

func TestHub_DropParticipant_SweepsEveryRoom(t *testing.T) {
	h := NewHub(context.Background(), zap.NewNop())
	rm := createRoom(t, h)

	out1 := make(chan room.Outbound, 4)
	out2 := make(chan room.Outbound, 4)
	rm.Inbox() <- room.Join{ParticipantID: "c1", Outbox: out1}
	rm.Inbox() <- room.Join{ParticipantID: "c2", Outbox: out2}
	<-out1
	<-out2

	rm.Inbox() <- room.FromClient{ParticipantID: "c1", Cmd: game.Command{
		Type: game.CmdSit, Seat: game.SeatNorth, Name: "Ana",
	}}
	<-out1
	<-out2

	h.Inbox() <- DropParticipant{ParticipantID: "c1"}

	select {
	case ob := <-out2:
		if ob.State == nil {
			t.Fatalf("expected a state rebroadcast, got %+v", ob)
		}
		if ob.State.Seats[game.SeatNorth].Participant != "" {
			t.Fatalf("disconnect should vacate seat N, got %+v", ob.State.Seats[game.SeatNorth])
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for the disconnect rebroadcast")
	}
}

func TestHub_RemoveRoom(t *testing.T) {
	h := NewHub(context.Background(), zap.NewNop())
	rm := createRoom(t, h)

	h.Inbox() <- RemoveRoom{Code: rm.Code()}

	reply := make(chan *room.Room, 1)
	h.Inbox() <- GetRoom{Code: rm.Code(), Reply: reply}
	if got := <-reply; got != nil {
		t.Fatalf("room should be gone after removal")
	}
}
