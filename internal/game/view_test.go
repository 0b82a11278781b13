package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectFor_OwnHandOnly(t *testing.T) {
	r := fourSeated(t)
	require.NoError(t, r.DrawCard("p1"))
	require.NoError(t, r.DrawCard("p2"))

	v := ProjectFor("p1", r)

	assert.Equal(t, "TEST01", v.Code)
	assert.Equal(t, PhaseDrawing, v.Phase)
	assert.Equal(t, SeatNorth, v.YourSeat)
	require.Len(t, v.Hand, 1)
	assert.Equal(t, r.Hands["p1"][0].ID, v.Hand[0].ID)

	// Everyone else is a count, never contents.
	assert.Equal(t, 1, v.HandCounts["p2"])
	assert.Equal(t, 0, v.HandCounts["p3"])
	assert.Equal(t, 99, v.DrawPileCount)
	assert.Equal(t, 8, v.BottomPileCount)
	assert.Equal(t, "Ben", v.Seats[SeatEast].Name)
}

func TestProjectFor_Spectator(t *testing.T) {
	r := fourSeated(t)
	require.NoError(t, r.DrawCard("p1"))

	v := ProjectFor("watcher", r)

	assert.Equal(t, Seat(""), v.YourSeat)
	assert.Empty(t, v.Hand)
	assert.Equal(t, 0, v.YourPoints)
	assert.False(t, v.CanReshuffle)
	assert.Equal(t, 1, v.HandCounts["p1"])
}

func TestProjectFor_TablePlaysArePublic(t *testing.T) {
	r := playingRoom(t)
	cardID := r.Hands["p1"][0].ID
	require.NoError(t, r.PlayCards("p1", []string{cardID}))

	v := ProjectFor("p3", r)
	require.Len(t, v.Table["p1"], 1)
	assert.Equal(t, cardID, v.Table["p1"][0].ID)
}

func TestProjectFor_ReshuffleEligibility(t *testing.T) {
	r := fourSeated(t)
	riggedAwaiting(t, r)
	require.NoError(t, r.ClaimBottomPile("p1"))

	r.Hands["p1"] = []Card{
		fakeCard("f5", SuitHeart, 5),
		fakeCard("f10", SuitSpade, 10),
	}
	v := ProjectFor("p1", r)
	assert.Equal(t, 15, v.YourPoints)
	assert.True(t, v.CanReshuffle)

	// 5 + 10 + K is exactly 25, which already disqualifies.
	r.Hands["p1"] = append(r.Hands["p1"], fakeCard("fK", SuitClub, 13))
	v = ProjectFor("p1", r)
	assert.Equal(t, 25, v.YourPoints)
	assert.False(t, v.CanReshuffle)

	// Other seats never see the flag, whatever their points.
	v = ProjectFor("p2", r)
	assert.False(t, v.CanReshuffle)
}

func TestProjectFor_SnapshotIsDetached(t *testing.T) {
	r := fourSeated(t)
	require.NoError(t, r.DrawCard("p1"))

	v := ProjectFor("p1", r)
	require.NoError(t, r.DrawCard("p2"))
	require.NoError(t, r.DrawCard("p3"))

	assert.Len(t, v.Hand, 1, "projection must not track later mutations")
	assert.Equal(t, 99, v.DrawPileCount)
}
