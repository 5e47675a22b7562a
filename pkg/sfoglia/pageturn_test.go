package sfoglia

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestController(totalPages int) (*PageTurnController, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	controller := NewPageTurnController(PageTurnSettings{
		TotalPages: totalPages,
		Clock:      clock.Now,
	})
	return controller, clock
}

// settle advances the clock past any pending turn and completes it.
func settle(t *testing.T, c *PageTurnController, clock *fakeClock) {
	t.Helper()
	clock.Advance(2 * time.Second)
	c.Update(clock.Now())
	require.False(t, c.Animating())
}

// openTo opens the notebook and advances to the given page.
func openTo(t *testing.T, c *PageTurnController, clock *fakeClock, page int) {
	t.Helper()
	require.True(t, c.Open())
	settle(t, c, clock)
	for c.CurrentPage() < page {
		require.True(t, c.Advance())
		settle(t, c, clock)
	}
	require.Equal(t, page, c.CurrentPage())
}

func TestOpenFromCover(t *testing.T) {
	c, clock := newTestController(4)

	require.Equal(t, 0, c.CurrentPage())
	require.False(t, c.Opened())

	assert.True(t, c.Open())
	assert.True(t, c.Opened())
	assert.Equal(t, 1, c.CurrentPage())
	assert.True(t, c.Animating())

	// Before the open duration elapses the lock stays held
	clock.Advance(500 * time.Millisecond)
	assert.False(t, c.Update(clock.Now()))
	assert.True(t, c.Animating())

	clock.Advance(600 * time.Millisecond)
	assert.True(t, c.Update(clock.Now()))
	assert.False(t, c.Animating())
	assert.Equal(t, 1, c.CurrentPage())
}

func TestOpenIsIdempotentWhileLocked(t *testing.T) {
	c, clock := newTestController(4)

	require.True(t, c.Open())
	assert.False(t, c.Open(), "second open during the animation must be dropped")
	assert.Equal(t, 1, c.CurrentPage())

	settle(t, c, clock)
	assert.False(t, c.Open(), "open after the cover is already open must be dropped")
	assert.Equal(t, 1, c.CurrentPage())
}

func TestAdvanceRequiresOpen(t *testing.T) {
	c, _ := newTestController(4)

	assert.False(t, c.Advance())
	assert.Equal(t, 0, c.CurrentPage())
}

func TestAdvanceCompletesTurn(t *testing.T) {
	c, clock := newTestController(4)
	openTo(t, c, clock, 1)

	require.True(t, c.Advance())
	assert.True(t, c.Animating())
	assert.Equal(t, 1, c.CurrentPage(), "position moves only when the turn completes")

	page, ok := c.Page(1)
	require.True(t, ok)
	assert.Equal(t, PagePhaseTurning, page.Phase)

	clock.Advance(600 * time.Millisecond)
	assert.True(t, c.Update(clock.Now()))

	page, _ = c.Page(1)
	assert.Equal(t, PagePhaseTurned, page.Phase)
	assert.False(t, page.Hidden)
	assert.Equal(t, 2, c.CurrentPage())
	assert.False(t, c.Animating())
}

func TestAdvanceLastPageHidesIt(t *testing.T) {
	c, clock := newTestController(2)
	openTo(t, c, clock, 2)

	require.True(t, c.Advance())
	settle(t, c, clock)

	page, _ := c.Page(2)
	assert.Equal(t, PagePhaseTurned, page.Phase)
	assert.True(t, page.Hidden, "turning the last page reveals the back cover")
	assert.Equal(t, 3, c.CurrentPage())
	assert.True(t, c.AtEnd())

	assert.False(t, c.Advance(), "no page left to turn at the end")
}

func TestAdvanceWhileAnimatingIsDropped(t *testing.T) {
	c, clock := newTestController(4)
	openTo(t, c, clock, 1)

	require.True(t, c.Advance())
	assert.False(t, c.Advance(), "requests during an in-flight turn are dropped, not queued")
	assert.Equal(t, 1, c.CurrentPage())

	settle(t, c, clock)
	assert.Equal(t, 2, c.CurrentPage(), "only the first request took effect")
}

func TestRetreatRestoresTurnedPage(t *testing.T) {
	c, clock := newTestController(4)
	openTo(t, c, clock, 2)

	require.True(t, c.Retreat())
	assert.Equal(t, 1, c.CurrentPage(), "position moves immediately on retreat")
	assert.True(t, c.Animating(), "returning to a turned page replays a reverse turn")

	page, _ := c.Page(1)
	assert.Equal(t, PagePhaseTurning, page.Phase)

	settle(t, c, clock)
	page, _ = c.Page(1)
	assert.Equal(t, PagePhaseInitial, page.Phase)
	assert.False(t, page.Hidden)
}

func TestRetreatFromEndUnhidesLastPage(t *testing.T) {
	c, clock := newTestController(2)
	openTo(t, c, clock, 2)
	require.True(t, c.Advance())
	settle(t, c, clock)
	require.True(t, c.AtEnd())

	require.True(t, c.Retreat())
	assert.Equal(t, 2, c.CurrentPage())

	page, _ := c.Page(2)
	assert.False(t, page.Hidden)

	settle(t, c, clock)
	page, _ = c.Page(2)
	assert.Equal(t, PagePhaseInitial, page.Phase)
}

func TestRetreatBoundsAndLock(t *testing.T) {
	c, clock := newTestController(4)

	assert.False(t, c.Retreat(), "no retreat from the cover")

	openTo(t, c, clock, 1)
	assert.False(t, c.Retreat(), "no retreat past page 1")

	require.True(t, c.Advance())
	settle(t, c, clock)
	require.Equal(t, 2, c.CurrentPage())

	require.True(t, c.Retreat())
	assert.False(t, c.Retreat(), "retreat during the reverse turn is dropped")
	assert.Equal(t, 1, c.CurrentPage())
}

func TestHandleResizeRecoversFromInterruptedTurn(t *testing.T) {
	c, clock := newTestController(4)
	openTo(t, c, clock, 1)

	require.True(t, c.Advance())
	require.True(t, c.Animating())

	c.HandleResize()

	assert.False(t, c.Animating())
	page, _ := c.Page(1)
	assert.Equal(t, PagePhaseInitial, page.Phase)
	assert.Equal(t, 1, c.CurrentPage(), "an abandoned forward turn never happened")

	// A completed Update after recovery must not resurrect the turn
	clock.Advance(2 * time.Second)
	assert.False(t, c.Update(clock.Now()))
	assert.Equal(t, 1, c.CurrentPage())

	// And the controller accepts input again
	assert.True(t, c.Advance())
	settle(t, c, clock)
	assert.Equal(t, 2, c.CurrentPage())
}

func TestTurningProgress(t *testing.T) {
	c, clock := newTestController(4)
	openTo(t, c, clock, 1)

	require.True(t, c.Advance())

	clock.Advance(300 * time.Millisecond)
	kind, page, progress, ok := c.Turning(clock.Now())
	require.True(t, ok)
	assert.Equal(t, TurnForward, kind)
	assert.Equal(t, 1, page)
	assert.InDelta(t, 0.5, progress, 0.01)

	clock.Advance(time.Hour)
	_, _, progress, ok = c.Turning(clock.Now())
	require.True(t, ok)
	assert.Equal(t, 1.0, progress, "progress is clamped to 1")
}

func TestPositionNeverLeavesBounds(t *testing.T) {
	const totalPages = 4
	c, clock := newTestController(totalPages)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			c.Open()
		case 1:
			c.Advance()
		case 2:
			c.Retreat()
		case 3:
			clock.Advance(time.Duration(rng.Intn(800)) * time.Millisecond)
			c.Update(clock.Now())
		}

		require.GreaterOrEqual(t, c.CurrentPage(), 0)
		require.LessOrEqual(t, c.CurrentPage(), totalPages+1)
	}
}
