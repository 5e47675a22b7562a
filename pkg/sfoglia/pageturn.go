package sfoglia

import (
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// PagePhase describes the presentation of a single content page.
type PagePhase int

const (
	PagePhaseInitial PagePhase = iota // Page lies flat on the right stack
	PagePhaseTurning                  // Page is mid-turn (forward or reverse)
	PagePhaseTurned                   // Page has been flipped onto the left stack
)

func (p PagePhase) String() string {
	switch p {
	case PagePhaseTurning:
		return "turning"
	case PagePhaseTurned:
		return "turned"
	default:
		return "initial"
	}
}

// Page holds the presentation state of one content page.
// Hidden is set in addition to PagePhaseTurned when the last page is flipped,
// revealing the back cover.
type Page struct {
	Ordinal int // 1-based position between cover and end
	Phase   PagePhase
	Hidden  bool
}

// TurnKind identifies the transition a pending turn will complete.
type TurnKind int

const (
	TurnOpen     TurnKind = iota // Cover opening onto page 1
	TurnForward                  // Current page flipping left
	TurnBackward                 // Previously turned page flipping back right
)

// pendingTurn is the single in-flight transition. There is never more than
// one: the animating lock is checked and set synchronously before a turn is
// scheduled.
type pendingTurn struct {
	kind       TurnKind
	page       int // ordinal of the page being turned, 0 for TurnOpen
	startedAt  time.Time
	completeAt time.Time
}

// PageTurnSettings configures a PageTurnController.
type PageTurnSettings struct {
	// TotalPages is the number of content pages between cover and end.
	TotalPages int
	// OpenDuration is how long the cover-opening animation holds the lock
	// (default: constants.DefaultOpenDuration).
	OpenDuration time.Duration
	// TurnDuration is how long a page turn holds the lock
	// (default: constants.DefaultTurnDuration).
	TurnDuration time.Duration
	// Clock overrides the time source. Tests use this; leave nil for time.Now.
	Clock func() time.Time
}

// PageTurnController is the state machine driving a notebook: a position over
// {cover, page_1..page_N, end} plus per-page presentation state, serialized by
// a single animation lock.
//
// All transition methods are silent no-ops when their preconditions do not
// hold (already animating, out of bounds). Callers own the instance and pass
// it by reference to whichever input adapters need it; there is no package
// level controller.
//
// The controller is not goroutine safe. Widgets drive it from their single
// event loop, calling Update once per frame to complete pending turns.
type PageTurnController struct {
	totalPages   int
	currentPage  int
	opened       bool
	animating    bool
	pages        []Page
	pending      *pendingTurn
	openDuration time.Duration
	turnDuration time.Duration
	clock        func() time.Time
}

// NewPageTurnController creates a controller positioned on the closed cover.
func NewPageTurnController(settings PageTurnSettings) *PageTurnController {
	if settings.OpenDuration <= 0 {
		settings.OpenDuration = constants.DefaultOpenDuration
	}
	if settings.TurnDuration <= 0 {
		settings.TurnDuration = constants.DefaultTurnDuration
	}
	if settings.Clock == nil {
		settings.Clock = time.Now
	}

	pages := make([]Page, settings.TotalPages)
	for i := range pages {
		pages[i].Ordinal = i + 1
	}

	return &PageTurnController{
		totalPages:   settings.TotalPages,
		pages:        pages,
		openDuration: settings.OpenDuration,
		turnDuration: settings.TurnDuration,
		clock:        settings.Clock,
	}
}

// Open begins the cover-opening transition. Valid only from the closed cover
// when no animation is in flight; otherwise it does nothing and returns false.
func (c *PageTurnController) Open() bool {
	if c.opened || c.animating {
		return false
	}

	c.opened = true
	c.currentPage = 1
	c.beginTurn(TurnOpen, 0, c.openDuration)
	return true
}

// Advance begins turning the current page forward. Valid only when the
// notebook is open, no animation is in flight, and there is a page left to
// turn; otherwise it does nothing and returns false.
//
// Turning the last page moves the position to the end (totalPages+1) and
// additionally hides the page, revealing the back cover.
func (c *PageTurnController) Advance() bool {
	if !c.opened || c.animating {
		return false
	}
	if c.currentPage < 1 || c.currentPage > c.totalPages {
		return false
	}

	page := c.currentPage
	c.pages[page-1].Phase = PagePhaseTurning
	c.beginTurn(TurnForward, page, c.turnDuration)
	return true
}

// Retreat steps back one position. Valid only when no animation is in flight
// and the position is past page 1; otherwise it does nothing and returns
// false.
//
// The position moves immediately. If the page being returned to had been
// turned, it replays a reverse turn over the turn duration before the lock
// releases; otherwise the lock is never taken.
func (c *PageTurnController) Retreat() bool {
	if c.animating || c.currentPage <= 1 {
		return false
	}

	c.currentPage--

	target := &c.pages[c.currentPage-1]
	target.Hidden = false
	if target.Phase == PagePhaseTurned {
		target.Phase = PagePhaseTurning
		c.beginTurn(TurnBackward, target.Ordinal, c.turnDuration)
	}
	return true
}

// Update completes the pending turn once its deadline passes and releases the
// animation lock. Widgets call this once per frame. Returns true when a
// transition completed on this call.
func (c *PageTurnController) Update(now time.Time) bool {
	if c.pending == nil || now.Before(c.pending.completeAt) {
		return false
	}

	turn := c.pending
	c.pending = nil
	c.animating = false

	switch turn.kind {
	case TurnForward:
		page := &c.pages[turn.page-1]
		page.Phase = PagePhaseTurned
		if turn.page == c.totalPages {
			page.Hidden = true
		}
		c.currentPage++

	case TurnBackward:
		c.pages[turn.page-1].Phase = PagePhaseInitial
	}

	return true
}

// HandleResize is the recovery path for animations interrupted by a layout
// change: the pending turn is abandoned, any mid-turn page snaps back to its
// resting state, and the lock is released.
//
// An abandoned forward turn never happened, so the position is unchanged; an
// abandoned reverse turn had already moved the position, and its page lands
// on the same resting state completion would have produced.
func (c *PageTurnController) HandleResize() {
	c.pending = nil
	c.animating = false

	for i := range c.pages {
		if c.pages[i].Phase == PagePhaseTurning {
			c.pages[i].Phase = PagePhaseInitial
		}
	}
}

// Turning reports the in-flight turn, if any: the page being turned (0 while
// the cover opens), and animation progress in [0, 1].
func (c *PageTurnController) Turning(now time.Time) (kind TurnKind, page int, progress float64, ok bool) {
	if c.pending == nil {
		return 0, 0, 0, false
	}

	total := c.pending.completeAt.Sub(c.pending.startedAt)
	elapsed := now.Sub(c.pending.startedAt)
	progress = float64(elapsed) / float64(total)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return c.pending.kind, c.pending.page, progress, true
}

func (c *PageTurnController) beginTurn(kind TurnKind, page int, duration time.Duration) {
	now := c.clock()
	c.animating = true
	c.pending = &pendingTurn{
		kind:       kind,
		page:       page,
		startedAt:  now,
		completeAt: now.Add(duration),
	}
}

// CurrentPage returns the position: 0 = cover, 1..N content pages, N+1 = end.
func (c *PageTurnController) CurrentPage() int {
	return c.currentPage
}

// TotalPages returns the content page count.
func (c *PageTurnController) TotalPages() int {
	return c.totalPages
}

// Opened reports whether the cover has been opened.
func (c *PageTurnController) Opened() bool {
	return c.opened
}

// Animating reports whether a turn is in flight. While true, every
// transition request is dropped.
func (c *PageTurnController) Animating() bool {
	return c.animating
}

// AtEnd reports whether the position is past the last content page.
func (c *PageTurnController) AtEnd() bool {
	return c.currentPage > c.totalPages
}

// Page returns the presentation state of the page with the given ordinal.
func (c *PageTurnController) Page(ordinal int) (Page, bool) {
	if ordinal < 1 || ordinal > c.totalPages {
		return Page{}, false
	}
	return c.pages[ordinal-1], true
}

// Pages returns a copy of all page presentation states in ordinal order.
func (c *PageTurnController) Pages() []Page {
	pages := make([]Page, len(c.pages))
	copy(pages, c.pages)
	return pages
}
